package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/TracySk8/TP2/internal/order"
)

// CartStore reads and clears client carts through the product service. Cart
// lines come back already joined with catalog prices.
type CartStore struct {
	base
}

func NewCartStore(baseURL string, httpClient *http.Client) *CartStore {
	return &CartStore{base: newBase("product-service", baseURL, httpClient)}
}

func (c *CartStore) GetCart(ctx context.Context, clientID int64) ([]order.PricedLine, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/product/GetCartProducts/%d", clientID), nil)
	if err != nil {
		return nil, err
	}
	if !success(resp) {
		resp.Body.Close()
		return nil, &order.UpstreamError{Service: c.service, Status: resp.StatusCode}
	}

	var cart []order.ProductAndQuantity
	if err := decodeJSON(resp, &cart); err != nil {
		return nil, &order.UpstreamError{Service: c.service, Err: err}
	}

	lines := make([]order.PricedLine, 0, len(cart))
	for _, entry := range cart {
		lines = append(lines, order.PricedLine{
			ProductID: entry.Product.ProductID,
			Quantity:  entry.Quantity,
			UnitPrice: entry.Product.Price,
		})
	}
	return lines, nil
}

func (c *CartStore) Clear(ctx context.Context, clientID int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/product/ClearCartProducts/%d", clientID), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !success(resp) {
		return &order.UpstreamError{Service: c.service, Status: resp.StatusCode}
	}
	return nil
}
