package clients

import (
	"context"
	"net/http"

	"github.com/TracySk8/TP2/internal/order"
)

// Catalog resolves product ids into product data via the product service's
// batch lookup. Unknown ids are simply absent from the response.
type Catalog struct {
	base
}

func NewCatalog(baseURL string, httpClient *http.Client) *Catalog {
	return &Catalog{base: newBase("product-service", baseURL, httpClient)}
}

func (c *Catalog) GetProductsByIDs(ctx context.Context, ids []int64) ([]order.Product, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/product/GetProductsById", ids)
	if err != nil {
		return nil, err
	}
	if !success(resp) {
		resp.Body.Close()
		return nil, &order.UpstreamError{Service: c.service, Status: resp.StatusCode}
	}

	var products []order.Product
	if err := decodeJSON(resp, &products); err != nil {
		return nil, &order.UpstreamError{Service: c.service, Err: err}
	}
	return products, nil
}
