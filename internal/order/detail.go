package order

import "context"

// DetailResolver composes a persisted receipt with live catalog data.
type DetailResolver struct {
	receipts Repository
	catalog  Catalog
}

func NewDetailResolver(receipts Repository, catalog Catalog) *DetailResolver {
	return &DetailResolver{receipts: receipts, catalog: catalog}
}

// GetReceiptDetail resolves each receipt item's product id into full product
// data and merges the ordered quantity back in. Products are requested in a
// single batch and the result follows the catalog's response order. A product
// the catalog returns with no matching stored item keeps its row with
// quantity 0.
func (d *DetailResolver) GetReceiptDetail(ctx context.Context, receiptID int64) ([]ProductAndQuantity, error) {
	rec, err := d.receipts.GetReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrReceiptNotFound
	}

	items, err := d.receipts.ListItemsByReceipt(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	products, err := d.catalog.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	detail := make([]ProductAndQuantity, 0, len(products))
	for _, p := range products {
		quantity := 0
		for _, it := range items {
			if it.ProductID == p.ProductID {
				quantity = it.Quantity
				break
			}
		}
		detail = append(detail, ProductAndQuantity{Product: p, Quantity: quantity})
	}

	return detail, nil
}
