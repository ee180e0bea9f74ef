package order

import "time"

// Receipt is the persisted record of a completed checkout. Totals are fixed at
// creation time and never recomputed.
type Receipt struct {
	ID           int64     `json:"id"`
	PurchaseDate time.Time `json:"purchaseDate"`
	SubTotal     float64   `json:"subTotal"`
	TPS          float64   `json:"tps"`
	TVQ          float64   `json:"tvq"`
	TotalCost    float64   `json:"totalCost"`
	ClientID     int64     `json:"clientId"`
}

// ReceiptItem is one line of a receipt. Its ReceiptID is back-filled from the
// parent receipt's database-assigned id before insert.
type ReceiptItem struct {
	ID        int64 `json:"id"`
	ReceiptID int64 `json:"receiptId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// PricedLine is one cart line joined with its catalog price at checkout time.
// It is never persisted on its own.
type PricedLine struct {
	ProductID int64
	Quantity  int
	UnitPrice float64
}

// Product is the catalog's product shape as consumed by this service.
type Product struct {
	ProductID    int64   `json:"productId"`
	Gender       string  `json:"gender"`
	Category     string  `json:"category"`
	SubCategory  string  `json:"subCategory"`
	Colour       string  `json:"colour"`
	Usage        string  `json:"usage"`
	ProductTitle string  `json:"productTitle"`
	Image        string  `json:"image,omitempty"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Price        float64 `json:"price"`
	SellerID     int64   `json:"sellerId"`
}

// ProductAndQuantity pairs a resolved product with the quantity that was
// ordered. It is the unit of both cart responses and receipt detail responses.
type ProductAndQuantity struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
