package product

// Product is one catalog entry. The shape is shared verbatim with the order
// service's view of a product.
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

// CartLine is one (client, product) pairing staged before checkout. Quantity
// zero is never stored; it means the row is gone.
type CartLine struct {
	ClientID  int64 `json:"clientId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// ProductAndQuantity is the wire shape for cart contents and receipt details.
type ProductAndQuantity struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
