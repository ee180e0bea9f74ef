package seller

// Seller mirrors the client account shape. The seller side of the platform
// is still being built out; only registration and lookup exist so far.
type Seller struct {
	ID        int64   `json:"id"`
	LastName  string  `json:"lastName"`
	FirstName string  `json:"firstName"`
	Username  string  `json:"username"`
	Credit    float64 `json:"credit"`
}

// SellerStats accumulates sales history for one seller.
type SellerStats struct {
	ID        int64   `json:"id"`
	TotalSell float64 `json:"totalSell"`
	SoldItems int     `json:"soldItems"`
	SellerID  int64   `json:"sellerId"`
}

// Registration is the AddSeller request body.
type Registration struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Username  string `json:"username"`
}
