package client

// Client is the public account record. The password hash lives in its own
// table and is never serialized with the client.
type Client struct {
	ID        int64   `json:"id"`
	LastName  string  `json:"lastName"`
	FirstName string  `json:"firstName"`
	Username  string  `json:"username"`
	Credit    float64 `json:"credit"`
}

// ClientStats accumulates purchase history for one client.
type ClientStats struct {
	ID             int64   `json:"id"`
	TotalSpent     float64 `json:"totalSpent"`
	PurchasedItems int     `json:"purchasedItems"`
	ClientID       int64   `json:"clientId"`
}

// Password holds the salted PBKDF2 hash for one client. Salt and Hash are
// base64 encoded.
type Password struct {
	ID       int64
	Salt     string
	Hash     string
	ClientID int64
}

// Registration is the AddClient request body.
type Registration struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// Credentials is the ConnectClient request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
