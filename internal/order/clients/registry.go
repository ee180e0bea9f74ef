package clients

import (
	"context"
	"fmt"
	"net/http"
)

// ClientRegistry checks client existence against the client service.
type ClientRegistry struct {
	base
}

func NewClientRegistry(baseURL string, httpClient *http.Client) *ClientRegistry {
	return &ClientRegistry{base: newBase("client-service", baseURL, httpClient)}
}

// Exists treats any non-success status as "does not exist"; only a transport
// failure is surfaced as an error.
func (c *ClientRegistry) Exists(ctx context.Context, clientID int64) (bool, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/client/GetClient/%d", clientID), nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	return success(resp), nil
}
