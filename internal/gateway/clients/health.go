package clients

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 2 * time.Second

// UpstreamStatus is one row of the gateway's aggregated health view.
type UpstreamStatus struct {
	Service   string `json:"service"`
	Reachable bool   `json:"reachable"`
	Status    int    `json:"status,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// Probe asks the upstream for its health endpoint under a short deadline,
// so one hung service cannot stall the whole health view.
func (c *Client) Probe(ctx context.Context, path string) UpstreamStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	resp, err := c.Do(ctx, http.MethodGet, path, "", nil, http.Header{})
	if err != nil {
		return UpstreamStatus{Service: c.Name, Detail: err.Error()}
	}
	defer resp.Body.Close()

	return UpstreamStatus{
		Service:   c.Name,
		Reachable: resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status:    resp.StatusCode,
	}
}
