package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/TracySk8/TP2/internal/gateway/clients"
)

// UpstreamProbe names the health path to hit on one upstream service.
type UpstreamProbe struct {
	Client *clients.Client
	Path   string
}

type HealthHandler struct {
	Probes []UpstreamProbe
}

func (h *HealthHandler) Gateway(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "api-gateway",
	})
}

// Upstreams probes every configured service in parallel and reports the
// per-service reachability alongside the gateway's own status.
func (h *HealthHandler) Upstreams(w http.ResponseWriter, r *http.Request) {
	results := make([]clients.UpstreamStatus, len(h.Probes))

	var wg sync.WaitGroup
	wg.Add(len(h.Probes))
	for i, p := range h.Probes {
		go func() {
			defer wg.Done()
			results[i] = p.Client.Probe(r.Context(), p.Path)
		}()
	}
	wg.Wait()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"service":   "api-gateway",
		"upstreams": results,
	})
}
