package httpapi

import (
	"log"
	"net/http"

	"github.com/TracySk8/TP2/internal/gateway/clients"
	"github.com/TracySk8/TP2/internal/gateway/config"
	"github.com/TracySk8/TP2/internal/gateway/middleware"
)

type Deps struct {
	Logger *log.Logger
	Cfg    config.Config

	Client  *clients.Client
	Product *clients.Client
	Seller  *clients.Client
	Order   *clients.Client

	HealthProbes []UpstreamProbe
}

func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	// Health
	health := &HealthHandler{Probes: d.HealthProbes}
	mux.HandleFunc("GET /health", health.Gateway)
	mux.HandleFunc("GET /health/upstreams", health.Upstreams)

	// One upstream per API prefix; everything under the prefix is proxied as-is.
	mux.Handle("/api/client/", NewForwardHandler(d.Client))
	mux.Handle("/api/product/", NewForwardHandler(d.Product))
	mux.Handle("/api/seller/", NewForwardHandler(d.Seller))
	mux.Handle("/api/order/", NewForwardHandler(d.Order))

	// Middlewares (outer -> inner)
	var h http.Handler = mux
	h = middleware.Recover(d.Logger)(h)
	h = middleware.CORS(d.Cfg.CORSAllowOrigins)(h)
	h = middleware.CorrelationID(h)
	h = middleware.Logging(d.Logger)(h)

	return h
}
