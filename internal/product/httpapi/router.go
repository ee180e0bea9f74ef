package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", h.Health)

	// Route names kept from the original API so existing callers keep working.
	r.Route("/api/product", func(r chi.Router) {
		r.Get("/GetProduct/{id}", h.GetProduct)
		r.Post("/AddProduct", h.AddProduct)
		r.Post("/GetProductsById", h.GetProductsByID)
		r.Get("/GetCartProducts/{clientId}", h.GetCartProducts)
		r.Post("/AddCartProduct", h.AddCartProduct)
		r.Delete("/ClearCartProducts/{clientId}", h.ClearCartProducts)
	})

	return r
}
