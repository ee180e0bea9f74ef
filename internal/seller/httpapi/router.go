package httpapi

import (
	"encoding/json"
	"net/http"
)

func NewRouter(h *SellerHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", healthHandler)

	mux.HandleFunc("GET /api/seller/GetOk", h.GetOk)
	mux.HandleFunc("GET /api/seller/GetSeller/{id}", h.GetSeller)
	mux.HandleFunc("POST /api/seller/AddSeller", h.AddSeller)
	mux.HandleFunc("GET /api/seller/GetSellerStats/{id}", h.GetSellerStats)

	return mux
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "seller-service",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
