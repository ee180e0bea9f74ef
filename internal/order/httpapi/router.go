package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/TracySk8/TP2/internal/order"
)

func NewRouter(composer *order.Composer, detail *order.DetailResolver) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", healthHandler)

	h := NewOrderHandler(composer, detail)

	mux.HandleFunc("POST /api/order/CreateOrder/{clientId}", h.CreateOrder)
	mux.HandleFunc("GET /api/order/GetClientReceipts/{clientId}", h.GetClientReceipts)
	mux.HandleFunc("GET /api/order/GetReceiptItems/{receiptId}", h.GetReceiptItems)

	return mux
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "order-service",
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
