package httpapi

import (
	"encoding/json"
	"net/http"
)

func NewRouter(h *ClientHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", healthHandler)

	mux.HandleFunc("GET /api/client/GetClient/{id}", h.GetClient)
	mux.HandleFunc("POST /api/client/AddClient", h.AddClient)
	mux.HandleFunc("POST /api/client/ConnectClient", h.ConnectClient)
	mux.HandleFunc("PUT /api/client/UpdateClient", h.UpdateClient)
	mux.HandleFunc("GET /api/client/GetClientStats/{id}", h.GetClientStats)
	mux.HandleFunc("PUT /api/client/UpdateClientStats", h.UpdateClientStats)
	mux.HandleFunc("DELETE /api/client/DeleteClient/{id}", h.DeleteClient)

	return mux
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "client-service",
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
