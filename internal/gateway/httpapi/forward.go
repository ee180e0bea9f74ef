package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/TracySk8/TP2/internal/gateway/clients"
	"github.com/TracySk8/TP2/internal/gateway/middleware"
	"github.com/TracySk8/TP2/internal/gateway/model"
)

// ForwardHandler proxies every request under one path prefix to a single
// upstream service, preserving method, path, query and body.
type ForwardHandler struct {
	c *clients.Client
}

func NewForwardHandler(c *clients.Client) *ForwardHandler {
	return &ForwardHandler{c: c}
}

func (h *ForwardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.Do(r.Context(), r.Method, r.URL.Path, r.URL.RawQuery, r.Body, r.Header)
	if err != nil {
		WriteUpstreamError(w, r, http.StatusBadGateway, h.c.Name+" request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()
	CopyUpstreamResponse(w, resp)
}

func CopyUpstreamResponse(w http.ResponseWriter, resp *http.Response) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}

func WriteUpstreamError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		Error:         msg,
		CorrelationID: middleware.GetCorrelationID(r.Context()),
	})
}
