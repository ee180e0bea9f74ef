package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/TracySk8/TP2/internal/seller"
)

type SellerHandler struct {
	repo   seller.Repository
	logger *log.Logger
}

func NewSellerHandler(repo seller.Repository, logger *log.Logger) *SellerHandler {
	return &SellerHandler{repo: repo, logger: logger}
}

// GetOk is a liveness probe kept from the original API surface.
func (h *SellerHandler) GetOk(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *SellerHandler) GetSeller(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	s, err := h.repo.GetSeller(r.Context(), id)
	if errors.Is(err, seller.ErrNotFound) {
		writeError(w, http.StatusNotFound, "seller not found")
		return
	}
	if err != nil {
		h.logger.Printf("get seller %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, s)
}

func (h *SellerHandler) AddSeller(w http.ResponseWriter, r *http.Request) {
	var reg seller.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if reg.Username == "" || reg.FirstName == "" || reg.LastName == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	s, err := h.repo.CreateSeller(r.Context(), reg)
	if err != nil {
		h.logger.Printf("add seller: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, s)
}

func (h *SellerHandler) GetSellerStats(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	stats, err := h.repo.GetStats(r.Context(), id)
	if errors.Is(err, seller.ErrNotFound) {
		writeError(w, http.StatusNotFound, "seller not found")
		return
	}
	if err != nil {
		h.logger.Printf("get seller stats %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
