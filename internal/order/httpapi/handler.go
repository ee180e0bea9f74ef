package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/TracySk8/TP2/internal/order"
)

type OrderHandler struct {
	composer *order.Composer
	detail   *order.DetailResolver
}

func NewOrderHandler(composer *order.Composer, detail *order.DetailResolver) *OrderHandler {
	return &OrderHandler{composer: composer, detail: detail}
}

// CreateOrder turns the client's cart into a receipt. A 500 response does not
// guarantee nothing was persisted: when only the cart cleanup failed, the
// receipt is already committed.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientId")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := h.composer.CreateOrder(ctx, clientID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, order.ErrClientNotFound):
		writeError(w, http.StatusNotFound, "client does not exist")
	case errors.Is(err, order.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "cannot create an order from an empty cart")
	case errors.Is(err, order.ErrCartClearFailed):
		writeError(w, http.StatusInternalServerError, "order created but cart could not be cleared")
	default:
		writeUpstreamOrServerError(w, err)
	}
}

func (h *OrderHandler) GetClientReceipts(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientId")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	receipts, err := h.composer.ClientReceipts(ctx, clientID)
	switch {
	case err == nil:
		if len(receipts) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, receipts)
	case errors.Is(err, order.ErrClientNotFound):
		writeError(w, http.StatusNotFound, "client does not exist")
	default:
		writeUpstreamOrServerError(w, err)
	}
}

func (h *OrderHandler) GetReceiptItems(w http.ResponseWriter, r *http.Request) {
	receiptID, ok := pathID(w, r, "receiptId")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	detail, err := h.detail.GetReceiptDetail(ctx, receiptID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, detail)
	case errors.Is(err, order.ErrReceiptNotFound):
		writeError(w, http.StatusNotFound, "receipt does not exist")
	default:
		writeUpstreamOrServerError(w, err)
	}
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing "+name)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

func writeUpstreamOrServerError(w http.ResponseWriter, err error) {
	var ue *order.UpstreamError
	if errors.As(err, &ue) {
		writeError(w, http.StatusInternalServerError, "error calling "+ue.Service)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
