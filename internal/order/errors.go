package order

import (
	"errors"
	"fmt"
)

var (
	ErrClientNotFound  = errors.New("client does not exist")
	ErrEmptyCart       = errors.New("cart is empty, nothing to order")
	ErrReceiptNotFound = errors.New("receipt does not exist")

	// ErrCartClearFailed reports that the receipt was committed but the source
	// cart could not be cleared afterwards. Callers must treat the checkout as
	// persisted and re-query receipts rather than assume it rolled back.
	ErrCartClearFailed = errors.New("receipt created but cart could not be cleared")
)

// UpstreamError reports a collaborator call that did not return success.
type UpstreamError struct {
	Service string
	Status  int
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("calling %s: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("calling %s: unexpected status %d", e.Service, e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
