package order

import (
	"context"
	"fmt"
	"log"
	"time"
)

// ClientRegistry answers whether a client exists. Backed by the client
// service over HTTP in production.
type ClientRegistry interface {
	Exists(ctx context.Context, clientID int64) (bool, error)
}

// CartStore exposes the client's staged cart, already joined with catalog
// prices, and lets the composer clear it after checkout.
type CartStore interface {
	GetCart(ctx context.Context, clientID int64) ([]PricedLine, error)
	Clear(ctx context.Context, clientID int64) error
}

// Catalog resolves product ids into full product data in one batch call.
// Ids the catalog does not know are simply absent from the result.
type Catalog interface {
	GetProductsByIDs(ctx context.Context, ids []int64) ([]Product, error)
}

// EventPublisher emits the OrderCreated event after a receipt commits.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, rec *Receipt, items []ReceiptItem) error
}

// CheckoutResult distinguishes "receipt persisted" from "cart cleared". A
// checkout whose cleanup failed has still committed its receipt.
type CheckoutResult struct {
	ReceiptID   int64
	CartCleared bool
}

// Composer orchestrates the end-to-end checkout against the collaborator
// services and the receipt store.
type Composer struct {
	registry ClientRegistry
	carts    CartStore
	receipts Repository
	events   EventPublisher
	logger   *log.Logger
}

func NewComposer(registry ClientRegistry, carts CartStore, receipts Repository, events EventPublisher, logger *log.Logger) *Composer {
	return &Composer{
		registry: registry,
		carts:    carts,
		receipts: receipts,
		events:   events,
		logger:   logger,
	}
}

// CreateOrder converts the client's cart into a persisted receipt.
//
// Steps run strictly in sequence with no retries: validate the client, fetch
// the cart, compute totals, persist receipt + items, clear the cart. Nothing
// serializes two concurrent checkouts for the same client; both may observe
// the same cart and each will persist its own receipt.
func (c *Composer) CreateOrder(ctx context.Context, clientID int64) (CheckoutResult, error) {
	exists, err := c.registry.Exists(ctx, clientID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if !exists {
		return CheckoutResult{}, ErrClientNotFound
	}

	lines, err := c.carts.GetCart(ctx, clientID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if len(lines) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}

	totals := ComputeTotals(lines)

	rec := &Receipt{
		PurchaseDate: time.Now(),
		SubTotal:     totals.SubTotal,
		TPS:          totals.TPS,
		TVQ:          totals.TVQ,
		TotalCost:    totals.TotalCost,
		ClientID:     clientID,
	}

	items := make([]ReceiptItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, ReceiptItem{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	if err := c.receipts.CreateReceipt(ctx, rec, items); err != nil {
		return CheckoutResult{}, fmt.Errorf("persist receipt: %w", err)
	}

	c.publishOrderCreated(ctx, rec, items)

	if err := c.carts.Clear(ctx, clientID); err != nil {
		// The receipt is already committed; report the failed cleanup
		// without rolling anything back.
		c.logger.Printf("clear cart for client %d: %v", clientID, err)
		return CheckoutResult{ReceiptID: rec.ID, CartCleared: false}, ErrCartClearFailed
	}

	return CheckoutResult{ReceiptID: rec.ID, CartCleared: true}, nil
}

// ClientReceipts lists every receipt for a client, validating first that the
// client exists.
func (c *Composer) ClientReceipts(ctx context.Context, clientID int64) ([]Receipt, error) {
	exists, err := c.registry.Exists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	return c.receipts.ListReceiptsByClient(ctx, clientID)
}

// The event is best effort: a publish failure is logged and never fails a
// checkout that already committed.
func (c *Composer) publishOrderCreated(ctx context.Context, rec *Receipt, items []ReceiptItem) {
	if c.events == nil {
		return
	}
	if err := c.events.PublishOrderCreated(ctx, rec, items); err != nil {
		c.logger.Printf("publish OrderCreated for receipt %d: %v", rec.ID, err)
	}
}
