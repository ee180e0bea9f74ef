package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Repository interface {
	CreateReceipt(ctx context.Context, rec *Receipt, items []ReceiptItem) error
	GetReceiptByID(ctx context.Context, id int64) (*Receipt, error)
	ListReceiptsByClient(ctx context.Context, clientID int64) ([]Receipt, error)
	ListItemsByReceipt(ctx context.Context, receiptID int64) ([]ReceiptItem, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

// CreateReceipt persists the receipt and all of its items in one transaction.
// The database assigns the receipt id; it is back-filled onto every item
// before the item inserts run.
func (r *repo) CreateReceipt(ctx context.Context, rec *Receipt, items []ReceiptItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO receipts (purchase_date, sub_total, tps, tvq, total_cost, client_id)
         VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		rec.PurchaseDate, rec.SubTotal, rec.TPS, rec.TVQ, rec.TotalCost, rec.ClientID,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}

	for i := range items {
		items[i].ReceiptID = rec.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO receipt_items (receipt_id, product_id, quantity)
             VALUES ($1, $2, $3) RETURNING id`,
			items[i].ReceiptID, items[i].ProductID, items[i].Quantity,
		).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("insert receipt_item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *repo) GetReceiptByID(ctx context.Context, id int64) (*Receipt, error) {
	var rec Receipt
	err := r.db.QueryRowContext(ctx,
		`SELECT id, purchase_date, sub_total, tps, tvq, total_cost, client_id
         FROM receipts WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.PurchaseDate, &rec.SubTotal, &rec.TPS, &rec.TVQ, &rec.TotalCost, &rec.ClientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select receipt: %w", err)
	}
	return &rec, nil
}

func (r *repo) ListReceiptsByClient(ctx context.Context, clientID int64) ([]Receipt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, purchase_date, sub_total, tps, tvq, total_cost, client_id
         FROM receipts WHERE client_id = $1 ORDER BY purchase_date DESC, id`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("select receipts: %w", err)
	}
	defer rows.Close()

	var receipts []Receipt
	for rows.Next() {
		var rec Receipt
		if err := rows.Scan(&rec.ID, &rec.PurchaseDate, &rec.SubTotal, &rec.TPS, &rec.TVQ, &rec.TotalCost, &rec.ClientID); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		receipts = append(receipts, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return receipts, nil
}

func (r *repo) ListItemsByReceipt(ctx context.Context, receiptID int64) ([]ReceiptItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, receipt_id, product_id, quantity
         FROM receipt_items WHERE receipt_id = $1 ORDER BY id`,
		receiptID,
	)
	if err != nil {
		return nil, fmt.Errorf("select receipt_items: %w", err)
	}
	defer rows.Close()

	var items []ReceiptItem
	for rows.Next() {
		var it ReceiptItem
		if err := rows.Scan(&it.ID, &it.ReceiptID, &it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan receipt_item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return items, nil
}
