package seller

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("seller: not found")

type Repository interface {
	CreateSeller(ctx context.Context, reg Registration) (*Seller, error)
	GetSeller(ctx context.Context, id int64) (*Seller, error)
	GetStats(ctx context.Context, sellerID int64) (SellerStats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSeller(ctx context.Context, reg Registration) (*Seller, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	s := &Seller{
		LastName:  reg.LastName,
		FirstName: reg.FirstName,
		Username:  reg.Username,
		Credit:    0,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO sellers (last_name, first_name, username, credit)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		s.LastName, s.FirstName, s.Username, s.Credit).Scan(&s.ID)
	if err != nil {
		return nil, fmt.Errorf("insert seller: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO seller_stats (total_sell, sold_items, seller_id) VALUES (0, 0, $1)`,
		s.ID)
	if err != nil {
		return nil, fmt.Errorf("insert stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s, nil
}

func (r *repository) GetSeller(ctx context.Context, id int64) (*Seller, error) {
	var s Seller
	err := r.db.QueryRowContext(ctx,
		`SELECT id, last_name, first_name, username, credit FROM sellers WHERE id=$1`,
		id).Scan(&s.ID, &s.LastName, &s.FirstName, &s.Username, &s.Credit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return &s, nil
}

func (r *repository) GetStats(ctx context.Context, sellerID int64) (SellerStats, error) {
	var s SellerStats
	err := r.db.QueryRowContext(ctx,
		`SELECT id, total_sell, sold_items, seller_id FROM seller_stats WHERE seller_id=$1`,
		sellerID).Scan(&s.ID, &s.TotalSell, &s.SoldItems, &s.SellerID)
	if errors.Is(err, sql.ErrNoRows) {
		return SellerStats{}, ErrNotFound
	}
	if err != nil {
		return SellerStats{}, fmt.Errorf("get stats: %w", err)
	}
	return s, nil
}
