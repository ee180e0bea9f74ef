package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("client: not found")
	ErrUsernameTaken = errors.New("client: username taken")
)

// Repository is the persistence surface of the client service.
type Repository interface {
	CreateClient(ctx context.Context, reg Registration, hash, salt string) (*Client, error)
	GetClient(ctx context.Context, id int64) (*Client, error)
	GetClientByUsername(ctx context.Context, username string) (*Client, error)
	GetPassword(ctx context.Context, clientID int64) (Password, error)
	UpdateClient(ctx context.Context, c Client) error
	GetStats(ctx context.Context, clientID int64) (ClientStats, error)
	UpdateStats(ctx context.Context, s ClientStats) error
	RecordPurchase(ctx context.Context, clientID int64, items int, amount float64) error
	DeleteClient(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateClient inserts the client, its zeroed stats row and its password
// hash in one transaction, so a half-registered account can never exist.
func (r *repository) CreateClient(ctx context.Context, reg Registration, hash, salt string) (*Client, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var taken int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM clients WHERE username=$1`, reg.Username).Scan(&taken)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken != 0 {
		return nil, ErrUsernameTaken
	}

	c := &Client{
		LastName:  reg.LastName,
		FirstName: reg.FirstName,
		Username:  reg.Username,
		Credit:    0,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO clients (last_name, first_name, username, credit)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		c.LastName, c.FirstName, c.Username, c.Credit).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO client_stats (total_spent, purchased_items, client_id)
		 VALUES (0, 0, $1)`, c.ID)
	if err != nil {
		return nil, fmt.Errorf("insert stats: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO passwords (salt, hash, client_id) VALUES ($1, $2, $3)`,
		salt, hash, c.ID)
	if err != nil {
		return nil, fmt.Errorf("insert password: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return c, nil
}

func (r *repository) GetClient(ctx context.Context, id int64) (*Client, error) {
	var c Client
	err := r.db.QueryRowContext(ctx,
		`SELECT id, last_name, first_name, username, credit FROM clients WHERE id=$1`,
		id).Scan(&c.ID, &c.LastName, &c.FirstName, &c.Username, &c.Credit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

func (r *repository) GetClientByUsername(ctx context.Context, username string) (*Client, error) {
	var c Client
	err := r.db.QueryRowContext(ctx,
		`SELECT id, last_name, first_name, username, credit FROM clients WHERE username=$1`,
		username).Scan(&c.ID, &c.LastName, &c.FirstName, &c.Username, &c.Credit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client by username: %w", err)
	}
	return &c, nil
}

func (r *repository) GetPassword(ctx context.Context, clientID int64) (Password, error) {
	var p Password
	err := r.db.QueryRowContext(ctx,
		`SELECT id, salt, hash, client_id FROM passwords WHERE client_id=$1`,
		clientID).Scan(&p.ID, &p.Salt, &p.Hash, &p.ClientID)
	if errors.Is(err, sql.ErrNoRows) {
		return Password{}, ErrNotFound
	}
	if err != nil {
		return Password{}, fmt.Errorf("get password: %w", err)
	}
	return p, nil
}

// UpdateClient overwrites name and credit. Username is immutable.
func (r *repository) UpdateClient(ctx context.Context, c Client) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE clients SET last_name=$1, first_name=$2, credit=$3 WHERE id=$4`,
		c.LastName, c.FirstName, c.Credit, c.ID)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return requireRow(res)
}

func (r *repository) GetStats(ctx context.Context, clientID int64) (ClientStats, error) {
	var s ClientStats
	err := r.db.QueryRowContext(ctx,
		`SELECT id, total_spent, purchased_items, client_id FROM client_stats WHERE client_id=$1`,
		clientID).Scan(&s.ID, &s.TotalSpent, &s.PurchasedItems, &s.ClientID)
	if errors.Is(err, sql.ErrNoRows) {
		return ClientStats{}, ErrNotFound
	}
	if err != nil {
		return ClientStats{}, fmt.Errorf("get stats: %w", err)
	}
	return s, nil
}

func (r *repository) UpdateStats(ctx context.Context, s ClientStats) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE client_stats SET total_spent=$1, purchased_items=$2 WHERE client_id=$3`,
		s.TotalSpent, s.PurchasedItems, s.ClientID)
	if err != nil {
		return fmt.Errorf("update stats: %w", err)
	}
	return requireRow(res)
}

// RecordPurchase bumps the counters in place so concurrent checkouts
// cannot lose updates the way a read-modify-write would.
func (r *repository) RecordPurchase(ctx context.Context, clientID int64, items int, amount float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE client_stats
		 SET total_spent = total_spent + $1, purchased_items = purchased_items + $2
		 WHERE client_id=$3`,
		amount, items, clientID)
	if err != nil {
		return fmt.Errorf("record purchase: %w", err)
	}
	return requireRow(res)
}

func (r *repository) DeleteClient(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM passwords WHERE client_id=$1`, id); err != nil {
		return fmt.Errorf("delete password: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM client_stats WHERE client_id=$1`, id); err != nil {
		return fmt.Errorf("delete stats: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}
	return tx.Commit()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
