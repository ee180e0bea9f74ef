package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("not found")

// DBPool matches the methods from *pgxpool.Pool that we use.
// This allows us to mock the database in tests.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type Repository interface {
	GetProduct(ctx context.Context, id int64) (Product, error)
	AddProduct(ctx context.Context, p *Product) error
	GetProductsByIDs(ctx context.Context, ids []int64) ([]Product, error)
	GetCartProducts(ctx context.Context, clientID int64) ([]ProductAndQuantity, error)
	AddCartProduct(ctx context.Context, line CartLine) error
	ClearCart(ctx context.Context, clientID int64) error
}

type PostgresRepository struct {
	pool DBPool
}

func NewPostgresRepository(pool DBPool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const productColumns = `product_id, gender, category, sub_category, colour, usage, product_title, image, image_url, price, seller_id`

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ProductID, &p.Gender, &p.Category, &p.SubCategory, &p.Colour,
		&p.Usage, &p.ProductTitle, &p.Image, &p.ImageURL, &p.Price, &p.SellerID)
	return p, err
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id int64) (Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE product_id=$1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) AddProduct(ctx context.Context, p *Product) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO products (gender, category, sub_category, colour, usage, product_title, image, image_url, price, seller_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING product_id
	`, p.Gender, p.Category, p.SubCategory, p.Colour, p.Usage, p.ProductTitle, p.Image, p.ImageURL, p.Price, p.SellerID).
		Scan(&p.ProductID)
}

// GetProductsByIDs is a batch lookup; ids unknown to the catalog are simply
// absent from the result.
func (r *PostgresRepository) GetProductsByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE product_id = ANY($1) ORDER BY product_id`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) GetCartProducts(ctx context.Context, clientID int64) ([]ProductAndQuantity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.product_id, p.gender, p.category, p.sub_category, p.colour, p.usage,
		       p.product_title, p.image, p.image_url, p.price, p.seller_id, c.quantity
		FROM cart_products c
		JOIN products p ON p.product_id = c.product_id
		WHERE c.client_id = $1
		ORDER BY c.id
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart := []ProductAndQuantity{}
	for rows.Next() {
		var entry ProductAndQuantity
		p := &entry.Product
		if err := rows.Scan(&p.ProductID, &p.Gender, &p.Category, &p.SubCategory, &p.Colour,
			&p.Usage, &p.ProductTitle, &p.Image, &p.ImageURL, &p.Price, &p.SellerID, &entry.Quantity); err != nil {
			return nil, err
		}
		cart = append(cart, entry)
	}
	return cart, rows.Err()
}

// AddCartProduct merges the quantity into the client's existing line. A
// non-positive quantity removes the line; zero is never stored.
func (r *PostgresRepository) AddCartProduct(ctx context.Context, line CartLine) error {
	if line.Quantity <= 0 {
		_, err := r.pool.Exec(ctx,
			`DELETE FROM cart_products WHERE client_id=$1 AND product_id=$2`,
			line.ClientID, line.ProductID)
		return err
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO cart_products (client_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (client_id, product_id)
		DO UPDATE SET quantity = cart_products.quantity + EXCLUDED.quantity
	`, line.ClientID, line.ProductID, line.Quantity)
	return err
}

func (r *PostgresRepository) ClearCart(ctx context.Context, clientID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_products WHERE client_id=$1`, clientID)
	return err
}
