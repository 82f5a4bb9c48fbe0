package database

import (
	"context"
	"fmt"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the full DDL for the sales database. Order items restrict product
// deletion; deleting an order cascades to its items.
const Schema = `
CREATE TABLE IF NOT EXISTS customers (
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(100) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS products (
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	price NUMERIC(12,2) NOT NULL CHECK (price >= 0)
);

CREATE TABLE IF NOT EXISTS orders (
	id SERIAL PRIMARY KEY,
	customer_id INTEGER NOT NULL REFERENCES customers(id),
	order_date TIMESTAMPTZ NOT NULL DEFAULT now(),
	status VARCHAR(50) NOT NULL DEFAULT 'Em andamento',
	total NUMERIC(12,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS order_items (
	id SERIAL PRIMARY KEY,
	order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	product_id INTEGER NOT NULL REFERENCES products(id),
	quantity INTEGER NOT NULL CHECK (quantity > 0),
	unit_price NUMERIC(12,2) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);
CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id);
`

// Bootstrap creates the schema if it does not exist yet.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info().Msg("database schema ready")
	return nil
}

// Seed inserts the sample data set when the database is empty: two customers,
// four products and three orders. A non-empty customers table leaves the
// database untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count customers: %w", err)
	}
	if count > 0 {
		logger.Debug().Msg("database already populated, skipping seed")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var maria, joao int
	if err := tx.QueryRow(ctx,
		`INSERT INTO customers (name, email) VALUES ($1, $2) RETURNING id`,
		"Maria Silva", "maria@example.com").Scan(&maria); err != nil {
		return fmt.Errorf("failed to seed customer: %w", err)
	}
	if err := tx.QueryRow(ctx,
		`INSERT INTO customers (name, email) VALUES ($1, $2) RETURNING id`,
		"João Souza", "joao@example.com").Scan(&joao); err != nil {
		return fmt.Errorf("failed to seed customer: %w", err)
	}

	products := []struct {
		name  string
		price float64
	}{
		{"Notebook Super", 4500.00},
		{"Mouse Gamer", 150.00},
		{"Teclado Mecânico", 300.00},
		{"Webcam Full HD", 250.00},
	}
	productIDs := make([]int, len(products))
	for i, p := range products {
		if err := tx.QueryRow(ctx,
			`INSERT INTO products (name, price) VALUES ($1, $2) RETURNING id`,
			p.name, p.price).Scan(&productIDs[i]); err != nil {
			return fmt.Errorf("failed to seed product: %w", err)
		}
	}

	orders := []seedOrderSpec{
		{maria, model.StatusInProgress, []seedItem{
			{productIDs[0], 1, products[0].price},
			{productIDs[1], 2, products[1].price},
		}},
		{joao, model.StatusDone, []seedItem{
			{productIDs[2], 1, products[2].price},
		}},
		{maria, model.StatusInProgress, []seedItem{
			{productIDs[3], 3, products[3].price},
		}},
	}

	for _, o := range orders {
		if err := seedOrder(ctx, tx, o); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	logger.Info().
		Int("customers", 2).
		Int("products", len(products)).
		Int("orders", len(orders)).
		Msg("sample data created")

	return nil
}

type seedItem struct {
	product  int
	quantity int
	price    float64
}

type seedOrderSpec struct {
	customer int
	status   string
	items    []seedItem
}

func seedOrder(ctx context.Context, tx pgx.Tx, o seedOrderSpec) error {
	var orderID int
	if err := tx.QueryRow(ctx,
		`INSERT INTO orders (customer_id, status) VALUES ($1, $2) RETURNING id`,
		o.customer, o.status).Scan(&orderID); err != nil {
		return fmt.Errorf("failed to seed order: %w", err)
	}

	total := 0.0
	for _, it := range o.items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4)`,
			orderID, it.product, it.quantity, it.price); err != nil {
			return fmt.Errorf("failed to seed order item: %w", err)
		}
		total += float64(it.quantity) * it.price
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET total = $1 WHERE id = $2`, total, orderID); err != nil {
		return fmt.Errorf("failed to set seed order total: %w", err)
	}

	return nil
}
