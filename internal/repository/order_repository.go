package repository

import (
	"context"
	"fmt"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// GetAll retrieves every order with denormalized customer name and embedded
// line items, ordered by id.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT o.id, o.customer_id, c.name, o.order_date, o.status, o.total
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		ORDER BY o.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	index := make(map[int]int)
	for rows.Next() {
		var o model.Order
		err := rows.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.OrderDate, &o.Status, &o.Total)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		o.Items = []model.OrderItem{}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.itemsForAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return orders, nil
}

// GetByID retrieves one order with its items, or nil when absent.
func (r *orderRepository) GetByID(ctx context.Context, id int) (*model.Order, error) {
	query := `
		SELECT o.id, o.customer_id, c.name, o.order_date, o.status, o.total
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1
	`

	var o model.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.CustomerID,
		&o.CustomerName,
		&o.OrderDate,
		&o.Status,
		&o.Total,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("order_id", id).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("order_id", id).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	itemsQuery := `
		SELECT i.id, i.order_id, i.product_id, p.name, i.quantity, i.unit_price
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().Err(err).Int("order_id", id).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	o.Items = []model.OrderItem{}
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return &o, nil
}

// itemsForAll loads every line item with its denormalized product name.
func (r *orderRepository) itemsForAll(ctx context.Context) ([]model.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.product_id, p.name, i.quantity, i.unit_price
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		ORDER BY i.order_id, i.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}

// Create inserts the order head within the transaction and fills in the
// assigned id and order date.
func (r *orderRepository) Create(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (customer_id, status, total)
		VALUES ($1, $2, $3)
		RETURNING id, order_date
	`

	err := tx.QueryRow(ctx, query, order.CustomerID, order.Status, order.Total).
		Scan(&order.ID, &order.OrderDate)
	if err != nil {
		r.logger.Error().Err(err).Int("customer_id", order.CustomerID).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().Int("order_id", order.ID).Msg("order created")

	return nil
}

// CreateItems inserts the order's line items within the transaction.
func (r *orderRepository) CreateItems(ctx context.Context, tx pgx.Tx, orderID int, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, orderID, item.ProductID, item.Quantity, item.UnitPrice)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Int("order_id", orderID).
				Int("product_id", items[i].ProductID).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("order_id", orderID).
		Int("count", len(items)).
		Msg("order items created")

	return nil
}

// DeleteItems removes every line item of the order within the transaction.
func (r *orderRepository) DeleteItems(ctx context.Context, tx pgx.Tx, orderID int) error {
	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		r.logger.Error().Err(err).Int("order_id", orderID).Msg("failed to delete order items")
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	return nil
}

// Update persists status, customer and total within the transaction.
func (r *orderRepository) Update(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		UPDATE orders
		SET customer_id = $1, status = $2, total = $3
		WHERE id = $4
	`

	tag, err := tx.Exec(ctx, query, order.CustomerID, order.Status, order.Total, order.ID)
	if err != nil {
		r.logger.Error().Err(err).Int("order_id", order.ID).Msg("failed to update order")
		return fmt.Errorf("failed to update order: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update order: no row for id %d", order.ID)
	}

	return nil
}

// Delete removes an order and, by cascade, its items. Returns false when no
// row matched.
func (r *orderRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int("order_id", id).Msg("failed to delete order")
		return false, fmt.Errorf("failed to delete order: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
