package repository

import (
	"context"
	"fmt"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reportRepository implements the ReportRepository interface using PostgreSQL.
type reportRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReportRepository creates a new PostgreSQL-backed report repository.
func NewReportRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReportRepository {
	return &reportRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "report").Logger(),
	}
}

// SalesSummary aggregates order count, revenue and units sold. An empty
// database yields zero values, never nulls.
func (r *reportRepository) SalesSummary(ctx context.Context) (*model.SalesSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM orders),
			COALESCE((SELECT SUM(total) FROM orders), 0),
			COALESCE((SELECT SUM(quantity) FROM order_items), 0)
	`

	var s model.SalesSummary
	if err := r.pool.QueryRow(ctx, query).Scan(&s.TotalOrders, &s.TotalRevenue, &s.TotalUnitsSold); err != nil {
		r.logger.Error().Err(err).Msg("failed to query sales summary")
		return nil, fmt.Errorf("failed to query sales summary: %w", err)
	}

	return &s, nil
}

// PendingOrders retrieves orders still in progress.
func (r *reportRepository) PendingOrders(ctx context.Context) ([]model.PendingOrder, error) {
	query := `
		SELECT o.id, c.name, o.order_date, o.status, o.total
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.status = $1
		ORDER BY o.id
	`

	rows, err := r.pool.Query(ctx, query, model.StatusInProgress)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query pending orders")
		return nil, fmt.Errorf("failed to query pending orders: %w", err)
	}
	defer rows.Close()

	var pending []model.PendingOrder
	for rows.Next() {
		var p model.PendingOrder
		if err := rows.Scan(&p.ID, &p.CustomerName, &p.OrderDate, &p.Status, &p.Total); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan pending order row")
			return nil, fmt.Errorf("failed to scan pending order: %w", err)
		}
		pending = append(pending, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating pending order rows")
		return nil, fmt.Errorf("error iterating pending orders: %w", err)
	}

	return pending, nil
}

// TopCustomers ranks customers by number of orders, descending. Customers
// without orders are excluded by the join.
func (r *reportRepository) TopCustomers(ctx context.Context) ([]model.TopCustomer, error) {
	query := `
		SELECT c.name, COUNT(o.id) AS order_count
		FROM customers c
		JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id, c.name
		ORDER BY order_count DESC, c.name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query top customers")
		return nil, fmt.Errorf("failed to query top customers: %w", err)
	}
	defer rows.Close()

	var top []model.TopCustomer
	for rows.Next() {
		var t model.TopCustomer
		if err := rows.Scan(&t.Name, &t.OrderCount); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan top customer row")
			return nil, fmt.Errorf("failed to scan top customer: %w", err)
		}
		top = append(top, t)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating top customer rows")
		return nil, fmt.Errorf("error iterating top customers: %w", err)
	}

	return top, nil
}
