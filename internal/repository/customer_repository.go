package repository

import (
	"context"
	"fmt"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// customerRepository implements the CustomerRepository interface using PostgreSQL.
type customerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
func NewCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// GetAll retrieves all customers ordered by id.
func (r *customerRepository) GetAll(ctx context.Context) ([]model.Customer, error) {
	query := `
		SELECT id, name, email
		FROM customers
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query customers")
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan customer row")
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating customer rows")
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// GetByID retrieves a single customer, or nil when absent.
func (r *customerRepository) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	query := `
		SELECT id, name, email
		FROM customers
		WHERE id = $1
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Int("customer_id", id).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return &c, nil
}

// EmailExists reports whether another customer already uses the given email.
func (r *customerRepository) EmailExists(ctx context.Context, email string, excludeID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM customers WHERE email = $1 AND id <> $2
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to check email")
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return exists, nil
}

// Create inserts a customer and returns it with the assigned id.
func (r *customerRepository) Create(ctx context.Context, name, email string) (*model.Customer, error) {
	query := `
		INSERT INTO customers (name, email)
		VALUES ($1, $2)
		RETURNING id
	`

	c := model.Customer{Name: name, Email: email}
	if err := r.pool.QueryRow(ctx, query, name, email).Scan(&c.ID); err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to create customer")
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Debug().Int("customer_id", c.ID).Msg("customer created")

	return &c, nil
}

// Update persists the customer's current field values.
func (r *customerRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, email = $2
		WHERE id = $3
	`

	tag, err := r.pool.Exec(ctx, query, c.Name, c.Email, c.ID)
	if err != nil {
		r.logger.Error().Err(err).Int("customer_id", c.ID).Msg("failed to update customer")
		return fmt.Errorf("failed to update customer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update customer: no row for id %d", c.ID)
	}

	return nil
}

// Delete removes a customer. Returns false when no row matched.
func (r *customerRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int("customer_id", id).Msg("failed to delete customer")
		return false, fmt.Errorf("failed to delete customer: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// HasOrders reports whether any order references the customer.
func (r *customerRepository) HasOrders(ctx context.Context, id int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM orders WHERE customer_id = $1
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Int("customer_id", id).Msg("failed to check customer orders")
		return false, fmt.Errorf("failed to check customer orders: %w", err)
	}

	return exists, nil
}
