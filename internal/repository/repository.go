package repository

import (
	"context"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"

	"github.com/jackc/pgx/v5"
)

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	// GetAll retrieves all customers ordered by id.
	GetAll(ctx context.Context) ([]model.Customer, error)

	// GetByID retrieves a single customer, or nil when absent.
	GetByID(ctx context.Context, id int) (*model.Customer, error)

	// EmailExists reports whether another customer (any customer when
	// excludeID is 0) already uses the given email.
	EmailExists(ctx context.Context, email string, excludeID int) (bool, error)

	// Create inserts a customer and returns it with the assigned id.
	Create(ctx context.Context, name, email string) (*model.Customer, error)

	// Update persists the customer's current field values.
	Update(ctx context.Context, c *model.Customer) error

	// Delete removes a customer. Returns false when no row matched.
	Delete(ctx context.Context, id int) (bool, error)

	// HasOrders reports whether any order references the customer.
	HasOrders(ctx context.Context, id int) (bool, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products ordered by id.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product, or nil when absent.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// GetByIDs retrieves the products for the given ids, keyed by id.
	GetByIDs(ctx context.Context, ids []int) (map[int]model.Product, error)

	// Create inserts a product and returns it with the assigned id.
	Create(ctx context.Context, name string, price float64) (*model.Product, error)

	// Update persists the product's current field values.
	Update(ctx context.Context, p *model.Product) error

	// Delete removes a product. Returns false when no row matched.
	Delete(ctx context.Context, id int) (bool, error)

	// InOrders reports whether any order item references the product.
	InOrders(ctx context.Context, id int) (bool, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// GetAll retrieves every order with denormalized customer name and
	// embedded line items, ordered by id.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves one order with its items, or nil when absent.
	GetByID(ctx context.Context, id int) (*model.Order, error)

	// Create inserts the order head within the transaction and fills in the
	// assigned id.
	Create(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateItems inserts the order's line items within the transaction.
	CreateItems(ctx context.Context, tx pgx.Tx, orderID int, items []model.OrderItem) error

	// DeleteItems removes every line item of the order within the transaction.
	DeleteItems(ctx context.Context, tx pgx.Tx, orderID int) error

	// Update persists status, customer and total within the transaction.
	Update(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// Delete removes an order and, by cascade, its items. Returns false when
	// no row matched.
	Delete(ctx context.Context, id int) (bool, error)
}

// ReportRepository defines the aggregate report queries.
type ReportRepository interface {
	// SalesSummary aggregates order count, revenue and units sold.
	SalesSummary(ctx context.Context) (*model.SalesSummary, error)

	// PendingOrders retrieves orders still in progress.
	PendingOrders(ctx context.Context) ([]model.PendingOrder, error)

	// TopCustomers ranks customers by number of orders, descending.
	TopCustomers(ctx context.Context) ([]model.TopCustomer, error)
}
