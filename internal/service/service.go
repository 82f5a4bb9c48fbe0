package service

import (
	"context"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"
)

// CustomerService defines operations for customer management.
type CustomerService interface {
	// GetAll retrieves all customers.
	GetAll(ctx context.Context) ([]model.Customer, error)

	// GetByID retrieves a single customer by id.
	GetByID(ctx context.Context, id int) (*model.Customer, error)

	// Create registers a new customer. Name and email are required and the
	// email must be unused.
	Create(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error)

	// Update applies the non-nil fields of the update payload.
	Update(ctx context.Context, id int, upd *model.CustomerUpdate) (*model.Customer, error)

	// Delete removes a customer without orders.
	Delete(ctx context.Context, id int) error
}

// ProductService defines operations for product management.
type ProductService interface {
	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by id.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Create registers a new product. Name and a non-negative price are
	// required.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update applies the non-nil fields of the update payload.
	Update(ctx context.Context, id int, upd *model.ProductUpdate) (*model.Product, error)

	// Delete removes a product not referenced by any order.
	Delete(ctx context.Context, id int) error
}

// OrderService defines operations for order management.
type OrderService interface {
	// GetAll retrieves every order with items and denormalized names.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves one order by id.
	GetByID(ctx context.Context, id int) (*model.Order, error)

	// Create places a new order, snapshotting current product prices and
	// computing the total server-side.
	Create(ctx context.Context, req *model.OrderRequest) (*model.OrderCreated, error)

	// Update applies the non-nil fields; a non-nil item list replaces the
	// order's line items and recomputes the total.
	Update(ctx context.Context, id int, upd *model.OrderUpdate) error

	// Delete removes an order and its items.
	Delete(ctx context.Context, id int) error
}

// ReportService defines the aggregate sales reports.
type ReportService interface {
	// SalesSummary aggregates the whole order book.
	SalesSummary(ctx context.Context) (*model.SalesSummary, error)

	// PendingOrders lists orders still in progress.
	PendingOrders(ctx context.Context) ([]model.PendingOrder, error)

	// TopCustomers ranks customers by order count.
	TopCustomers(ctx context.Context) ([]model.TopCustomer, error)
}
