package service

import (
	"context"
	"fmt"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	logger       zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

// GetAll retrieves every order with items and denormalized names.
func (s *orderService) GetAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves one order by id.
func (s *orderService) GetByID(ctx context.Context, id int) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// Create places a new order. Unit prices are snapshotted from the current
// product prices; the total is the sum of quantity times unit price and is
// never taken from the request.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (*model.OrderCreated, error) {
	if req == nil || req.CustomerID == 0 || len(req.Items) == 0 {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "customer id and order items are required")
	}

	status := req.Status
	if status == "" {
		status = model.StatusInProgress
	}
	if !model.ValidStatus(status) {
		return nil, model.ErrInvalidStatusValue(status)
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if customer == nil {
		s.logger.Warn().Int("customer_id", req.CustomerID).Msg("order for unknown customer")
		return nil, model.ErrCustomerNotFound
	}

	items, total, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure the transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	order := &model.Order{
		CustomerID: req.CustomerID,
		Status:     status,
		Total:      total,
	}

	if err = s.orderRepo.Create(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.CreateItems(ctx, tx, order.ID, items); err != nil {
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int("order_id", order.ID).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int("order_id", order.ID).
		Int("customer_id", order.CustomerID).
		Int("item_count", len(items)).
		Float64("total", total).
		Msg("order created")

	return &model.OrderCreated{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Status:     order.Status,
		Total:      order.Total,
	}, nil
}

// Update applies the non-nil fields of the update payload. A non-nil item
// list replaces the order's items wholesale: prices are re-snapshotted from
// the catalogue and the total recomputed.
func (s *orderService) Update(ctx context.Context, id int, upd *model.OrderUpdate) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if order == nil {
		return model.ErrOrderNotFound
	}

	if upd.Status != nil {
		if !model.ValidStatus(*upd.Status) {
			return model.ErrInvalidStatusValue(*upd.Status)
		}
		order.Status = *upd.Status
	}

	if upd.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *upd.CustomerID)
		if err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		if customer == nil {
			return model.ErrCustomerNotFound
		}
		order.CustomerID = *upd.CustomerID
	}

	var items []model.OrderItem
	if upd.Items != nil {
		var total float64
		items, total, err = s.buildItems(ctx, upd.Items)
		if err != nil {
			return err
		}
		order.Total = total
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if upd.Items != nil {
		if err = s.orderRepo.DeleteItems(ctx, tx, order.ID); err != nil {
			return fmt.Errorf("failed to replace order items: %w", err)
		}
		if err = s.orderRepo.CreateItems(ctx, tx, order.ID, items); err != nil {
			return fmt.Errorf("failed to replace order items: %w", err)
		}
	}

	if err = s.orderRepo.Update(ctx, tx, order); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int("order_id", order.ID).Msg("failed to commit transaction")
		return fmt.Errorf("failed to update order: %w", err)
	}

	s.logger.Info().Int("order_id", order.ID).Str("status", order.Status).Msg("order updated")

	return nil
}

// Delete removes an order and its items.
func (s *orderService) Delete(ctx context.Context, id int) error {
	deleted, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if !deleted {
		return model.ErrOrderNotFound
	}

	s.logger.Info().Int("order_id", id).Msg("order deleted")

	return nil
}

// buildItems validates the requested items, snapshots current unit prices and
// computes the order total.
func (s *orderService) buildItems(ctx context.Context, reqs []model.OrderItemRequest) ([]model.OrderItem, float64, error) {
	if len(reqs) == 0 {
		return nil, 0, model.NewDomainError(model.ErrCodeMissingField, "customer id and order items are required")
	}

	ids := make([]int, len(reqs))
	for i, item := range reqs {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Int("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("invalid order item")
			return nil, 0, model.ErrInvalidQuantity
		}
		ids[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load products: %w", err)
	}

	items := make([]model.OrderItem, len(reqs))
	var total float64
	for i, item := range reqs {
		product, ok := products[item.ProductID]
		if !ok {
			s.logger.Warn().Int("product_id", item.ProductID).Msg("order item for unknown product")
			return nil, 0, model.ErrProductMissing(item.ProductID)
		}
		items[i] = model.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
		}
		total += float64(item.Quantity) * product.Price
	}

	return items, total, nil
}
