package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	repo   repository.ProductRepository
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves all products.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by id.
func (s *productService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductMissing(id)
	}
	return product, nil
}

// Create registers a new product.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "name and price are required")
	}
	if req.Price == nil {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "price is required")
	}
	if *req.Price < 0 {
		return nil, model.ErrInvalidPrice
	}

	product, err := s.repo.Create(ctx, name, *req.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Int("product_id", product.ID).Msg("product created")

	return product, nil
}

// Update applies the non-nil fields of the update payload.
func (s *productService) Update(ctx context.Context, id int, upd *model.ProductUpdate) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductMissing(id)
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return nil, model.NewDomainError(model.ErrCodeMissingField, "name cannot be empty")
		}
		product.Name = strings.TrimSpace(*upd.Name)
	}

	if upd.Price != nil {
		if *upd.Price < 0 {
			return nil, model.ErrInvalidPrice
		}
		product.Price = *upd.Price
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// Delete removes a product not referenced by any order.
func (s *productService) Delete(ctx context.Context, id int) error {
	inOrders, err := s.repo.InOrders(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if inOrders {
		s.logger.Warn().Int("product_id", id).Msg("refusing to delete product referenced by orders")
		return model.ErrProductInUse
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !deleted {
		return model.ErrProductMissing(id)
	}

	s.logger.Info().Int("product_id", id).Msg("product deleted")

	return nil
}
