package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/repository"

	"github.com/rs/zerolog"
)

// customerService implements CustomerService.
type customerService struct {
	repo   repository.CustomerRepository
	logger zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		repo:   repo,
		logger: logger.With().Str("service", "customer").Logger(),
	}
}

// GetAll retrieves all customers.
func (s *customerService) GetAll(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return customers, nil
}

// GetByID retrieves a single customer by id.
func (s *customerService) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}
	return customer, nil
}

// Create registers a new customer.
func (s *customerService) Create(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "name and email are required")
	}

	taken, err := s.repo.EmailExists(ctx, email, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	if taken {
		s.logger.Warn().Str("email", email).Msg("email already registered")
		return nil, model.ErrEmailTaken
	}

	customer, err := s.repo.Create(ctx, name, email)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info().Int("customer_id", customer.ID).Msg("customer created")

	return customer, nil
}

// Update applies the non-nil fields of the update payload.
func (s *customerService) Update(ctx context.Context, id int, upd *model.CustomerUpdate) (*model.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return nil, model.NewDomainError(model.ErrCodeMissingField, "name cannot be empty")
		}
		customer.Name = strings.TrimSpace(*upd.Name)
	}

	if upd.Email != nil {
		email := strings.TrimSpace(*upd.Email)
		if email == "" {
			return nil, model.NewDomainError(model.ErrCodeMissingField, "email cannot be empty")
		}

		taken, err := s.repo.EmailExists(ctx, email, id)
		if err != nil {
			return nil, fmt.Errorf("failed to update customer: %w", err)
		}
		if taken {
			s.logger.Warn().Str("email", email).Int("customer_id", id).Msg("email already registered to another customer")
			return nil, model.ErrEmailTaken
		}
		customer.Email = email
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

// Delete removes a customer without orders.
func (s *customerService) Delete(ctx context.Context, id int) error {
	hasOrders, err := s.repo.HasOrders(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if hasOrders {
		s.logger.Warn().Int("customer_id", id).Msg("refusing to delete customer with orders")
		return model.ErrCustomerHasOrders
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if !deleted {
		return model.ErrCustomerNotFound
	}

	s.logger.Info().Int("customer_id", id).Msg("customer deleted")

	return nil
}
