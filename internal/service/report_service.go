package service

import (
	"context"
	"fmt"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/repository"

	"github.com/rs/zerolog"
)

// reportService implements ReportService.
type reportService struct {
	repo   repository.ReportRepository
	logger zerolog.Logger
}

// NewReportService creates a new report service.
func NewReportService(repo repository.ReportRepository, logger zerolog.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger.With().Str("service", "report").Logger(),
	}
}

func (s *reportService) SalesSummary(ctx context.Context) (*model.SalesSummary, error) {
	summary, err := s.repo.SalesSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build sales summary: %w", err)
	}
	return summary, nil
}

func (s *reportService) PendingOrders(ctx context.Context) ([]model.PendingOrder, error) {
	pending, err := s.repo.PendingOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending orders: %w", err)
	}
	return pending, nil
}

func (s *reportService) TopCustomers(ctx context.Context) ([]model.TopCustomer, error) {
	top, err := s.repo.TopCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to rank customers: %w", err)
	}
	return top, nil
}
