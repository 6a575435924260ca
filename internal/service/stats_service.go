package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crmstack/crm-backend/internal/repository"
)

// StatsService exposes the aggregate counters in one call
type StatsService interface {
	Stats(ctx context.Context) (*Stats, error)
}

type statsService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) StatsService {
	return &statsService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

// Stats returns total customers, total orders and total revenue. Revenue is
// the sum of stored order totals, so price changes after an order was placed
// do not move it.
func (s *statsService) Stats(ctx context.Context) (*Stats, error) {
	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	revenue, err := s.orderRepo.SumTotalAmount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return &Stats{
		TotalCustomers: customers,
		TotalOrders:    orders,
		TotalRevenue:   revenue,
	}, nil
}
