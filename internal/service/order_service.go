package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crmstack/crm-backend/internal/models"
	"github.com/crmstack/crm-backend/internal/repository"
)

// OrderService handles order business logic
type OrderService interface {
	Create(ctx context.Context, input *models.OrderInput) (*CreateOrderResult, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context, orderBy []models.OrderBy) ([]*models.Order, error)
	ListRecentByStatus(ctx context.Context, since time.Time, status string) ([]*models.Order, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	now          func() time.Time
	logger       *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		now:          time.Now,
		logger:       logger,
	}
}

// Create resolves the customer and product set, rejects the order if the
// customer is missing, no products resolve, or any requested ID is invalid,
// then persists the order with its total snapshotted from current prices.
func (s *orderService) Create(ctx context.Context, input *models.OrderInput) (*CreateOrderResult, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &CreateOrderResult{
				Errors: []string{fmt.Sprintf("Invalid customer ID: %d", input.CustomerID)},
			}, nil
		}
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}

	if len(input.ProductIDs) == 0 {
		return &CreateOrderResult{
			Errors: []string{"At least one product is required."},
		}, nil
	}

	productIDs := dedupeIDs(input.ProductIDs)
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}

	var errs []string
	if len(products) == 0 {
		errs = append(errs, "No valid products found.")
	} else if len(products) != len(productIDs) {
		errs = append(errs, "Some product IDs are invalid.")
	}
	if len(errs) > 0 {
		return &CreateOrderResult{Errors: errs}, nil
	}

	// Snapshot the total from the prices in effect right now. Later price
	// changes never touch this order.
	total := decimal.Zero
	for _, product := range products {
		total = total.Add(product.Price)
	}

	orderDate := s.now()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}

	order := &models.Order{
		CustomerID:  customer.ID,
		Status:      models.OrderStatusPending,
		OrderDate:   orderDate,
		TotalAmount: total,
		Customer:    customer,
		Products:    products,
	}

	if err := s.orderRepo.Create(ctx, order, productIDs); err != nil {
		s.logger.Error("failed to create order",
			slog.Int64("customer_id", customer.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("order created",
		slog.Int64("order_id", order.ID),
		slog.Int64("customer_id", customer.ID),
		slog.Int("products", len(products)),
		slog.String("total_amount", total.String()),
	)

	return &CreateOrderResult{Order: order}, nil
}

// GetByID retrieves an order by ID
func (s *orderService) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// List retrieves all orders with optional ordering
func (s *orderService) List(ctx context.Context, orderBy []models.OrderBy) ([]*models.Order, error) {
	orders, err := s.orderRepo.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListRecentByStatus retrieves orders placed at or after the cutoff in the
// given status. The reminder job uses it with the pending status.
func (s *orderService) ListRecentByStatus(ctx context.Context, since time.Time, status string) ([]*models.Order, error) {
	orders, err := s.orderRepo.ListRecentByStatus(ctx, since, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}
	return orders, nil
}

// Count returns the total number of orders
func (s *orderService) Count(ctx context.Context) (int64, error) {
	return s.orderRepo.Count(ctx)
}

// TotalRevenue returns the sum of every order's stored total
func (s *orderService) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return s.orderRepo.SumTotalAmount(ctx)
}

// dedupeIDs collapses repeated IDs while preserving first-seen order
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
