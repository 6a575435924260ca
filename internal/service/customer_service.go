package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crmstack/crm-backend/internal/models"
	"github.com/crmstack/crm-backend/internal/repository"
)

// CustomerService handles customer business logic
type CustomerService interface {
	Create(ctx context.Context, input *models.CustomerInput) (*CreateCustomerResult, error)
	BulkCreate(ctx context.Context, inputs []*models.CustomerInput) (*BulkCreateCustomersResult, error)
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	List(ctx context.Context, orderBy []models.OrderBy) ([]*models.Customer, error)
	Count(ctx context.Context) (int64, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	logger *slog.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create validates and persists a single customer. Validation problems are
// collected into the result rather than failing fast.
func (s *customerService) Create(ctx context.Context, input *models.CustomerInput) (*CreateCustomerResult, error) {
	errs := input.Validate()

	if input.Email != "" {
		exists, err := s.customerRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if exists {
			errs = append(errs, "Email already exists.")
		}
	}

	if len(errs) > 0 {
		return &CreateCustomerResult{
			Message: "Failed to create customer",
			Errors:  errs,
		}, nil
	}

	customer := &models.Customer{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error("failed to create customer",
			slog.String("email", input.Email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("customer created",
		slog.Int64("customer_id", customer.ID),
		slog.String("email", customer.Email),
	)

	return &CreateCustomerResult{
		Customer: customer,
		Message:  "Customer created successfully",
	}, nil
}

// BulkCreate processes each row independently: a failing row is recorded
// with its 1-based index and skipped, never aborting the batch. Because
// successful rows are persisted before later rows are validated, and a
// seen-set tracks the batch, a later row cannot reuse an email claimed
// earlier in the same batch.
func (s *customerService) BulkCreate(ctx context.Context, inputs []*models.CustomerInput) (*BulkCreateCustomersResult, error) {
	result := &BulkCreateCustomersResult{
		Customers: []*models.Customer{},
	}
	seen := make(map[string]bool, len(inputs))

	for i, input := range inputs {
		row := i + 1

		exists := seen[input.Email]
		if !exists && input.Email != "" {
			var err error
			exists, err = s.customerRepo.ExistsByEmail(ctx, input.Email)
			if err != nil {
				return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
			}
		}
		if exists {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Row %d: Email %s already exists.", row, input.Email))
			continue
		}

		if errs := input.Validate(); len(errs) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Row %d: %s", row, errs[0]))
			continue
		}

		customer := &models.Customer{
			Name:  input.Name,
			Email: input.Email,
			Phone: input.Phone,
		}

		if err := s.customerRepo.Create(ctx, customer); err != nil {
			s.logger.Error("failed to create customer in bulk",
				slog.Int("row", row),
				slog.String("email", input.Email),
				slog.String("error", err.Error()),
			)
			result.Errors = append(result.Errors,
				fmt.Sprintf("Row %d: Failed to create customer.", row))
			continue
		}

		seen[input.Email] = true
		result.Customers = append(result.Customers, customer)
	}

	s.logger.Info("bulk customer creation finished",
		slog.Int("requested", len(inputs)),
		slog.Int("created", len(result.Customers)),
		slog.Int("skipped", len(result.Errors)),
	)

	return result, nil
}

// GetByID retrieves a customer by ID
func (s *customerService) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

// List retrieves all customers with optional ordering
func (s *customerService) List(ctx context.Context, orderBy []models.OrderBy) ([]*models.Customer, error) {
	customers, err := s.customerRepo.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Count returns the total number of customers
func (s *customerService) Count(ctx context.Context) (int64, error) {
	return s.customerRepo.Count(ctx)
}
