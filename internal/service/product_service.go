package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crmstack/crm-backend/internal/models"
	"github.com/crmstack/crm-backend/internal/repository"
)

// ProductService handles product business logic
type ProductService interface {
	Create(ctx context.Context, input *models.ProductInput) (*CreateProductResult, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, orderBy []models.OrderBy) ([]*models.Product, error)
	UpdateLowStock(ctx context.Context) (*RestockResult, error)
	Count(ctx context.Context) (int64, error)
}

type productService struct {
	productRepo repository.ProductRepository
	threshold   int
	increment   int
	logger      *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) ProductService {
	return &productService{
		productRepo: productRepo,
		threshold:   models.LowStockThreshold,
		increment:   models.RestockIncrement,
		logger:      logger,
	}
}

// Create validates and persists a product. Price and stock violations are
// collected into the result rather than failing fast.
func (s *productService) Create(ctx context.Context, input *models.ProductInput) (*CreateProductResult, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return &CreateProductResult{Errors: errs}, nil
	}

	product := &models.Product{
		Name:  input.Name,
		Price: input.Price,
		Stock: input.StockOrDefault(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("failed to create product",
			slog.String("name", input.Name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("product created",
		slog.Int64("product_id", product.ID),
		slog.String("name", product.Name),
	)

	return &CreateProductResult{Product: product}, nil
}

// GetByID retrieves a product by ID
func (s *productService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// List retrieves all products with optional ordering
func (s *productService) List(ctx context.Context, orderBy []models.OrderBy) ([]*models.Product, error) {
	products, err := s.productRepo.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// UpdateLowStock sweeps every product below the threshold and restocks it
// by the fixed increment. With increment >= threshold a single sweep always
// clears the threshold, so an immediate second run updates nothing.
func (s *productService) UpdateLowStock(ctx context.Context) (*RestockResult, error) {
	products, err := s.productRepo.ListBelowStock(ctx, s.threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to find low-stock products: %w", err)
	}

	updated := []RestockedProduct{}
	for _, product := range products {
		newStock := product.Stock + s.increment
		if err := s.productRepo.UpdateStock(ctx, product.ID, newStock); err != nil {
			s.logger.Error("failed to restock product",
				slog.Int64("product_id", product.ID),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("failed to restock product %d: %w", product.ID, err)
		}

		product.Stock = newStock
		updated = append(updated, RestockedProduct{
			ID:    product.ID,
			Name:  product.Name,
			Stock: product.Stock,
		})
	}

	s.logger.Info("low-stock sweep finished",
		slog.Int("updated", len(updated)),
	)

	return &RestockResult{
		Message:         fmt.Sprintf("%d product(s) updated successfully.", len(updated)),
		UpdatedProducts: updated,
	}, nil
}

// Count returns the total number of products
func (s *productService) Count(ctx context.Context) (int64, error) {
	return s.productRepo.Count(ctx)
}
