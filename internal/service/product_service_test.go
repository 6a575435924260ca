package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/crmstack/crm-backend/internal/models"
)

func intPtr(v int) *int { return &v }

func TestCreateProduct_PriceValidation(t *testing.T) {
	tests := []struct {
		name  string
		price decimal.Decimal
		valid bool
	}{
		{"negative", decimal.NewFromFloat(-1), false},
		{"zero", decimal.Zero, false},
		{"one cent", decimal.NewFromFloat(0.01), true},
		{"normal", decimal.NewFromFloat(1200.00), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockProductRepository{}
			svc := NewProductService(repo, testLogger())

			result, err := svc.Create(context.Background(), &models.ProductInput{
				Name:  "Widget",
				Price: tt.price,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			created := result.Product != nil
			if created != tt.valid {
				t.Errorf("price %s: created=%v, want %v (errors: %v)",
					tt.price, created, tt.valid, result.Errors)
			}
			if !tt.valid && len(result.Errors) == 0 {
				t.Error("expected a price error")
			}
		})
	}
}

func TestCreateProduct_NegativeStock(t *testing.T) {
	repo := &mockProductRepository{}
	svc := NewProductService(repo, testLogger())

	result, err := svc.Create(context.Background(), &models.ProductInput{
		Name:  "Widget",
		Price: decimal.NewFromFloat(10),
		Stock: intPtr(-5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Product != nil {
		t.Error("expected creation to fail")
	}
	if len(result.Errors) != 1 || result.Errors[0] != "Stock cannot be negative." {
		t.Errorf("expected stock error, got %v", result.Errors)
	}
}

func TestCreateProduct_CollectsAllErrors(t *testing.T) {
	repo := &mockProductRepository{}
	svc := NewProductService(repo, testLogger())

	result, err := svc.Create(context.Background(), &models.ProductInput{
		Name:  "Widget",
		Price: decimal.Zero,
		Stock: intPtr(-1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Errors) != 2 {
		t.Errorf("expected price and stock errors together, got %v", result.Errors)
	}
}

func TestCreateProduct_StockDefaultsToZero(t *testing.T) {
	repo := &mockProductRepository{}
	svc := NewProductService(repo, testLogger())

	result, err := svc.Create(context.Background(), &models.ProductInput{
		Name:  "Widget",
		Price: decimal.NewFromFloat(5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Product == nil {
		t.Fatalf("expected product, got errors %v", result.Errors)
	}
	if result.Product.Stock != 0 {
		t.Errorf("stock = %d, want 0", result.Product.Stock)
	}
}

func TestUpdateLowStock_Sweep(t *testing.T) {
	repo := &mockProductRepository{
		products: []*models.Product{
			{ID: 1, Name: "Laptop", Stock: 5},
			{ID: 2, Name: "Phone", Stock: 12},
			{ID: 3, Name: "Tablet", Stock: 9},
		},
	}
	svc := NewProductService(repo, testLogger())

	result, err := svc.UpdateLowStock(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Message != "2 product(s) updated successfully." {
		t.Errorf("message = %q", result.Message)
	}
	if len(result.UpdatedProducts) != 2 {
		t.Fatalf("expected 2 updated products, got %d", len(result.UpdatedProducts))
	}

	wantStock := map[int64]int{1: 15, 3: 19}
	for _, p := range result.UpdatedProducts {
		if want, ok := wantStock[p.ID]; !ok {
			t.Errorf("unexpected product %d in sweep", p.ID)
		} else if p.Stock != want {
			t.Errorf("product %d stock = %d, want %d", p.ID, p.Stock, want)
		}
	}

	// The untouched product keeps its stock.
	if repo.products[1].Stock != 12 {
		t.Errorf("product 2 stock = %d, want 12", repo.products[1].Stock)
	}
}

func TestUpdateLowStock_SecondSweepIsEmpty(t *testing.T) {
	repo := &mockProductRepository{
		products: []*models.Product{
			{ID: 1, Name: "Laptop", Stock: 5},
			{ID: 2, Name: "Tablet", Stock: 9},
		},
	}
	svc := NewProductService(repo, testLogger())
	ctx := context.Background()

	if _, err := svc.UpdateLowStock(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := svc.UpdateLowStock(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(second.UpdatedProducts) != 0 {
		t.Errorf("second sweep should update nothing, got %d", len(second.UpdatedProducts))
	}
	if second.Message != "0 product(s) updated successfully." {
		t.Errorf("message = %q", second.Message)
	}
}
