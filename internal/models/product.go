package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Restock policy applied by the low-stock sweep
const (
	LowStockThreshold = 10
	RestockIncrement  = 10
)

// Product represents an item that can be ordered
type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProductInput holds the fields accepted by product creation.
// Stock is a pointer so an absent field can default to zero.
type ProductInput struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock *int            `json:"stock,omitempty"`
}

// StockOrDefault returns the requested stock, defaulting to 0 when absent.
func (in *ProductInput) StockOrDefault() int {
	if in.Stock == nil {
		return 0
	}
	return *in.Stock
}

// Validate collects field-level problems with the input
func (in *ProductInput) Validate() []string {
	var errs []string
	if in.Name == "" {
		errs = append(errs, "Name is required.")
	}
	if !ValidatePrice(in.Price) {
		errs = append(errs, "Price must be positive.")
	}
	if !ValidateStock(in.StockOrDefault()) {
		errs = append(errs, "Stock cannot be negative.")
	}
	return errs
}
