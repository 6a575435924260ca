package service

import (
	"github.com/shopspring/decimal"

	"github.com/crmstack/crm-backend/internal/models"
)

// Mutation results carry the created entity (or nil) plus a list of
// validation messages. Expected validation failures live in Errors and are
// never returned as Go errors; those are reserved for store failures.

// CreateCustomerResult is the outcome of a single customer creation
type CreateCustomerResult struct {
	Customer *models.Customer `json:"customer"`
	Message  string           `json:"message"`
	Errors   []string         `json:"errors,omitempty"`
}

// BulkCreateCustomersResult is the outcome of a bulk customer creation.
// Each failed row contributes exactly one entry to Errors, tagged with its
// 1-based row index, so len(Customers)+len(Errors) equals the input length.
type BulkCreateCustomersResult struct {
	Customers []*models.Customer `json:"customers"`
	Errors    []string           `json:"errors,omitempty"`
}

// CreateProductResult is the outcome of a product creation
type CreateProductResult struct {
	Product *models.Product `json:"product"`
	Errors  []string        `json:"errors,omitempty"`
}

// CreateOrderResult is the outcome of an order creation
type CreateOrderResult struct {
	Order  *models.Order `json:"order"`
	Errors []string      `json:"errors,omitempty"`
}

// RestockedProduct is the slim product view returned by the low-stock sweep
type RestockedProduct struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// RestockResult is the outcome of the low-stock sweep
type RestockResult struct {
	Message         string             `json:"message"`
	UpdatedProducts []RestockedProduct `json:"updated_products"`
}

// Stats holds the aggregate counters exposed by the query surface
type Stats struct {
	TotalCustomers int64           `json:"total_customers"`
	TotalOrders    int64           `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}
