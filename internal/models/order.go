package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status constants
const (
	OrderStatusPending   = "PENDING"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Order represents a customer order. TotalAmount is a snapshot of the
// referenced products' prices at creation time and is never recomputed.
type Order struct {
	ID          int64           `json:"id"`
	CustomerID  int64           `json:"customer_id"`
	Status      string          `json:"status"`
	OrderDate   time.Time       `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Customer    *Customer       `json:"customer,omitempty"`
	Products    []*Product      `json:"products,omitempty"`
}

// OrderInput holds the fields accepted by order creation
type OrderInput struct {
	CustomerID int64      `json:"customer_id"`
	ProductIDs []int64    `json:"product_ids"`
	OrderDate  *time.Time `json:"order_date,omitempty"`
}

// IsValidOrderStatus checks if the order status is valid
func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// ReminderJob is the payload queued for each pending order reminder
type ReminderJob struct {
	OrderID       int64  `json:"order_id"`
	CustomerEmail string `json:"customer_email"`
	RetryCount    int    `json:"retry_count"`
}
