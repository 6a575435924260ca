package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crmstack/crm-backend/internal/models"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order, productIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context, orderBy []models.OrderBy) ([]*models.Order, error)
	ListRecentByStatus(ctx context.Context, since time.Time, status string) ([]*models.Order, error)
	Count(ctx context.Context) (int64, error)
	SumTotalAmount(ctx context.Context) (decimal.Decimal, error)
}

// orderRepository implements OrderRepository using PostgreSQL
type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row and its product associations in one transaction
func (r *orderRepository) Create(ctx context.Context, order *models.Order, productIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (customer_id, status, order_date, total_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err = tx.QueryRowContext(
		ctx,
		query,
		order.CustomerID,
		order.Status,
		order.OrderDate,
		order.TotalAmount,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	for _, productID := range productIDs {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO order_products (order_id, product_id) VALUES ($1, $2)`,
			order.ID,
			productID,
		)
		if err != nil {
			return fmt.Errorf("failed to associate product %d: %w", productID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

// GetByID retrieves an order with its customer and products
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.status, o.order_date, o.total_amount,
		       c.id, c.name, c.email, c.phone, c.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1`

	order := &models.Order{Customer: &models.Customer{}}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerID,
		&order.Status,
		&order.OrderDate,
		&order.TotalAmount,
		&order.Customer.ID,
		&order.Customer.Name,
		&order.Customer.Email,
		&order.Customer.Phone,
		&order.Customer.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("order with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	products, err := r.productsForOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Products = products

	return order, nil
}

// List retrieves all orders with optional multi-key ordering
func (r *orderRepository) List(ctx context.Context, orderBy []models.OrderBy) ([]*models.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.status, o.order_date, o.total_amount,
		       c.id, c.name, c.email, c.phone, c.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id` + models.OrderByClause(orderBy, "o.id")

	return r.queryOrders(ctx, query)
}

// ListRecentByStatus retrieves orders placed at or after the cutoff with the
// given status. Used by the order reminder job.
func (r *orderRepository) ListRecentByStatus(ctx context.Context, since time.Time, status string) ([]*models.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.status, o.order_date, o.total_amount,
		       c.id, c.name, c.email, c.phone, c.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.order_date >= $1 AND o.status = $2
		ORDER BY o.order_date`

	return r.queryOrders(ctx, query, since, status)
}

// Count returns the total number of orders
func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// SumTotalAmount returns the sum of every order's stored total_amount.
// Totals are snapshots, so this never touches current product prices.
func (r *orderRepository) SumTotalAmount(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM orders`
	if err := r.db.QueryRowContext(ctx, query).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum order totals: %w", err)
	}
	return sum, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*models.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []*models.Order{}
	for rows.Next() {
		order := &models.Order{Customer: &models.Customer{}}
		err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.Status,
			&order.OrderDate,
			&order.TotalAmount,
			&order.Customer.ID,
			&order.Customer.Name,
			&order.Customer.Email,
			&order.Customer.Phone,
			&order.Customer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	for _, order := range orders {
		products, err := r.productsForOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Products = products
	}

	return orders, nil
}

func (r *orderRepository) productsForOrder(ctx context.Context, orderID int64) ([]*models.Product, error) {
	query := `
		SELECT p.id, p.name, p.price, p.stock, p.created_at
		FROM products p
		JOIN order_products op ON op.product_id = p.id
		WHERE op.order_id = $1
		ORDER BY p.id`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}
