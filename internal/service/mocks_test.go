package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crmstack/crm-backend/internal/models"
)

// In-memory repository mocks shared by the service tests

type mockCustomerRepository struct {
	customers []*models.Customer
	createErr error
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if m.createErr != nil {
		return m.createErr
	}
	customer.ID = int64(len(m.customers) + 1)
	customer.CreatedAt = time.Now()
	m.customers = append(m.customers, customer)
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %d not found", id))
}

func (m *mockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, c := range m.customers {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCustomerRepository) List(ctx context.Context, orderBy []models.OrderBy) ([]*models.Customer, error) {
	return m.customers, nil
}

func (m *mockCustomerRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.customers)), nil
}

func (m *mockCustomerRepository) DeleteAll(ctx context.Context) error {
	m.customers = nil
	return nil
}

type mockProductRepository struct {
	products []*models.Product
}

func (m *mockProductRepository) Create(ctx context.Context, product *models.Product) error {
	product.ID = int64(len(m.products) + 1)
	product.CreatedAt = time.Now()
	m.products = append(m.products, product)
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("product with ID %d not found", id))
}

func (m *mockProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Product, error) {
	found := []*models.Product{}
	for _, id := range ids {
		for _, p := range m.products {
			if p.ID == id {
				found = append(found, p)
			}
		}
	}
	return found, nil
}

func (m *mockProductRepository) List(ctx context.Context, orderBy []models.OrderBy) ([]*models.Product, error) {
	return m.products, nil
}

func (m *mockProductRepository) ListBelowStock(ctx context.Context, threshold int) ([]*models.Product, error) {
	low := []*models.Product{}
	for _, p := range m.products {
		if p.Stock < threshold {
			low = append(low, p)
		}
	}
	return low, nil
}

func (m *mockProductRepository) UpdateStock(ctx context.Context, id int64, stock int) error {
	for _, p := range m.products {
		if p.ID == id {
			p.Stock = stock
			return nil
		}
	}
	return models.ErrNotFoundWithMsg(fmt.Sprintf("product with ID %d not found", id))
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func (m *mockProductRepository) DeleteAll(ctx context.Context) error {
	m.products = nil
	return nil
}

type mockOrderRepository struct {
	orders []*models.Order
}

func (m *mockOrderRepository) Create(ctx context.Context, order *models.Order, productIDs []int64) error {
	order.ID = int64(len(m.orders) + 1)
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("order with ID %d not found", id))
}

func (m *mockOrderRepository) List(ctx context.Context, orderBy []models.OrderBy) ([]*models.Order, error) {
	return m.orders, nil
}

func (m *mockOrderRepository) ListRecentByStatus(ctx context.Context, since time.Time, status string) ([]*models.Order, error) {
	matched := []*models.Order{}
	for _, o := range m.orders {
		if o.Status == status && !o.OrderDate.Before(since) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (m *mockOrderRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.orders)), nil
}

func (m *mockOrderRepository) SumTotalAmount(ctx context.Context) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, o := range m.orders {
		sum = sum.Add(o.TotalAmount)
	}
	return sum, nil
}
