package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/crmstack/crm-backend/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateCustomer_Success(t *testing.T) {
	repo := &mockCustomerRepository{}
	svc := NewCustomerService(repo, testLogger())

	result, err := svc.Create(context.Background(), &models.CustomerInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "+1234567890",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Customer == nil {
		t.Fatalf("expected customer, got nil (errors: %v)", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %v", result.Errors)
	}
	if result.Customer.ID == 0 {
		t.Error("expected customer ID to be assigned")
	}
	if result.Message != "Customer created successfully" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestCreateCustomer_DuplicateEmail(t *testing.T) {
	repo := &mockCustomerRepository{}
	svc := NewCustomerService(repo, testLogger())
	ctx := context.Background()

	input := &models.CustomerInput{Name: "Alice", Email: "alice@example.com"}

	first, err := svc.Create(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Customer == nil {
		t.Fatalf("first creation should succeed, got errors %v", first.Errors)
	}

	second, err := svc.Create(ctx, &models.CustomerInput{Name: "Alice Again", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Customer != nil {
		t.Error("second creation with same email should fail")
	}
	if len(second.Errors) != 1 || second.Errors[0] != "Email already exists." {
		t.Errorf("expected duplicate email error, got %v", second.Errors)
	}
}

func TestCreateCustomer_CollectsAllErrors(t *testing.T) {
	repo := &mockCustomerRepository{
		customers: []*models.Customer{
			{ID: 1, Name: "Taken", Email: "taken@example.com"},
		},
	}
	svc := NewCustomerService(repo, testLogger())

	result, err := svc.Create(context.Background(), &models.CustomerInput{
		Name:  "Bob",
		Email: "taken@example.com",
		Phone: "not-a-phone",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Customer != nil {
		t.Error("expected creation to fail")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected both phone and email errors, got %v", result.Errors)
	}
}

func TestCreateCustomer_InvalidPhones(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"", true},
		{"+12345678901", true},
		{"123-456-7890", true},
		{"12345", false},
		{"+123", false},
		{"123-45-6789", false},
		{"phone", false},
		{"+1234567890123456", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			repo := &mockCustomerRepository{}
			svc := NewCustomerService(repo, testLogger())

			result, err := svc.Create(context.Background(), &models.CustomerInput{
				Name:  "Alice",
				Email: "alice@example.com",
				Phone: tt.phone,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			created := result.Customer != nil
			if created != tt.valid {
				t.Errorf("phone %q: created=%v, want %v (errors: %v)",
					tt.phone, created, tt.valid, result.Errors)
			}
		})
	}
}

func TestBulkCreateCustomers_InBatchDuplicate(t *testing.T) {
	repo := &mockCustomerRepository{}
	svc := NewCustomerService(repo, testLogger())

	result, err := svc.BulkCreate(context.Background(), []*models.CustomerInput{
		{Name: "First", Email: "a@x.com"},
		{Name: "Second", Email: "a@x.com"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Customers) != 1 {
		t.Fatalf("expected 1 created customer, got %d", len(result.Customers))
	}
	if result.Customers[0].Name != "First" {
		t.Errorf("expected first row to win, got %q", result.Customers[0].Name)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
	if !strings.HasPrefix(result.Errors[0], "Row 2:") {
		t.Errorf("error should reference row 2, got %q", result.Errors[0])
	}
	if !strings.Contains(result.Errors[0], "a@x.com") {
		t.Errorf("error should name the email, got %q", result.Errors[0])
	}
}

func TestBulkCreateCustomers_RowAccounting(t *testing.T) {
	repo := &mockCustomerRepository{
		customers: []*models.Customer{
			{ID: 1, Name: "Existing", Email: "existing@example.com"},
		},
	}
	svc := NewCustomerService(repo, testLogger())

	inputs := []*models.CustomerInput{
		{Name: "Ok", Email: "ok@example.com"},
		{Name: "Dup", Email: "existing@example.com"},
		{Name: "BadPhone", Email: "bad@example.com", Phone: "nope"},
		{Name: "AlsoOk", Email: "also@example.com", Phone: "123-456-7890"},
		{Name: "NoEmail", Email: ""},
	}

	result, err := svc.BulkCreate(context.Background(), inputs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(result.Customers) + len(result.Errors); got != len(inputs) {
		t.Errorf("created+skipped = %d, want %d", got, len(inputs))
	}
	if len(result.Customers) != 2 {
		t.Errorf("expected 2 created, got %d", len(result.Customers))
	}

	wantRows := []string{"Row 2:", "Row 3:", "Row 5:"}
	for i, prefix := range wantRows {
		if !strings.HasPrefix(result.Errors[i], prefix) {
			t.Errorf("error %d = %q, want prefix %q", i, result.Errors[i], prefix)
		}
	}
}

func TestBulkCreateCustomers_NeverAborts(t *testing.T) {
	repo := &mockCustomerRepository{}
	svc := NewCustomerService(repo, testLogger())

	// A failing row in the middle must not stop later rows.
	result, err := svc.BulkCreate(context.Background(), []*models.CustomerInput{
		{Name: "A", Email: "a@example.com"},
		{Name: "", Email: "b@example.com"},
		{Name: "C", Email: "c@example.com"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Customers) != 2 {
		t.Errorf("expected rows after a failure to be processed, created=%d", len(result.Customers))
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected one error, got %v", result.Errors)
	}
}
