package models

import (
	"errors"
	"testing"
)

func TestParseOrderBy(t *testing.T) {
	keys, err := ParseOrderBy([]string{"name", "-price"}, ProductSortFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
	if keys[0].Column != "name" || keys[0].Desc {
		t.Errorf("first key = %+v, want ascending name", keys[0])
	}
	if keys[1].Column != "price" || !keys[1].Desc {
		t.Errorf("second key = %+v, want descending price", keys[1])
	}
}

func TestParseOrderBy_UnknownField(t *testing.T) {
	_, err := ParseOrderBy([]string{"password"}, CustomerSortFields)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}

	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Code != "INVALID_INPUT" {
		t.Errorf("expected INVALID_INPUT AppError, got %v", err)
	}
}

func TestParseOrderBy_SkipsBlanks(t *testing.T) {
	keys, err := ParseOrderBy([]string{" id ", "", "  "}, OrderSortFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 1 || keys[0].Column != "o.id" {
		t.Errorf("keys = %+v, want single id key", keys)
	}
}

func TestOrderByClause(t *testing.T) {
	tests := []struct {
		name string
		keys []OrderBy
		want string
	}{
		{"fallback", nil, " ORDER BY id"},
		{"single", []OrderBy{{Column: "name"}}, " ORDER BY name"},
		{"multi", []OrderBy{{Column: "status"}, {Column: "order_date", Desc: true}},
			" ORDER BY status, order_date DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrderByClause(tt.keys, "id"); got != tt.want {
				t.Errorf("OrderByClause = %q, want %q", got, tt.want)
			}
		})
	}
}
