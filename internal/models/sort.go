package models

import (
	"fmt"
	"strings"
)

// Sortable columns per entity. Keys are the API field names and values the
// underlying columns, so callers can never inject arbitrary SQL.
var (
	CustomerSortFields = map[string]string{
		"id":         "id",
		"name":       "name",
		"email":      "email",
		"created_at": "created_at",
	}
	ProductSortFields = map[string]string{
		"id":         "id",
		"name":       "name",
		"price":      "price",
		"stock":      "stock",
		"created_at": "created_at",
	}
	// Order columns are table-qualified because the list query joins customers.
	OrderSortFields = map[string]string{
		"id":           "o.id",
		"customer_id":  "o.customer_id",
		"status":       "o.status",
		"order_date":   "o.order_date",
		"total_amount": "o.total_amount",
	}
)

// OrderBy is a single sort key
type OrderBy struct {
	Column string
	Desc   bool
}

// ParseOrderBy turns API field names into a validated multi-key sort.
// A leading "-" requests descending order. Keys apply left-to-right.
func ParseOrderBy(fields []string, allowed map[string]string) ([]OrderBy, error) {
	var keys []OrderBy
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		desc := strings.HasPrefix(f, "-")
		name := strings.TrimPrefix(f, "-")

		column, ok := allowed[name]
		if !ok {
			return nil, ErrInvalidInput(fmt.Sprintf("cannot order by unknown field: %s", name))
		}
		keys = append(keys, OrderBy{Column: column, Desc: desc})
	}
	return keys, nil
}

// OrderByClause renders the keys as a SQL ORDER BY clause, or the given
// fallback when no keys were requested.
func OrderByClause(keys []OrderBy, fallback string) string {
	if len(keys) == 0 {
		return " ORDER BY " + fallback
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if k.Desc {
			parts = append(parts, k.Column+" DESC")
		} else {
			parts = append(parts, k.Column)
		}
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}
