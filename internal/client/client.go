package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crmstack/crm-backend/internal/models"
)

// retryBackoff is the base delay between attempts; attempt n waits (n-1) times this.
const retryBackoff = 250 * time.Millisecond

// Client is a typed HTTP client for the CRM query surface, used by the
// background jobs. Every call carries a bounded retry budget and the
// configured timeout; on exhaustion the call fails without affecting the
// caller's schedule.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
}

// Config holds client settings
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// New creates a new API client
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 3
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		maxRetries: cfg.MaxRetries,
	}
}

// Hello performs the liveness probe against the query surface
func (c *Client) Hello(ctx context.Context) (string, error) {
	var resp struct {
		Hello string `json:"hello"`
	}
	if err := c.get(ctx, "/hello", nil, &resp); err != nil {
		return "", err
	}
	return resp.Hello, nil
}

// Stats holds the aggregate counters returned by the query surface
type Stats struct {
	TotalCustomers int64           `json:"total_customers"`
	TotalOrders    int64           `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}

// Stats fetches the aggregate counters
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	if err := c.get(ctx, "/stats", nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// PendingOrdersSince fetches pending orders placed at or after the cutoff
func (c *Client) PendingOrdersSince(ctx context.Context, since time.Time) ([]*models.Order, error) {
	params := url.Values{}
	params.Set("since", since.Format(time.RFC3339))
	params.Set("status", models.OrderStatusPending)

	orders := []*models.Order{}
	if err := c.get(ctx, "/orders", params, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// RestockResult mirrors the low-stock sweep mutation result
type RestockResult struct {
	Message         string `json:"message"`
	UpdatedProducts []struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Stock int    `json:"stock"`
	} `json:"updated_products"`
}

// RestockLowStock invokes the low-stock sweep mutation
func (c *Client) RestockLowStock(ctx context.Context) (*RestockResult, error) {
	result := &RestockResult{}
	if err := c.do(ctx, http.MethodPost, "/products/restock", result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return c.do(ctx, http.MethodGet, path, out)
}

// do issues the request, retrying transient failures with a short backoff
func (c *Client) do(ctx context.Context, method, path string, out interface{}) error {
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(time.Duration(attempt-1) * retryBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("server returned status %d", resp.StatusCode)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}

		return nil
	}

	return fmt.Errorf("request to %s failed after %d attempts: %w", path, c.maxRetries, lastErr)
}
