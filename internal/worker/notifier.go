package worker

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Notifier delivers an order reminder to a customer
type Notifier interface {
	Notify(ctx context.Context, email string, orderID int64) error
}

// mockNotifier simulates reminder delivery with a configurable success rate
type mockNotifier struct {
	successRate float64
	minDelay    time.Duration
	maxDelay    time.Duration
}

// NewMockNotifier creates a new mock reminder notifier.
// successRate: probability of success (0.0 to 1.0), default 0.92.
func NewMockNotifier(successRate float64) Notifier {
	if successRate <= 0 || successRate > 1.0 {
		successRate = 0.92
	}

	return &mockNotifier{
		successRate: successRate,
		minDelay:    50 * time.Millisecond,
		maxDelay:    200 * time.Millisecond,
	}
}

// Notify simulates sending a reminder email
func (n *mockNotifier) Notify(ctx context.Context, email string, orderID int64) error {
	// Simulate network latency
	delay := n.minDelay + time.Duration(rand.Int63n(int64(n.maxDelay-n.minDelay)))

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return ctx.Err()
	}

	if rand.Float64() > n.successRate {
		return fmt.Errorf("mock notifier failed: simulated network error")
	}

	return nil
}
