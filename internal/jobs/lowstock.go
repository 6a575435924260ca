package jobs

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/crmstack/crm-backend/internal/client"
)

// LowStockRestock invokes the low-stock sweep mutation and appends the
// outcome to the sink.
type LowStockRestock struct {
	api  *client.Client
	sink io.Writer
	now  func() time.Time
}

// NewLowStockRestock creates a restock job writing to the given sink
func NewLowStockRestock(api *client.Client, sink io.Writer) *LowStockRestock {
	return &LowStockRestock{
		api:  api,
		sink: sink,
		now:  time.Now,
	}
}

// Run executes one restock sweep
func (j *LowStockRestock) Run(ctx context.Context) error {
	timestamp := j.now().Format(reportStamp)

	result, err := j.api.RestockLowStock(ctx)
	if err != nil {
		fmt.Fprintf(j.sink, "%s - Restock failed: %v\n", timestamp, err)
		return fmt.Errorf("failed to restock low-stock products: %w", err)
	}

	fmt.Fprintf(j.sink, "%s - %s\n", timestamp, result.Message)
	for _, p := range result.UpdatedProducts {
		fmt.Fprintf(j.sink, "%s - %s restocked to %d\n", timestamp, p.Name, p.Stock)
	}

	return nil
}
