package jobs

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/crmstack/crm-backend/internal/client"
)

const reportStamp = "2006-01-02 15:04:05"

// Report queries the aggregate counters and appends a summary line to the
// sink. On failure it appends a failure line instead.
type Report struct {
	api  *client.Client
	sink io.Writer
	now  func() time.Time
}

// NewReport creates a report job writing to the given sink
func NewReport(api *client.Client, sink io.Writer) *Report {
	return &Report{
		api:  api,
		sink: sink,
		now:  time.Now,
	}
}

// Run generates one report
func (j *Report) Run(ctx context.Context) error {
	timestamp := j.now().Format(reportStamp)

	stats, err := j.api.Stats(ctx)
	if err != nil {
		fmt.Fprintf(j.sink, "%s - Report generation failed: %v\n", timestamp, err)
		return fmt.Errorf("failed to fetch stats: %w", err)
	}

	_, err = fmt.Fprintf(j.sink, "%s - Report: %d customers, %d orders, %s revenue\n",
		timestamp, stats.TotalCustomers, stats.TotalOrders, stats.TotalRevenue.StringFixed(2))
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
