package jobs

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/crmstack/crm-backend/internal/client"
)

const heartbeatStamp = "02/01/2006-15:04:05"

// Heartbeat appends a timestamped liveness line to the sink on every run,
// then probes the query surface. The probe is best effort: its outcome is
// logged but never returned, so a dead API cannot fail the heartbeat.
type Heartbeat struct {
	api  *client.Client
	sink io.Writer
	now  func() time.Time
}

// NewHeartbeat creates a heartbeat job writing to the given sink
func NewHeartbeat(api *client.Client, sink io.Writer) *Heartbeat {
	return &Heartbeat{
		api:  api,
		sink: sink,
		now:  time.Now,
	}
}

// Run executes one heartbeat
func (j *Heartbeat) Run(ctx context.Context) error {
	timestamp := j.now().Format(heartbeatStamp)

	if _, err := fmt.Fprintf(j.sink, "%s CRM is alive\n", timestamp); err != nil {
		return fmt.Errorf("failed to write heartbeat: %w", err)
	}

	hello, err := j.api.Hello(ctx)
	if err != nil {
		fmt.Fprintf(j.sink, "%s API check failed: %v\n", timestamp, err)
		return nil
	}

	fmt.Fprintf(j.sink, "%s API hello: %s\n", timestamp, hello)
	return nil
}
