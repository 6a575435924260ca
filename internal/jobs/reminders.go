package jobs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/crmstack/crm-backend/internal/client"
	"github.com/crmstack/crm-backend/internal/models"
	"github.com/crmstack/crm-backend/internal/queue"
)

// OrderReminders finds pending orders placed within the lookback window,
// logs each one and queues a reminder for delivery. A query failure is
// returned to the caller, which decides whether to exit nonzero (one-shot
// run) or log and wait for the next tick (scheduler).
type OrderReminders struct {
	api         *client.Client
	queueClient queue.Client
	sink        io.Writer
	window      time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// NewOrderReminders creates a reminder job writing to the given sink.
// queueClient may be nil, in which case reminders are only logged.
func NewOrderReminders(
	api *client.Client,
	queueClient queue.Client,
	sink io.Writer,
	window time.Duration,
	logger *slog.Logger,
) *OrderReminders {
	return &OrderReminders{
		api:         api,
		queueClient: queueClient,
		sink:        sink,
		window:      window,
		logger:      logger,
		now:         time.Now,
	}
}

// Run executes one reminder pass
func (j *OrderReminders) Run(ctx context.Context) error {
	cutoff := j.now().Add(-j.window)

	orders, err := j.api.PendingOrdersSince(ctx, cutoff)
	if err != nil {
		timestamp := j.now().Format(reportStamp)
		fmt.Fprintf(j.sink, "%s - Error fetching orders: %v\n", timestamp, err)
		return fmt.Errorf("failed to fetch pending orders: %w", err)
	}

	for _, order := range orders {
		timestamp := j.now().Format(reportStamp)

		email := ""
		if order.Customer != nil {
			email = order.Customer.Email
		}

		fmt.Fprintf(j.sink, "%s - Order ID: %d | Customer Email: %s\n",
			timestamp, order.ID, email)

		if j.queueClient == nil {
			continue
		}

		job := &models.ReminderJob{
			OrderID:       order.ID,
			CustomerEmail: email,
		}
		if err := j.queueClient.Publish(ctx, job); err != nil {
			// Delivery is best effort; the log line above already records the order.
			j.logger.Error("failed to queue reminder",
				slog.Int64("order_id", order.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	j.logger.Info("order reminders processed",
		slog.Int("orders", len(orders)),
	)

	return nil
}
