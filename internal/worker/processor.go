package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/crmstack/crm-backend/internal/models"
	"github.com/crmstack/crm-backend/internal/queue"
	"github.com/crmstack/crm-backend/internal/repository"
)

// ReminderProcessor delivers queued order reminders
type ReminderProcessor struct {
	orderRepo   repository.OrderRepository
	notifier    Notifier
	queueClient queue.Client
	maxRetries  int
	logger      *slog.Logger
}

// NewReminderProcessor creates a new reminder processor
func NewReminderProcessor(
	orderRepo repository.OrderRepository,
	notifier Notifier,
	queueClient queue.Client,
	maxRetries int,
	logger *slog.Logger,
) *ReminderProcessor {
	return &ReminderProcessor{
		orderRepo:   orderRepo,
		notifier:    notifier,
		queueClient: queueClient,
		maxRetries:  maxRetries,
		logger:      logger,
	}
}

// Process handles a single reminder job
func (p *ReminderProcessor) Process(ctx context.Context, job *models.ReminderJob) error {
	order, err := p.orderRepo.GetByID(ctx, job.OrderID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Order disappeared between enqueue and delivery; nothing to remind about.
			p.logger.Warn("order no longer exists, dropping reminder",
				slog.Int64("order_id", job.OrderID),
			)
			return nil
		}
		p.logger.Error("failed to fetch order",
			slog.Int64("order_id", job.OrderID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to fetch order: %w", err)
	}

	if order.Status != models.OrderStatusPending {
		p.logger.Info("order no longer pending, skipping reminder",
			slog.Int64("order_id", order.ID),
			slog.String("status", order.Status),
		)
		return nil
	}

	p.logger.Info("processing reminder",
		slog.Int64("order_id", order.ID),
		slog.String("customer_email", job.CustomerEmail),
		slog.Int("retry_count", job.RetryCount),
	)

	if err := p.notifier.Notify(ctx, job.CustomerEmail, order.ID); err != nil {
		p.logger.Warn("reminder delivery failed",
			slog.Int64("order_id", order.ID),
			slog.Int("retry_count", job.RetryCount),
			slog.String("error", err.Error()),
		)
		return p.handleFailure(ctx, job, err)
	}

	p.logger.Info("reminder delivered",
		slog.Int64("order_id", order.ID),
		slog.String("customer_email", job.CustomerEmail),
	)

	return nil
}

// handleFailure requeues the job until the retry budget is exhausted
func (p *ReminderProcessor) handleFailure(ctx context.Context, job *models.ReminderJob, notifyErr error) error {
	if job.RetryCount+1 >= p.maxRetries {
		p.logger.Error("reminder permanently failed after max retries",
			slog.Int64("order_id", job.OrderID),
			slog.Int("retry_count", job.RetryCount+1),
			slog.Int("max_retries", p.maxRetries),
		)
		return nil // job processed, albeit failed
	}

	retry := &models.ReminderJob{
		OrderID:       job.OrderID,
		CustomerEmail: job.CustomerEmail,
		RetryCount:    job.RetryCount + 1,
	}

	if err := p.queueClient.Publish(ctx, retry); err != nil {
		p.logger.Error("failed to requeue reminder",
			slog.Int64("order_id", job.OrderID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to requeue reminder: %w", err)
	}

	p.logger.Info("reminder requeued",
		slog.Int64("order_id", job.OrderID),
		slog.Int("retry_count", retry.RetryCount),
		slog.Int("max_retries", p.maxRetries),
	)

	return fmt.Errorf("reminder delivery failed, retry %d/%d: %w", retry.RetryCount, p.maxRetries, notifyErr)
}
