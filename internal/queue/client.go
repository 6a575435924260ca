package queue

import (
	"context"

	"github.com/crmstack/crm-backend/internal/models"
)

// Client defines the interface for reminder queue operations
type Client interface {
	// Publish sends a reminder job to the queue
	Publish(ctx context.Context, job *models.ReminderJob) error

	// Consume receives reminder jobs and processes them with the handler.
	// concurrency controls how many jobs can be processed simultaneously.
	Consume(ctx context.Context, handler ReminderHandler, concurrency int) error

	// Close closes the queue connection
	Close() error

	// Health checks if the queue is healthy
	Health(ctx context.Context) error
}

// ReminderHandler is a function that processes a reminder job
type ReminderHandler func(ctx context.Context, job *models.ReminderJob) error
