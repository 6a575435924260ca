package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/crmstack/crm-backend/internal/client"
	"github.com/crmstack/crm-backend/internal/config"
	"github.com/crmstack/crm-backend/internal/jobs"
	"github.com/crmstack/crm-backend/internal/queue"
)

// One-shot order reminder run, intended for system cron. Exits nonzero when
// the order query fails so the cron entry surfaces the failure.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	api := client.New(client.Config{
		BaseURL:    cfg.Client.BaseURL,
		Timeout:    cfg.Client.Timeout,
		MaxRetries: cfg.Client.MaxRetries,
	})

	// The reminder queue is optional here: reminders are still logged when
	// Redis is unreachable.
	var queueClient queue.Client
	if qc, err := queue.NewRedisClient(queue.RedisConfig{
		URL:       cfg.Queue.RedisURL,
		QueueName: cfg.Queue.QueueName,
	}, logger); err != nil {
		logger.Warn("reminder queue unavailable, logging only", slog.String("error", err.Error()))
	} else {
		queueClient = qc
		defer qc.Close()
	}

	sink, err := os.OpenFile(cfg.Jobs.ReminderLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Error("failed to open reminder log", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer sink.Close()

	job := jobs.NewOrderReminders(api, queueClient, sink, cfg.Jobs.ReminderWindow, logger)

	if err := job.Run(context.Background()); err != nil {
		logger.Error("order reminder run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println("Order reminders processed!")
}
