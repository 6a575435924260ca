package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/crmstack/crm-backend/internal/client"
	"github.com/crmstack/crm-backend/internal/config"
	"github.com/crmstack/crm-backend/internal/jobs"
	"github.com/crmstack/crm-backend/internal/queue"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("starting CRM scheduler")

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

	queueClient, err := queue.NewRedisClient(queue.RedisConfig{
		URL:       cfg.Queue.RedisURL,
		QueueName: cfg.Queue.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer queueClient.Close()

	heartbeatSink, err := openSink(cfg.Jobs.HeartbeatLogFile)
	if err != nil {
		logger.Error("failed to open heartbeat log", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer heartbeatSink.Close()

	reportSink, err := openSink(cfg.Jobs.ReportLogFile)
	if err != nil {
		logger.Error("failed to open report log", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer reportSink.Close()

	lowStockSink, err := openSink(cfg.Jobs.LowStockLogFile)
	if err != nil {
		logger.Error("failed to open low-stock log", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer lowStockSink.Close()

	reminderSink, err := openSink(cfg.Jobs.ReminderLogFile)
	if err != nil {
		logger.Error("failed to open reminder log", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer reminderSink.Close()

	scheduler := jobs.NewScheduler(logger)

	registrations := []struct {
		name     string
		schedule string
		job      jobs.Job
	}{
		{"heartbeat", cfg.Jobs.HeartbeatSchedule, jobs.NewHeartbeat(api, heartbeatSink)},
		{"report", cfg.Jobs.ReportSchedule, jobs.NewReport(api, reportSink)},
		{"low_stock_restock", cfg.Jobs.LowStockSchedule, jobs.NewLowStockRestock(api, lowStockSink)},
		{"order_reminders", cfg.Jobs.ReminderSchedule,
			jobs.NewOrderReminders(api, queueClient, reminderSink, cfg.Jobs.ReminderWindow, logger)},
	}

	for _, reg := range registrations {
		if err := scheduler.Register(reg.name, reg.schedule, reg.job); err != nil {
			logger.Error("failed to register job",
				slog.String("job", reg.name),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	scheduler.Start()
	logger.Info("scheduler running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down scheduler", slog.String("signal", sig.String()))
	scheduler.Stop()
	logger.Info("scheduler stopped gracefully")
}

// openSink opens a job log file for appending
func openSink(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
