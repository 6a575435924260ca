package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Queue    QueueConfig
	API      APIConfig
	Client   ClientConfig
	Worker   WorkerConfig
	Jobs     JobsConfig
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// QueueConfig holds queue configuration (Redis)
type QueueConfig struct {
	RedisURL  string
	QueueName string
}

// APIConfig holds API server configuration
type APIConfig struct {
	Port int
}

// ClientConfig holds settings for callers of the query surface
type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// WorkerConfig holds reminder worker configuration
type WorkerConfig struct {
	Concurrency   int
	MaxRetryCount int
}

// JobsConfig holds background job schedules and log sinks
type JobsConfig struct {
	HeartbeatSchedule string
	LowStockSchedule  string
	ReportSchedule    string
	ReminderSchedule  string
	HeartbeatLogFile  string
	ReportLogFile     string
	ReminderLogFile   string
	LowStockLogFile   string
	ReminderWindow    time.Duration
}

// Load reads configuration from environment variables.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	apiPort, err := strconv.Atoi(getEnv("API_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_PORT: %w", err)
	}

	clientTimeout, err := time.ParseDuration(getEnv("CLIENT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLIENT_TIMEOUT: %w", err)
	}

	maxRetries, err := strconv.Atoi(getEnv("CLIENT_MAX_RETRIES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLIENT_MAX_RETRIES: %w", err)
	}

	workerConcurrency, err := strconv.Atoi(getEnv("WORKER_CONCURRENCY", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKER_CONCURRENCY: %w", err)
	}

	maxRetryCount, err := strconv.Atoi(getEnv("MAX_RETRY_COUNT", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_RETRY_COUNT: %w", err)
	}

	reminderWindow, err := time.ParseDuration(getEnv("REMINDER_WINDOW", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_WINDOW: %w", err)
	}

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "crm"),
			Password: getEnv("DB_PASSWORD", "crm"),
			DBName:   getEnv("DB_NAME", "crm"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Queue: QueueConfig{
			RedisURL:  getEnv("REDIS_URL", "redis://localhost:6379/0"),
			QueueName: getEnv("QUEUE_NAME", "order_reminders"),
		},
		API: APIConfig{
			Port: apiPort,
		},
		Client: ClientConfig{
			BaseURL:    getEnv("CRM_API_URL", "http://localhost:8080"),
			Timeout:    clientTimeout,
			MaxRetries: maxRetries,
		},
		Worker: WorkerConfig{
			Concurrency:   workerConcurrency,
			MaxRetryCount: maxRetryCount,
		},
		Jobs: JobsConfig{
			HeartbeatSchedule: getEnv("HEARTBEAT_SCHEDULE", "*/5 * * * *"),
			LowStockSchedule:  getEnv("LOW_STOCK_SCHEDULE", "0 */12 * * *"),
			ReportSchedule:    getEnv("REPORT_SCHEDULE", "0 6 * * 1"),
			ReminderSchedule:  getEnv("REMINDER_SCHEDULE", "0 8 * * *"),
			HeartbeatLogFile:  getEnv("HEARTBEAT_LOG_FILE", "/tmp/crm_heartbeat_log.txt"),
			ReportLogFile:     getEnv("REPORT_LOG_FILE", "/tmp/crm_report_log.txt"),
			ReminderLogFile:   getEnv("REMINDER_LOG_FILE", "/tmp/order_reminders_log.txt"),
			LowStockLogFile:   getEnv("LOW_STOCK_LOG_FILE", "/tmp/low_stock_updates_log.txt"),
			ReminderWindow:    reminderWindow,
		},
	}, nil
}

// DSN returns the database connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
