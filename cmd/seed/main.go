package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/crmstack/crm-backend/internal/config"
	"github.com/crmstack/crm-backend/internal/db"
	"github.com/crmstack/crm-backend/internal/models"
	"github.com/crmstack/crm-backend/internal/repository"
)

// Seed utility for demo and test bootstrap: clears customers and products,
// then inserts a small fixed data set.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	database, err := db.New(db.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	ctx := context.Background()

	if err := database.Migrate(ctx); err != nil {
		logger.Error("failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	customerRepo := repository.NewCustomerRepository(database.DB)
	productRepo := repository.NewProductRepository(database.DB)

	if err := customerRepo.DeleteAll(ctx); err != nil {
		logger.Error("failed to clear customers", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := productRepo.DeleteAll(ctx); err != nil {
		logger.Error("failed to clear products", slog.String("error", err.Error()))
		os.Exit(1)
	}

	customers := []*models.Customer{
		{Name: "Alice", Email: "alice@example.com", Phone: "+1234567890"},
		{Name: "Bob", Email: "bob@example.com"},
	}
	for _, customer := range customers {
		if err := customerRepo.Create(ctx, customer); err != nil {
			logger.Error("failed to seed customer",
				slog.String("email", customer.Email),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	products := []*models.Product{
		{Name: "Laptop", Price: decimal.NewFromFloat(1200.00), Stock: 10},
		{Name: "Phone", Price: decimal.NewFromFloat(600.00), Stock: 15},
	}
	for _, product := range products {
		if err := productRepo.Create(ctx, product); err != nil {
			logger.Error("failed to seed product",
				slog.String("name", product.Name),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	fmt.Println("Seed data inserted!")
}
