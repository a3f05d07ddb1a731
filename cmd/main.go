package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/akylbek/payment-system/payment-gateway/internal/api"
	"github.com/akylbek/payment-system/payment-gateway/internal/bank"
	"github.com/akylbek/payment-system/payment-gateway/internal/config"
	"github.com/akylbek/payment-system/payment-gateway/internal/events"
	"github.com/akylbek/payment-system/payment-gateway/internal/middleware"
	"github.com/akylbek/payment-system/payment-gateway/internal/service"
	"github.com/akylbek/payment-system/payment-gateway/internal/store"
	"github.com/akylbek/payment-system/payment-gateway/internal/telemetry"
	"github.com/akylbek/payment-system/payment-gateway/internal/validation"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize telemetry
	if err := telemetry.InitTelemetry("payment-gateway"); err != nil {
		panic(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	}
	defer telemetry.Shutdown(context.Background())

	telemetry.Logger.Info("Starting Payment Gateway")

	// Event publisher is optional; without brokers the gateway runs alone.
	var publisher *events.Publisher
	if cfg.KafkaBrokers != "" {
		publisher = events.NewPublisher(cfg.KafkaBrokers)
		defer publisher.Close()
	}

	// Assemble the gateway
	validator := validation.NewValidator(time.Now)
	bankClient := bank.NewHTTPClient(cfg.BankBaseURL, cfg.BankTimeout)
	summaries := store.NewSummaryStore()
	gateway := service.NewGateway(validator, bankClient, summaries, publisher)

	apiKeys := middleware.ParseAPIKeys(cfg.APIKeys)
	if len(apiKeys) == 0 {
		telemetry.Logger.Warn("No API keys configured, payment routes are unauthenticated")
	}

	r := api.NewRouter(gateway, apiKeys)

	// Setup HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		telemetry.Logger.Info("Payment Gateway starting",
			zap.String("port", cfg.Port),
			zap.String("bank_url", cfg.BankBaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	telemetry.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		telemetry.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	telemetry.Logger.Info("Server exited")
}
