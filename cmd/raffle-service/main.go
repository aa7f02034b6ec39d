package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/app/background"
	"github.com/LavaJover/shvark-raffle-service/internal/app/setup"
	deliveryhttp "github.com/LavaJover/shvark-raffle-service/internal/delivery/http"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	defer func() {
		if err := deps.Publisher.Close(); err != nil {
			slog.Error("failed to close kafka publisher", "error", err.Error())
		}
	}()

	usecases := setup.InitializeUsecases(deps)

	router := deliveryhttp.NewRouter(&deliveryhttp.RouterDeps{
		PurchaseUsecase:    usecases.Purchase,
		RaffleUsecase:      usecases.Raffle,
		OfferUsecase:       usecases.Offer,
		BankAccountUsecase: usecases.BankAccount,
		StaffUsecase:       usecases.Staff,
		ReportUsecase:      usecases.Report,
		CustomerUsecase:    usecases.Customer,
		Metrics:            deps.Metrics,
		RateLimits:         deps.Config.RateLimits,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tasks := background.NewBackgroundTasks(usecases.Raffle, usecases.Customer)
	tasks.StartAll(ctx)

	cfg := deps.Config

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port),
		Handler: metricsMux,
	}
	go func() {
		slog.Info("metrics server started", "addr", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server failed", "error", err.Error())
		}
	}()

	apiServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: router,
	}
	go func() {
		slog.Info("http server started", "addr", apiServer.Addr)
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown failed", "error", err.Error())
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("metrics server shutdown failed", "error", err.Error())
	}
}
