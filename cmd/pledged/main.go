package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/givebridge/givebridge/internal/application/usecase"
	"github.com/givebridge/givebridge/internal/domain/service"
	"github.com/givebridge/givebridge/internal/infrastructure/config"
	"github.com/givebridge/givebridge/internal/infrastructure/messaging"
	pgRepo "github.com/givebridge/givebridge/internal/infrastructure/postgres"
	grpcPresentation "github.com/givebridge/givebridge/internal/presentation/grpc"
	"github.com/givebridge/givebridge/internal/presentation/rest"
	pkgkafka "github.com/givebridge/givebridge/pkg/kafka"
	"github.com/givebridge/givebridge/pkg/observability"
	pkgpostgres "github.com/givebridge/givebridge/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting pledge-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(ctx) }() //nolint:errcheck // best-effort shutdown

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	ruleRepo := pgRepo.NewBonusRuleRepo(pool)
	paymentRepo := pgRepo.NewPaymentRepo(pool)
	pledgeRepo := pgRepo.NewPledgeRepo(pool)
	categoryRepo := pgRepo.NewCategoryRepo(pool)
	planRepo := pgRepo.NewPaymentPlanRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	matcher := service.NewRuleMatcher()
	calculator := service.NewBonusCalculator()

	// Wire use cases.
	assignUC := usecase.NewAssignSolicitorUseCase(
		paymentRepo, paymentRepo, ruleRepo, pledgeRepo, categoryRepo, matcher, calculator, publisher)
	recalcUC := usecase.NewRecalculateBonusUseCase(
		paymentRepo, paymentRepo, ruleRepo, pledgeRepo, categoryRepo, matcher, calculator, publisher)
	getPaymentUC := usecase.NewGetPaymentUseCase(paymentRepo, paymentRepo)
	deletePaymentUC := usecase.NewDeletePaymentUseCase(paymentRepo, paymentRepo, publisher)
	createPlanUC := usecase.NewCreatePaymentPlanUseCase(planRepo, pledgeRepo, publisher)
	getPlanUC := usecase.NewGetPaymentPlanUseCase(planRepo)
	pausePlanUC := usecase.NewPausePaymentPlanUseCase(planRepo, publisher)
	resumePlanUC := usecase.NewResumePaymentPlanUseCase(planRepo, publisher)
	cancelPlanUC := usecase.NewCancelPaymentPlanUseCase(planRepo, publisher)

	// gRPC server.
	handler := grpcPresentation.NewPledgeHandler(
		assignUC, recalcUC, getPaymentUC, deletePaymentUC,
		createPlanUC, getPlanUC, pausePlanUC, resumePlanUC, cancelPlanUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("pledge-service stopped")
}
