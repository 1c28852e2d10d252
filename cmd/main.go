package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"collabhub/internal/adapter/cache"
	"collabhub/internal/adapter/events"
	httpadapter "collabhub/internal/adapter/http"
	"collabhub/internal/adapter/memory"
	"collabhub/internal/adapter/postgres"
	"collabhub/internal/adapter/usecase"
	"collabhub/internal/config"
	"collabhub/internal/config/configs"
	"collabhub/internal/core/port"
	"collabhub/internal/db"
	"collabhub/internal/telemetry"
)

// main loads configuration, wires the storage driver, the optional
// receipt cache and event publisher, then serves HTTP and relays the
// outbox until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("collabhub stopped with error", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
	logger.Info("collabhub stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	var (
		repo   port.LedgerRepository
		outbox port.OutboxRepository
	)
	switch cfg.Storage.Normalized() {
	case configs.StoragePostgres:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		repo = postgres.NewLedgerRepository(pool)
		outbox = postgres.NewOutboxRepository(pool)
	default:
		store := memory.NewStore()
		repo, outbox = store, store
	}
	logger.Info("storage ready", slog.String("driver", cfg.Storage.Normalized()))

	if cfg.CatalogFile != "" {
		campaigns, err := db.LoadCatalogFile(cfg.CatalogFile)
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		if err = db.Seed(ctx, repo, campaigns); err != nil {
			return err
		}
		logger.Info("catalog loaded", slog.String("file", cfg.CatalogFile), slog.Int("campaigns", len(campaigns)))
	}

	opts := []usecase.Option{usecase.WithLogger(logger)}
	if cfg.Redis.Enabled() {
		client, err := cache.Connect(ctx, cfg.Redis.Address)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer client.Close()
		opts = append(opts, usecase.WithReleaseReceipts(cache.NewReceiptStore(client, cfg.Redis.ReceiptTTL)))
	}

	var publisher port.EventPublisher = events.NewLoggingPublisher(logger)
	if len(cfg.Kafka.Brokers) > 0 {
		kp, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return fmt.Errorf("kafka: %w", err)
		}
		defer kp.Close()
		publisher = kp
	}
	relay := events.NewOutboxRelay(logger, outbox, publisher, cfg.Kafka.RelayInterval, cfg.Kafka.BatchSize)

	svc := usecase.NewLifecycleUseCase(repo, opts...)
	auth := httpadapter.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	handler := httpadapter.NewHandler(svc, auth, logger, cfg.HTTP.RequestTimeout)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := relay.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}
