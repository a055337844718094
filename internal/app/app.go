package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kpnaturals/storefront/internal/config"
	"github.com/kpnaturals/storefront/internal/event"
	handler "github.com/kpnaturals/storefront/internal/handler/http"
	"github.com/kpnaturals/storefront/internal/repository"
	"github.com/kpnaturals/storefront/internal/repository/postgres"
	"github.com/kpnaturals/storefront/internal/service"
	"github.com/kpnaturals/storefront/migrations"
	"github.com/kpnaturals/storefront/pkg/database"
	"github.com/kpnaturals/storefront/pkg/health"
	pkgkafka "github.com/kpnaturals/storefront/pkg/kafka"
	"github.com/kpnaturals/storefront/pkg/tracing"
)

const serviceName = "storefront-api"

// App wires together all dependencies and runs the storefront API. The
// PostgreSQL pool and Kafka producer are optional: without a configured
// store the API still serves, reporting the absence on store-backed
// operations.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	pool            *pgxpool.Pool
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Tracing.
	tracingShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.OTELEndpoint,
		SampleRate:   cfg.OTELSampleRate,
		Enabled:      cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Slow query logging threshold.
	database.SetSlowQueryLogging(time.Duration(cfg.SlowQueryThresholdMs)*time.Millisecond, logger)

	// PostgreSQL is optional. When absent the repositories stay nil and the
	// services surface STORE_NOT_CONFIGURED.
	var (
		pool        *pgxpool.Pool
		reviewRepo  repository.ReviewRepository
		productRepo repository.ProductRepository
	)

	if cfg.StoreConfigured() {
		pgCfg := database.PostgresConfig{
			Host:            cfg.PostgresHost,
			Port:            cfg.PostgresPort,
			User:            cfg.PostgresUser,
			Password:        cfg.PostgresPass,
			DBName:          cfg.PostgresDB,
			SSLMode:         cfg.PostgresSSL,
			MaxConns:        cfg.DBMaxConns,
			MinConns:        cfg.DBMinConns,
			MaxConnLifetime: time.Duration(cfg.DBMaxConnLifetimeMins) * time.Minute,
			MaxConnIdleTime: time.Duration(cfg.DBMaxConnIdleTimeMins) * time.Minute,
		}

		pool, err = database.NewPostgresPoolWithLogger(ctx, &pgCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		logger.Info("connected to PostgreSQL",
			slog.String("host", cfg.PostgresHost),
			slog.Int("port", cfg.PostgresPort),
			slog.String("database", cfg.PostgresDB),
		)

		if err := database.RunMigrations(ctx, pool, migrations.FS, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations completed")

		database.RegisterPoolMetrics(pool, serviceName)

		reviewRepo = postgres.NewReviewRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
	} else {
		logger.Warn("POSTGRES_HOST not set; review and catalog store disabled")
	}

	// Kafka is optional too; without brokers no events are published.
	var (
		producer      *pkgkafka.Producer
		eventProducer service.ReviewEventPublisher
	)

	if cfg.EventsConfigured() {
		kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
		producer = pkgkafka.NewProducer(kafkaCfg, logger)
		eventProducer = event.NewProducer(producer, logger)
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
	} else {
		logger.Info("KAFKA_BROKERS not set; event publishing disabled")
	}

	// Build the dependency graph.
	reviewService := service.NewReviewService(reviewRepo, eventProducer, logger)
	productService := service.NewProductService(productRepo, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	if pool != nil {
		healthHandler.Register("postgres", func(ctx context.Context) error {
			return pool.Ping(ctx)
		})
	}
	if producer != nil {
		p := producer
		healthHandler.RegisterNonCritical("kafka", func(ctx context.Context) error {
			return p.Ping(ctx)
		})
	}

	// HTTP router.
	router := handler.NewRouter(handler.RouterConfig{
		Environment:       cfg.Environment,
		ServiceName:       serviceName,
		PprofAllowedCIDRs: cfg.PprofAllowedCIDRs,
	}, productService, reviewService, healthHandler, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		pool:            pool,
		producer:        producer,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	// Graceful HTTP server shutdown with a 10-second deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		}
	}

	if a.pool != nil {
		a.pool.Close()
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
