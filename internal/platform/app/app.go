// Package app assembles storage, cache, publisher and services from config.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/cache"
	portsrepo "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/repositories"
	portssvc "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/services"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/services"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/platform/config"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/platform/observability"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/publisher"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/repositories/database/pgsql"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/repositories/memory"
	"github.com/quarzasiphix/ksef-ai-sub008/pkg/database"
)

const serviceName = "event-ledger"

// Version is stamped at build time with -ldflags "-X .../internal/platform/app.Version=...".
var Version = "dev"

// App owns every long-lived resource of a running process.
type App struct {
	Config    *config.Config
	Services  *portssvc.ServiceContainer
	Publisher publisher.Publisher
	ViewCache cache.ViewCache
	Tracing   *observability.Provider

	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Option tweaks how New builds the App.
type Option func(*options)

type options struct {
	migrate bool
}

// WithMigrations applies pending migrations before the pool is opened.
func WithMigrations() Option {
	return func(o *options) { o.migrate = true }
}

// New builds the repositories, infrastructure and services described by cfg.
// Redis and NATS are optional: when unreachable the process disables view
// caching and notifications and logs a warning. Only the memory storage driver
// uses the in-process view cache, since it is a single process anyway.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{Config: cfg, logger: logger}

	tracing, err := observability.New(ctx, observability.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    environment(cfg),
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Insecure:       cfg.OTLPInsecure,
		SampleRate:     cfg.TraceSampleRate,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("initialize tracing: %w", err)
	}
	a.Tracing = tracing

	repos, err := a.openRepositories(ctx, o)
	if err != nil {
		_ = tracing.Shutdown(ctx)
		return nil, err
	}

	a.ViewCache = openViewCache(ctx, cfg, logger)
	a.Publisher = openPublisher(cfg, logger)

	a.Services = services.NewServiceContainer(cfg, repos, services.Infrastructure{
		Publisher: a.Publisher,
		ViewCache: a.ViewCache,
		Tracer:    tracing.Tracer(),
	})
	return a, nil
}

func (a *App) openRepositories(ctx context.Context, o options) (portsrepo.RepositoryProvider, error) {
	cfg := a.Config
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		a.logger.Warn("Using in-memory storage; data is lost on restart")
		return memory.NewStore().Provider(), nil
	case config.StorageDriverPostgres:
		if o.migrate {
			a.logger.Info("Running database migrations...")
			if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp, a.logger); err != nil {
				return portsrepo.RepositoryProvider{}, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, fmt.Errorf("initialize database pool: %w", err)
		}
		a.pool = pool
		a.logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(pool), nil
	}
	return portsrepo.RepositoryProvider{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func openViewCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) cache.ViewCache {
	if cfg.RedisAddr == "" {
		return fallbackViewCache(cfg)
	}
	rc := cache.NewRedisViewCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.ViewCacheTTL)
	if err := rc.Ping(ctx); err != nil {
		logger.Warn("Redis unreachable, view caching disabled",
			slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
		_ = rc.Close()
		return fallbackViewCache(cfg)
	}
	logger.Info("Redis view cache connected", slog.String("addr", cfg.RedisAddr))
	return rc
}

// fallbackViewCache is used without Redis. A per-process cache would serve
// stale views once other replicas write to the shared database.
func fallbackViewCache(cfg *config.Config) cache.ViewCache {
	if cfg.StorageDriver == config.StorageDriverMemory {
		return cache.NewMemoryViewCache(cfg.ViewCacheTTL)
	}
	return cache.NoopViewCache{}
}

func environment(cfg *config.Config) string {
	if cfg.IsProduction {
		return "production"
	}
	return "development"
}

func openPublisher(cfg *config.Config, logger *slog.Logger) publisher.Publisher {
	if cfg.NATSURL == "" {
		return &publisher.NoopPublisher{}
	}
	pub, err := publisher.NewNATSPublisher(cfg.NATSURL)
	if err != nil {
		logger.Warn("NATS unreachable, ledger notifications disabled",
			slog.String("url", cfg.NATSURL), slog.String("error", err.Error()))
		return &publisher.NoopPublisher{}
	}
	logger.Info("NATS publisher connected", slog.String("url", cfg.NATSURL))
	return pub
}

// Close releases the publisher, cache and database pool and flushes pending spans.
func (a *App) Close() error {
	var errs []error
	if a.Tracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		errs = append(errs, a.Tracing.Shutdown(ctx))
	}
	if a.Publisher != nil {
		errs = append(errs, a.Publisher.Close())
	}
	if a.ViewCache != nil {
		errs = append(errs, a.ViewCache.Close())
	}
	if a.pool != nil {
		database.ClosePgxPool(a.pool)
	}
	return errors.Join(errs...)
}
