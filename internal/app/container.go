package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"loadvoice-synqall/internal/config"
	"loadvoice-synqall/internal/http/handlers"
	"loadvoice-synqall/internal/http/middleware/ratelimit"
	"loadvoice-synqall/internal/http/pprofserver"
	"loadvoice-synqall/internal/http/router"
	"loadvoice-synqall/internal/logx"
	"loadvoice-synqall/internal/observability"
	"loadvoice-synqall/internal/repository"
	"loadvoice-synqall/internal/service/load"
	"loadvoice-synqall/internal/service/ratecon"
	"loadvoice-synqall/internal/service/review"
)

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	migrate   func(context.Context, *pgxpool.Pool) error
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		migrate:   repository.Migrate,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function
func (b *ContainerBuilder) WithMigrate(fn func(context.Context, *pgxpool.Pool) error) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the HTTP service container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx, registerHTTP)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the Kafka worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.build(ctx, registerWorker)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context, surface func(*dig.Container) error) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := container.Provide(provideMetrics); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := surface(container); err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns the HTTP service container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds and returns the Kafka worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		NewLogger,
		func(ctx context.Context, cfg *config.Config) (observability.Shutdown, error) {
			return observability.InitTracing(ctx, cfg.Tracing, observability.Options{Writer: os.Stdout})
		},
	)
}

type dbIn struct {
	dig.In
	Ctx     context.Context
	Cfg     *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"db_retries_total"`
}

func registerDb(
	container *dig.Container,
	dbConnect dbConnectFunc,
	migrate func(context.Context, *pgxpool.Pool) error,
) error {
	providerDB := func(in dbIn) (*pgxpool.Pool, error) {
		pool, err := dbConnect(in.Ctx, in.Logger, in.Cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := migrate(in.Ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return pool, nil
	}
	providerRetrier := func(in dbIn) *repository.Retrier {
		r := in.Cfg.Retry
		return repository.NewRetrier(in.Logger, in.Retries, repository.RetryConfig{
			MaxAttempts: r.MaxAttempts,
			BaseDelay:   r.BaseDelay,
			MaxDelay:    r.MaxDelay,
		})
	}
	return provideAll(container, providerDB, providerRetrier)
}

type servicesIn struct {
	dig.In
	Cfg         *config.Config
	Logger      logx.Logger
	Pool        *pgxpool.Pool
	Retrier     *repository.Retrier    `optional:"true"`
	Transitions *prometheus.CounterVec `name:"load_transitions_total" optional:"true"`
	Reviews     *prometheus.CounterVec `name:"call_reviews_total" optional:"true"`
}

type servicesOut struct {
	dig.Out
	Loads   *load.Service
	RateCon *ratecon.Service
	Reviews *review.Service
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		func(in servicesIn) servicesOut {
			loads := repository.NewLoadRepo(in.Pool, in.Retrier)
			calls := repository.NewCallRepo(in.Pool, in.Retrier)
			prefs := repository.NewPreferencesRepo(in.Pool, in.Retrier)
			timeout := in.Cfg.OperationTimeout

			out := servicesOut{
				Loads:   load.NewService(loads, timeout, in.Logger, nilSafeVec(in.Transitions)),
				RateCon: ratecon.NewService(loads, timeout, in.Logger, nilSafeVec(in.Transitions)),
				Reviews: review.NewService(calls, prefs, timeout, in.Logger, nilSafeVec(in.Reviews)),
			}
			return out
		},
	)
}

// nilSafeVec keeps a missing vector a true nil interface inside the services.
func nilSafeVec(v *prometheus.CounterVec) interface {
	WithLabelValues(...string) prometheus.Counter
} {
	if v == nil {
		return nil
	}
	return v
}

type httpOut struct {
	dig.Out
	Main  *http.Server
	Pprof *http.Server `name:"pprof_server"`
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) httpOut {
		return httpOut{
			Main: &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Port),
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       15 * time.Second,
				WriteTimeout:      15 * time.Second,
				IdleTimeout:       60 * time.Second,
			},
			Pprof: pprofserver.NewServer(cfg.Pprof),
		}
	}
	routerProvider := func(
		logger logx.Logger,
		base *handlers.Handlers,
		loads *handlers.LoadHandler,
		rc *handlers.RateConHandler,
		reviews *handlers.ReviewHandler,
		rl *ratelimit.Middleware,
	) http.Handler {
		return router.New(router.Deps{
			Logger:    logger,
			Base:      base,
			Loads:     loads,
			RateCon:   rc,
			Reviews:   reviews,
			RateLimit: rl,
		})
	}
	return provideAll(container,
		handlers.New,
		handlers.NewLoadUsecase,
		handlers.NewLoadHandler,
		handlers.NewRateConUsecase,
		handlers.NewRateConHandler,
		handlers.NewReviewUsecase,
		handlers.NewReviewHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		routerProvider,
		serverProvider,
	)
}
