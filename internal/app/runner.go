package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"loadvoice-synqall/internal/logx"
	"loadvoice-synqall/internal/observability"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP service
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP service using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		panic(err)
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })
	return logger
}

type runIn struct {
	dig.In
	Ctx      context.Context
	Logger   logx.Logger
	Pool     *pgxpool.Pool
	Server   *http.Server
	Pprof    *http.Server           `name:"pprof_server" optional:"true"`
	Shutdown observability.Shutdown `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in runIn) error {
	startServer(in.Server, in.Logger, "http")
	if in.Pprof != nil {
		startServer(in.Pprof, in.Logger, "pprof")
	}

	<-in.Ctx.Done()
	in.Logger.Info("shutting down")

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
	}
	flushTracing(in.Shutdown, in.Logger)
	if in.Pool != nil {
		in.Pool.Close()
	}
	return in.Ctx.Err()
}

func startServer(server *http.Server, logger logx.Logger, name string) {
	go func() {
		logger.Info("listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen error", logx.String("server", name), logx.Err(err))
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func flushTracing(shutdown observability.Shutdown, logger logx.Logger) {
	if shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Error("tracing shutdown error", logx.Err(err))
	}
}
