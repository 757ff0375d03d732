package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"loadvoice-synqall/internal/logx"
	"loadvoice-synqall/internal/observability"
	"loadvoice-synqall/internal/transport/kafka"
)

// WorkerRunner runs the Kafka worker
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the worker using the provided DI container
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

type workerIn struct {
	dig.In
	Ctx      context.Context
	Pool     *pgxpool.Pool
	Logger   logx.Logger
	Consumer *kafka.Consumer        `optional:"true"`
	Shutdown observability.Shutdown `optional:"true"`
}

func runWorker(container *dig.Container) error {
	return container.Invoke(func(in workerIn) error {
		return workerRun(in.Ctx, in.Pool, in.Logger, in.Consumer, in.Shutdown)
	})
}

func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	logger logx.Logger,
	consumer *kafka.Consumer,
	shutdown observability.Shutdown,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: set KAFKA_BROKERS, KAFKA_GROUP_ID and at least one topic")
	}
	defer closeWorker(pool, logger, consumer, shutdown)

	logger.Info("worker started", logx.Any("topics", consumer.Topics()))
	return consumer.Run(ctx)
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer, shutdown observability.Shutdown) {
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Err(err))
		}
	}
	flushTracing(shutdown, logger)
	if pool != nil {
		pool.Close()
	}
}
