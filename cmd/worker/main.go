// Command worker consumes rate-confirmation callbacks and call extraction
// results from Kafka and applies them to loads and call reviews.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"loadvoice-synqall/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.NewWorkerRunner().MustRun(app.MustBuildWorkerContainer(ctx))
}
