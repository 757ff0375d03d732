package app

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/dig"

	"loadvoice-synqall/internal/apperr"
	"loadvoice-synqall/internal/config"
	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/logx"
	"loadvoice-synqall/internal/service/ratecon"
	"loadvoice-synqall/internal/service/review"
	"loadvoice-synqall/internal/transport/kafka"
)

type rateConService interface {
	HandleEvent(ctx context.Context, loadID uuid.UUID, event domain.RateConEvent, details string) (*ratecon.Result, error)
}

type ingestService interface {
	Ingest(ctx context.Context, e domain.CallExtraction) (*review.Report, error)
}

// classify turns domain rejections into permanent Kafka errors so the
// message is committed instead of redelivered forever.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrInvalid) {
		return kafka.Permanent(err)
	}
	return err
}

func makeRateConHandler(svc rateConService) kafka.RateConFunc {
	return func(ctx context.Context, ev kafka.RateConEvent) error {
		_, err := svc.HandleEvent(ctx, ev.LoadID, ev.Event, ev.Details)
		return classify(err)
	}
}

func makeExtractionHandler(svc ingestService) kafka.ExtractionFunc {
	return func(ctx context.Context, e domain.CallExtraction) error {
		_, err := svc.Ingest(ctx, e)
		return classify(err)
	}
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, logger logx.Logger, rc *ratecon.Service, rv *review.Service) (*kafka.Consumer, error) {
			k := cfg.Kafka
			return kafka.NewConsumer(logger, k.Brokers, k.GroupID,
				kafka.Topics{
					RateConfirmation: k.RateConfirmationTopic,
					CallExtraction:   k.CallExtractionTopic,
				},
				makeRateConHandler(rc),
				makeExtractionHandler(rv),
			)
		},
	)
}
