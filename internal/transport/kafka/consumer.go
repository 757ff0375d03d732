package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/logx"
)

// RateConFunc applies a decoded rate confirmation callback.
type RateConFunc func(context.Context, RateConEvent) error

// ExtractionFunc ingests a finished call extraction.
type ExtractionFunc func(context.Context, domain.CallExtraction) error

// Topics names the topics the worker listens to. An empty name disables the topic.
type Topics struct {
	RateConfirmation string
	CallExtraction   string
}

type route func(ctx context.Context, value []byte) error

var newConsumerGroup = sarama.NewConsumerGroup

// Consumer wraps a Sarama consumer group and dispatches messages by topic.
type Consumer struct {
	group  sarama.ConsumerGroup
	logger logx.Logger
	routes map[string]route
	retry  time.Duration
}

// NewConsumer creates a consumer for every topic that has both a name and a
// handler. It returns nil when Kafka is not configured or nothing is routed.
func NewConsumer(
	logger logx.Logger,
	brokers []string,
	groupID string,
	topics Topics,
	onRateCon RateConFunc,
	onExtraction ExtractionFunc,
) (*Consumer, error) {
	if logger == nil {
		logger = logx.Nop()
	}
	if len(brokers) == 0 || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}

	routes := make(map[string]route, 2)
	if t := strings.TrimSpace(topics.RateConfirmation); t != "" && onRateCon != nil {
		routes[t] = rateConRoute(onRateCon)
	}
	if t := strings.TrimSpace(topics.CallExtraction); t != "" && onExtraction != nil {
		routes[t] = extractionRoute(onExtraction)
	}
	if len(routes) == 0 {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Return.Errors = true

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer group: %w", err)
	}

	return &Consumer{
		group:  group,
		logger: logger,
		routes: routes,
		retry:  time.Second,
	}, nil
}

func rateConRoute(fn RateConFunc) route {
	return func(ctx context.Context, value []byte) error {
		var dto RateConEventDTO
		if err := json.Unmarshal(value, &dto); err != nil {
			return Permanent(fmt.Errorf("bad json: %w", err))
		}
		ev, err := dto.ToDomain()
		if err != nil {
			return Permanent(err)
		}
		return fn(ctx, ev)
	}
}

func extractionRoute(fn ExtractionFunc) route {
	return func(ctx context.Context, value []byte) error {
		var dto CallExtractionDTO
		if err := json.Unmarshal(value, &dto); err != nil {
			return Permanent(fmt.Errorf("bad json: %w", err))
		}
		e, err := dto.ToDomain()
		if err != nil {
			return Permanent(err)
		}
		return fn(ctx, e)
	}
}

// Topics returns the routed topics.
func (c *Consumer) Topics() []string {
	out := make([]string, 0, len(c.routes))
	for t := range c.routes {
		out = append(out, t)
	}
	return out
}

// Run consumes until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}
	topics := c.Topics()

	for {
		if err := c.group.Consume(ctx, topics, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume error", logx.Err(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retry):
			}
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		fields := []logx.Field{
			logx.String("topic", msg.Topic),
			logx.Int("partition", int(msg.Partition)),
			logx.Int64("offset", msg.Offset),
		}

		rt, ok := h.c.routes[msg.Topic]
		if !ok {
			h.c.logger.Warn("kafka message on unrouted topic", fields...)
			sess.MarkMessage(msg, "")
			continue
		}

		err := rt(sess.Context(), msg.Value)
		var perm PermanentError
		switch {
		case err == nil:
		case errors.As(err, &perm):
			h.c.logger.Warn("kafka skipping message", append(fields, logx.Err(err))...)
		default:
			h.c.logger.Error("kafka handle failed, retrying", append(fields, logx.Err(err))...)
			return err
		}
		sess.MarkMessage(msg, "")
	}
	return nil
}
