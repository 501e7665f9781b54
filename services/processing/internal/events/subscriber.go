package events

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"jobocr/common/errors"
	"jobocr/common/telemetry"
	"jobocr/services/processing/internal/config"
)

// PostProcessor consumes one encoded RawPost.
type PostProcessor interface {
	ProcessPost(ctx context.Context, rawData []byte) error
}

type Handler struct {
	logger    *zap.Logger
	nc        *nats.Conn
	tracer    trace.Tracer
	processor PostProcessor
	subject   string
	queue     string
	timeout   time.Duration
	sub       *nats.Subscription
}

func NewHandler(logger *zap.Logger, nc *nats.Conn, tracer trace.Tracer, processor PostProcessor, cfg *config.Config) *Handler {
	return &Handler{
		logger:    logger,
		nc:        nc,
		tracer:    tracer,
		processor: processor,
		subject:   cfg.PostsSubject,
		queue:     cfg.QueueGroup,
		timeout:   cfg.ProcessingTimeout,
	}
}

func (h *Handler) RegisterSubscriptions(lc fx.Lifecycle) error {
	sub, err := h.nc.QueueSubscribe(h.subject, h.queue, h.handlePost)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", h.subject, err)
	}

	h.sub = sub
	h.logger.Info("Registered NATS subscriptions",
		zap.String("subject", h.subject),
		zap.String("queue", h.queue),
	)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return h.sub.Drain()
		},
	})

	return nil
}

func (h *Handler) handlePost(msg *nats.Msg) {
	h.process(context.Background(), msg.Subject, msg.Data)
}

func (h *Handler) process(ctx context.Context, subject string, data []byte) {
	ctx, span := h.tracer.Start(ctx, "handlePost")
	defer span.End()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	span.SetAttributes(telemetry.String("messaging.subject", subject))

	if err := h.processor.ProcessPost(ctx, data); err != nil {
		// Malformed messages are never redelivered.
		if errors.Is(err, errors.ErrTypeInvalidInput) {
			h.logger.Warn("Dropped malformed post", zap.Error(err), zap.String("subject", subject))
			return
		}
		h.logger.Error("Failed to process post",
			zap.Error(err),
			zap.String("subject", subject),
		)
		return
	}

	h.logger.Debug("Processed post", zap.String("subject", subject))
}
