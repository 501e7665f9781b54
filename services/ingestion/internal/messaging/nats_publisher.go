package messaging

import (
	"context"
	"encoding/json"
	"time"

	"jobocr/common/errors"
	"jobocr/common/telemetry"
	"jobocr/services/ingestion/internal/config"
	"jobocr/services/ingestion/internal/models"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("jobocr/ingestion/messaging")

type Publisher interface {
	PublishPost(ctx context.Context, post *models.RawPost) error
	Close()
}

// conn is the part of *nats.Conn the publisher uses.
type conn interface {
	Publish(subj string, data []byte) error
	Close()
}

type natsPublisher struct {
	conn    conn
	subject string
	logger  *zap.Logger
}

func NewPublisher(logger *zap.Logger, config *config.Config) (Publisher, error) {
	opts := []nats.Option{
		nats.Name("ingestion-service"),
		nats.Timeout(config.NATSConnTimeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	}

	nc, err := nats.Connect(config.NATSURL, opts...)
	if err != nil {
		return nil, errors.Unavailable("connecting to NATS", err)
	}

	return newPublisher(nc, config.PostsSubject, logger), nil
}

func newPublisher(c conn, subject string, logger *zap.Logger) *natsPublisher {
	return &natsPublisher{
		conn:    c,
		subject: subject,
		logger:  logger,
	}
}

func (p *natsPublisher) PublishPost(ctx context.Context, post *models.RawPost) error {
	_, span := tracer.Start(ctx, "PublishPost")
	defer span.End()

	data, err := json.Marshal(post)
	if err != nil {
		telemetry.RecordError(span, err)
		return errors.Internal("marshaling post", err)
	}

	span.SetAttributes(
		telemetry.String("nats.subject", p.subject),
		telemetry.Int("message.size", len(data)),
	)

	if err := p.conn.Publish(p.subject, data); err != nil {
		telemetry.RecordError(span, err)
		p.logger.Error("failed to publish post",
			zap.String("id", post.ID),
			zap.Error(err))
		return errors.Unavailable("publishing to NATS", err)
	}

	p.logger.Debug("published post",
		zap.String("id", post.ID),
		zap.String("subject", p.subject))
	return nil
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
