package events

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"jobocr/common/errors"
	"jobocr/services/processing/internal/config"
)

type stubProcessor struct {
	got [][]byte
	err error
}

func (s *stubProcessor) ProcessPost(_ context.Context, data []byte) error {
	s.got = append(s.got, data)
	return s.err
}

func newTestHandler(p PostProcessor) (*Handler, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := &config.Config{PostsSubject: "posts.ocr", QueueGroup: "processing-service"}
	return NewHandler(zap.New(core), nil, noop.NewTracerProvider().Tracer("test"), p, cfg), logs
}

func TestProcessForwardsPayload(t *testing.T) {
	p := &stubProcessor{}
	h, logs := newTestHandler(p)

	h.process(context.Background(), "posts.ocr", []byte(`{"id":"1"}`))

	assert.Equal(t, [][]byte{[]byte(`{"id":"1"}`)}, p.got)
	assert.Equal(t, 1, logs.FilterMessage("Processed post").Len())
}

func TestProcessDropsMalformedPost(t *testing.T) {
	h, logs := newTestHandler(&stubProcessor{err: errors.InvalidInput("decode post", nil)})

	h.process(context.Background(), "posts.ocr", []byte("{"))

	assert.Equal(t, 1, logs.FilterMessage("Dropped malformed post").Len())
	assert.Equal(t, 0, logs.FilterMessage("Failed to process post").Len())
}

func TestProcessLogsFailure(t *testing.T) {
	h, logs := newTestHandler(&stubProcessor{err: fmt.Errorf("store job offer: timeout")})

	h.process(context.Background(), "posts.ocr", []byte(`{"id":"1"}`))

	entries := logs.FilterMessage("Failed to process post").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	}
}

type deadlineProcessor struct{ hasDeadline bool }

func (d *deadlineProcessor) ProcessPost(ctx context.Context, _ []byte) error {
	_, d.hasDeadline = ctx.Deadline()
	return nil
}

func TestProcessAppliesTimeout(t *testing.T) {
	p := &deadlineProcessor{}
	h, _ := newTestHandler(p)
	h.timeout = time.Second

	h.process(context.Background(), "posts.ocr", nil)

	assert.True(t, p.hasDeadline)
}

func TestNewHandlerUsesConfiguredSubject(t *testing.T) {
	h, _ := newTestHandler(&stubProcessor{})

	assert.Equal(t, "posts.ocr", h.subject)
	assert.Equal(t, "processing-service", h.queue)
}
