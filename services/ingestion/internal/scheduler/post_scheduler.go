package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"jobocr/common/cache"
	"jobocr/common/errors"
	"jobocr/common/telemetry"
	"jobocr/services/ingestion/internal/api"
	"jobocr/services/ingestion/internal/config"
	"jobocr/services/ingestion/internal/messaging"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("jobocr/ingestion/scheduler")

// PostScheduler polls the OCR feed and relays every post it has not
// published before onto NATS. Delivery is at-least-once: the seen marker is
// written only after a successful publish.
type PostScheduler struct {
	client        api.PostSourceClient
	publisher     messaging.Publisher
	seen          cache.Cache
	logger        *zap.Logger
	config        *config.Config
	mutex         sync.Mutex
	isActive      bool
	cancel        context.CancelFunc
	workerManager *workerManager
}

func NewPostScheduler(client api.PostSourceClient, publisher messaging.Publisher, seen cache.Cache, logger *zap.Logger, config *config.Config) *PostScheduler {
	scheduler := &PostScheduler{
		client:    client,
		publisher: publisher,
		seen:      seen,
		logger:    logger,
		config:    config,
	}
	scheduler.workerManager = newWorkerManager(scheduler, logger)
	return scheduler
}

// Start polls once, then on every tick, until ctx is done or Stop is called.
// It returns ctx.Err() when ctx ends the loop and nil after Stop. A second
// Start while one is running returns nil immediately.
func (s *PostScheduler) Start(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "PostScheduler.Start")
	defer span.End()

	s.mutex.Lock()
	if s.isActive {
		s.mutex.Unlock()
		return nil
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.isActive = true
	s.cancel = cancel
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.isActive = false
		s.cancel = nil
		s.mutex.Unlock()
		cancel()
	}()

	ticker := time.NewTicker(s.config.PollingInterval)
	defer ticker.Stop()

	if _, err := s.Poll(runCtx); err != nil && runCtx.Err() == nil {
		s.logger.Error("initial poll failed", zap.Error(err))
	}

	for {
		select {
		case <-runCtx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Poll(runCtx); err != nil && runCtx.Err() == nil {
				s.logger.Error("periodic poll failed", zap.Error(err))
			}
		}
	}
}

// Stop ends a running Start loop and cancels the poll in flight.
func (s *PostScheduler) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.isActive = false
}

func (s *PostScheduler) running() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.isActive
}

// PollStats counts the outcome of one poll.
type PollStats struct {
	Listed    int32
	Published int32
	Skipped   int32
	Failed    int32
}

// Poll lists the feed once and publishes the unseen posts.
func (s *PostScheduler) Poll(ctx context.Context) (PollStats, error) {
	ctx, span := tracer.Start(ctx, "PostScheduler.Poll")
	defer span.End()

	ids, err := s.client.ListPostIDs(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return PollStats{}, errors.Unavailable("failed to list posts", err)
	}

	stats := &PollStats{Listed: int32(len(ids))}
	span.SetAttributes(telemetry.Int("posts.listed", len(ids)))

	idChan := make(chan string)
	doneChan := make(chan bool)

	wg := s.workerManager.startWorkers(ctx, stats, idChan, s.config.PublishWorkers)

	go s.feedPosts(ctx, ids, idChan)

	go func() {
		wg.Wait()
		close(doneChan)
	}()

	return s.waitForCompletion(ctx, doneChan, stats)
}

func (s *PostScheduler) feedPosts(ctx context.Context, ids []string, idChan chan string) {
	defer close(idChan)
	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case idChan <- id:
		}
	}
}

func (s *PostScheduler) waitForCompletion(ctx context.Context, doneChan chan bool, stats *PollStats) (PollStats, error) {
	ctx, span := tracer.Start(ctx, "PostScheduler.waitForCompletion")
	defer span.End()

	select {
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		<-doneChan
		return snapshot(stats), ctx.Err()
	case <-doneChan:
		out := snapshot(stats)
		span.SetAttributes(
			telemetry.Int("posts.published", int(out.Published)),
			telemetry.Int("posts.skipped", int(out.Skipped)),
			telemetry.Int("posts.failed", int(out.Failed)),
		)
		s.logger.Info("completed poll",
			zap.Int32("listed", out.Listed),
			zap.Int32("published", out.Published),
			zap.Int32("skipped", out.Skipped),
			zap.Int32("failed", out.Failed))
		return out, nil
	}
}

func snapshot(stats *PollStats) PollStats {
	return PollStats{
		Listed:    stats.Listed,
		Published: atomic.LoadInt32(&stats.Published),
		Skipped:   atomic.LoadInt32(&stats.Skipped),
		Failed:    atomic.LoadInt32(&stats.Failed),
	}
}

func seenKey(id string) string {
	return cache.Key("ingest", "seen", id)
}

// relayPost publishes one post. It reports false when the post was skipped.
func (s *PostScheduler) relayPost(ctx context.Context, id string) (bool, error) {
	ctx, span := tracer.Start(ctx, "PostScheduler.relayPost")
	span.SetAttributes(telemetry.String("post.id", id))
	defer span.End()

	key := seenKey(id)
	seen, err := s.seen.Exists(ctx, key)
	if err != nil {
		s.logger.Warn("seen marker lookup failed", zap.String("id", id), zap.Error(err))
	}
	if seen {
		return false, nil
	}

	post, err := s.client.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, errors.ErrTypeNotFound) {
			s.logger.Debug("post vanished from feed", zap.String("id", id))
			return false, nil
		}
		telemetry.RecordError(span, err)
		return false, err
	}

	if post.Empty() {
		s.logger.Debug("skipping post without text", zap.String("id", id))
		s.markSeen(ctx, key)
		return false, nil
	}

	if err := s.publisher.PublishPost(ctx, post); err != nil {
		telemetry.RecordError(span, err)
		return false, err
	}

	s.markSeen(ctx, key)
	return true, nil
}

func (s *PostScheduler) markSeen(ctx context.Context, key string) {
	if err := s.seen.Set(ctx, key, "1", s.config.SeenTTL); err != nil {
		s.logger.Warn("failed to write seen marker", zap.String("key", key), zap.Error(err))
	}
}
