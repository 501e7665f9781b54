package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"jobocr/common/cache"
	"jobocr/common/errors"
	"jobocr/common/telemetry"
	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/parser"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Extractor is the pure extraction pipeline.
type Extractor interface {
	Extract(post models.RawText) models.ExtractionResult
	SkillCategories(post models.RawText) map[string][]string
}

// OfferStore persists extracted offers.
type OfferStore interface {
	SaveOffer(ctx context.Context, offer models.JobOffer) error
}

// Stats is a snapshot of the processor counters.
type Stats struct {
	Processed  int64
	CacheHits  int64
	Failed     int64
	ExtractAvg time.Duration
}

type JobProcessor struct {
	logger    *zap.Logger
	extractor Extractor
	store     OfferStore
	cache     cache.Cache
	cacheTTL  time.Duration
	tracer    trace.Tracer
	now       func() time.Time

	processed   atomic.Int64
	cacheHits   atomic.Int64
	failed      atomic.Int64
	extractions atomic.Int64
	extractNS   atomic.Int64
}

// NewJobProcessor wires the pipeline to its store and cache. A nil store
// disables persistence, a nil cache disables result caching.
func NewJobProcessor(logger *zap.Logger, extractor Extractor, store OfferStore, resultCache cache.Cache, cacheTTL time.Duration) *JobProcessor {
	return &JobProcessor{
		logger:    logger,
		extractor: extractor,
		store:     store,
		cache:     resultCache,
		cacheTTL:  cacheTTL,
		tracer:    telemetry.GetTracer("jobocr/processing/processor"),
		now:       time.Now,
	}
}

// ProcessPost decodes a RawPost message, extracts it and stores the offer.
func (p *JobProcessor) ProcessPost(ctx context.Context, rawData []byte) error {
	ctx, span := p.tracer.Start(ctx, "ProcessPost")
	defer span.End()

	var post models.RawPost
	if err := json.Unmarshal(rawData, &post); err != nil {
		p.failed.Add(1)
		err = errors.InvalidInput("decode post", err)
		telemetry.RecordError(span, err)
		return err
	}
	if post.ID == "" {
		p.failed.Add(1)
		err := errors.InvalidInput("post has no id", nil)
		telemetry.RecordError(span, err)
		return err
	}
	span.SetAttributes(telemetry.String("post.id", post.ID), telemetry.String("post.source", post.Source))

	offer := p.BuildOffer(ctx, post)

	if p.store != nil {
		if err := p.store.SaveOffer(ctx, offer); err != nil {
			p.failed.Add(1)
			p.logger.Error("Failed to store job offer", zap.String("post_id", post.ID), zap.Error(err))
			telemetry.RecordError(span, err)
			return fmt.Errorf("store job offer: %w", err)
		}
	}

	p.processed.Add(1)
	p.logger.Debug("Processed post",
		zap.String("post_id", post.ID),
		zap.String("offer_id", offer.ID),
		zap.String("area", string(offer.Result.Area)),
		zap.Bool("is_open", offer.Result.IsOpen),
	)
	return nil
}

// BuildOffer extracts a post and wraps the result with its source metadata.
func (p *JobProcessor) BuildOffer(ctx context.Context, post models.RawPost) models.JobOffer {
	text := post.Text()
	return models.JobOffer{
		ID:              parser.OfferID(post.ID),
		Source:          post.Source,
		SourceURL:       post.SourceURL,
		PostedAt:        post.PostedAt,
		Result:          p.Extract(ctx, text),
		SkillCategories: p.extractor.SkillCategories(text),
		Caption:         post.Caption,
		OCRText:         post.OCRText,
		CreatedAt:       p.now().UTC(),
	}
}

// Extract returns the cached result for text or runs the pipeline. Cache
// failures are logged and never fail the extraction.
func (p *JobProcessor) Extract(ctx context.Context, text models.RawText) models.ExtractionResult {
	ctx, span := p.tracer.Start(ctx, "Extract")
	defer span.End()

	key := cache.Key("result", parser.ContentKey(text))
	if p.cache != nil {
		var cached models.ExtractionResult
		err := p.cache.Get(ctx, key, &cached)
		switch {
		case err == nil:
			p.cacheHits.Add(1)
			span.SetAttributes(telemetry.Bool("cache.hit", true))
			return cached
		case err != cache.ErrNotFound:
			p.logger.Warn("Result cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	start := time.Now()
	result := p.extractor.Extract(text)
	elapsed := time.Since(start)
	p.extractions.Add(1)
	p.extractNS.Add(int64(elapsed))

	span.SetAttributes(
		telemetry.Bool("cache.hit", false),
		telemetry.String("result.area", string(result.Area)),
		telemetry.Int("result.skills", len(result.Skills)),
	)

	if p.cache != nil {
		if err := p.cache.Set(ctx, key, result, p.cacheTTL); err != nil {
			p.logger.Warn("Result cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return result
}

func (p *JobProcessor) SkillCategories(text models.RawText) map[string][]string {
	return p.extractor.SkillCategories(text)
}

func (p *JobProcessor) Stats() Stats {
	s := Stats{
		Processed: p.processed.Load(),
		CacheHits: p.cacheHits.Load(),
		Failed:    p.failed.Load(),
	}
	if n := p.extractions.Load(); n > 0 {
		s.ExtractAvg = time.Duration(p.extractNS.Load() / n)
	}
	return s
}
