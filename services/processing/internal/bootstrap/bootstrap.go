// Package app holds the fx wiring shared by the processing worker and the
// extraction API.
package bootstrap

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"jobocr/common/cache"
	"jobocr/common/cache/redis"
	"jobocr/common/telemetry"
	"jobocr/services/processing/internal/config"
	"jobocr/services/processing/internal/parser"
	"jobocr/services/processing/internal/patterns"
	"jobocr/services/processing/internal/processor"
	"jobocr/services/processing/internal/textnorm"
)

// Core provides the extraction pipeline, the result cache and the processor.
// The including app must provide a processor.OfferStore.
func Core(serviceName string) fx.Option {
	return fx.Options(
		fx.Provide(
			config.LoadConfig,
			NewLogger,
			newResultCache,
			newPipeline,
			newJobProcessor,
			newBatchExtractor,
			func() trace.Tracer { return telemetry.GetTracer("jobocr/" + serviceName) },
		),
		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) {
			registerTracing(lc, serviceName, cfg, logger)
		}),
	)
}

func NewLogger(lc fx.Lifecycle) (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}

func registerTracing(lc fx.Lifecycle, serviceName string, cfg *config.Config, logger *zap.Logger) {
	var shutdown func()
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			shutdown, err = telemetry.InitTracer(ctx, serviceName, cfg.OTelCollectorURL, logger)
			return err
		},
		OnStop: func(context.Context) error {
			if shutdown != nil {
				shutdown()
			}
			return nil
		},
	})
}

// newResultCache prefers Redis and falls back to an in-process cache when
// Redis cannot be reached at startup.
func newResultCache(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) cache.Cache {
	opts := cache.DefaultOptions()
	opts.DefaultTTL = cfg.CacheTTL
	opts.RedisURL = cfg.RedisAddr
	opts.RedisPassword = cfg.RedisPassword
	opts.RedisDB = cfg.RedisDB

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	c := redis.Connect(ctx, opts, logger)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return c.Close()
		},
	})
	return c
}

func newPipeline(cfg *config.Config, logger *zap.Logger) *parser.Pipeline {
	lib := patterns.Default()
	logger.Info("Loaded pattern library", zap.String("version", lib.Version()))
	return parser.NewPipeline(lib, textnorm.Options{ConsonantFixes: cfg.NormalizerConsonantFixes})
}

func newJobProcessor(cfg *config.Config, logger *zap.Logger, pipeline *parser.Pipeline, store processor.OfferStore, c cache.Cache) *processor.JobProcessor {
	return processor.NewJobProcessor(logger, pipeline, store, c, cfg.CacheTTL)
}

func newBatchExtractor(cfg *config.Config, logger *zap.Logger, p *processor.JobProcessor) *processor.BatchExtractor {
	return processor.NewBatchExtractor(p, cfg.ExtractionWorkers, logger)
}
