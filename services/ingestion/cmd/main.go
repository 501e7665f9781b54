package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobocr/common/cache"
	"jobocr/common/cache/redis"
	"jobocr/common/telemetry"
	"jobocr/services/ingestion/internal/api"
	"jobocr/services/ingestion/internal/config"
	"jobocr/services/ingestion/internal/messaging"
	"jobocr/services/ingestion/internal/scheduler"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func newCache(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) cache.Cache {
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

func newPublisher(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (messaging.Publisher, error) {
	publisher, err := messaging.NewPublisher(logger, cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			publisher.Close()
			return nil
		},
	})
	return publisher, nil
}

func runScheduler(lc fx.Lifecycle, s *scheduler.PostScheduler, cfg *config.Config, logger *zap.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	var shutdownTracer func()

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			var err error
			shutdownTracer, err = telemetry.InitTracer(startCtx, "ingestion-service", cfg.OTelCollectorURL, logger)
			if err != nil {
				return err
			}

			logger.Info("starting ingestion service",
				zap.String("feed_url", cfg.OCRFeedBaseURL),
				zap.Duration("feed_timeout", cfg.OCRFeedTimeout),
				zap.Duration("polling_interval", cfg.PollingInterval))

			go func() {
				if err := s.Start(ctx); err != nil && ctx.Err() == nil {
					logger.Error("post scheduler failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			logger.Info("shutting down...")
			cancel()
			s.Stop()
			if shutdownTracer != nil {
				shutdownTracer()
			}
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newCache,
			newPublisher,
			api.NewPostSourceClient,
			scheduler.NewPostScheduler,
		),
		fx.Invoke(runScheduler),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal(err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := app.Stop(context.Background()); err != nil {
		log.Fatal(err)
	}
}
