package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"jobocr/common/database"
	"jobocr/common/database/schema"
	"jobocr/common/database/schema/migrations"
	"jobocr/services/processing/internal/bootstrap"
	"jobocr/services/processing/internal/config"
	"jobocr/services/processing/internal/events"
	"jobocr/services/processing/internal/processor"
	"jobocr/services/processing/internal/store"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newNATSConnection(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Timeout(cfg.NATSConnTimeout),
		nats.Name("processing-service"),
		nats.RetryOnFailedConnect(true),
	}
	nc, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			nc.Close()
			return nil
		},
	})
	return nc, nil
}

func newClickHouseConnection(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (clickhouse.Conn, error) {
	db, err := database.New(context.Background(), database.Options{
		DSN:             cfg.ClickHouseDSN,
		MaxOpenConns:    cfg.ClickHouseMaxOpenConns,
		MaxIdleConns:    cfg.ClickHouseMaxIdleConns,
		ConnMaxLifetime: cfg.ClickHouseConnMaxLife,
		Username:        cfg.ClickHouseUsername,
		Password:        cfg.ClickHousePassword,
		Database:        cfg.ClickHouseDatabase,
	}, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})
	return db.Conn(), nil
}

func newOfferStore(conn clickhouse.Conn, logger *zap.Logger) processor.OfferStore {
	return store.NewClickHouseStore(conn, logger)
}

func newPostProcessor(p *processor.JobProcessor) events.PostProcessor {
	return p
}

func migrate(lc fx.Lifecycle, conn clickhouse.Conn, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			applied, err := schema.NewMigrator(conn, logger).Migrate(ctx, migrations.All)
			if err != nil {
				return err
			}
			logger.Info("Schema up to date", zap.Int("applied", applied))
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Core("processing-service"),
		fx.Provide(
			newNATSConnection,
			newClickHouseConnection,
			newOfferStore,
			newPostProcessor,
			events.NewHandler,
		),
		fx.Invoke(
			migrate,
			func(handler *events.Handler, lc fx.Lifecycle) error {
				return handler.RegisterSubscriptions(lc)
			},
		),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx := context.Background()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
