package main

import (
	"context"
	"log"

	"jobocr/common/database"
	"jobocr/common/database/schema"
	"jobocr/common/database/schema/migrations"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("clickhouse_dsn", "127.0.0.1:9000")
	v.SetDefault("clickhouse_username", "default")
	v.SetDefault("clickhouse_password", "")
	v.SetDefault("clickhouse_database", "jobocr")

	ctx := context.Background()

	db, err := database.New(ctx, database.Options{
		DSN:          v.GetString("clickhouse_dsn"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		Username:     v.GetString("clickhouse_username"),
		Password:     v.GetString("clickhouse_password"),
		Database:     v.GetString("clickhouse_database"),
	}, logger)
	if err != nil {
		logger.Fatal("Failed to connect to ClickHouse", zap.Error(err))
	}
	defer db.Close()

	migrator := schema.NewMigrator(db.Conn(), logger)

	applied, err := migrator.Migrate(ctx, migrations.All)
	if err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	logger.Info("All migrations completed successfully", zap.Int("applied", applied))
}
