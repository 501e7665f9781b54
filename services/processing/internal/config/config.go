package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	NATSURL         string
	NATSConnTimeout time.Duration
	PostsSubject    string
	QueueGroup      string

	ClickHouseDSN          string
	ClickHouseMaxOpenConns int
	ClickHouseMaxIdleConns int
	ClickHouseConnMaxLife  time.Duration
	ClickHouseUsername     string
	ClickHousePassword     string
	ClickHouseDatabase     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	BatchSize         int
	ProcessingTimeout time.Duration
	ExtractionWorkers int

	NormalizerConsonantFixes bool

	HTTPAddr         string
	OTelCollectorURL string
}

// LoadConfig reads the configuration from environment variables, falling
// back to defaults suited to a local docker-compose setup.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("nats_url", "nats://localhost:4222")
	v.SetDefault("nats_conn_timeout", "10s")
	v.SetDefault("posts_subject", "posts.ocr")
	v.SetDefault("queue_group", "processing-service")

	v.SetDefault("clickhouse_dsn", "localhost:9000")
	v.SetDefault("clickhouse_max_open_conns", 10)
	v.SetDefault("clickhouse_max_idle_conns", 5)
	v.SetDefault("clickhouse_conn_max_life", "1h")
	v.SetDefault("clickhouse_username", "default")
	v.SetDefault("clickhouse_password", "")
	v.SetDefault("clickhouse_database", "jobocr")

	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cache_ttl", "24h")

	v.SetDefault("batch_size", 100)
	v.SetDefault("processing_timeout", "30s")
	v.SetDefault("extraction_workers", 4)

	v.SetDefault("normalizer_consonant_fixes", true)

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("otel_collector_url", "")

	cfg := &Config{
		NATSURL:         v.GetString("nats_url"),
		NATSConnTimeout: v.GetDuration("nats_conn_timeout"),
		PostsSubject:    v.GetString("posts_subject"),
		QueueGroup:      v.GetString("queue_group"),

		ClickHouseDSN:          v.GetString("clickhouse_dsn"),
		ClickHouseMaxOpenConns: v.GetInt("clickhouse_max_open_conns"),
		ClickHouseMaxIdleConns: v.GetInt("clickhouse_max_idle_conns"),
		ClickHouseConnMaxLife:  v.GetDuration("clickhouse_conn_max_life"),
		ClickHouseUsername:     v.GetString("clickhouse_username"),
		ClickHousePassword:     v.GetString("clickhouse_password"),
		ClickHouseDatabase:     v.GetString("clickhouse_database"),

		RedisAddr:     v.GetString("redis_addr"),
		RedisPassword: v.GetString("redis_password"),
		RedisDB:       v.GetInt("redis_db"),
		CacheTTL:      v.GetDuration("cache_ttl"),

		BatchSize:         v.GetInt("batch_size"),
		ProcessingTimeout: v.GetDuration("processing_timeout"),
		ExtractionWorkers: v.GetInt("extraction_workers"),

		NormalizerConsonantFixes: v.GetBool("normalizer_consonant_fixes"),

		HTTPAddr:         v.GetString("http_addr"),
		OTelCollectorURL: v.GetString("otel_collector_url"),
	}

	if cfg.ExtractionWorkers < 1 {
		return nil, fmt.Errorf("EXTRACTION_WORKERS must be at least 1, got %d", cfg.ExtractionWorkers)
	}
	if cfg.BatchSize < 1 {
		return nil, fmt.Errorf("BATCH_SIZE must be at least 1, got %d", cfg.BatchSize)
	}

	return cfg, nil
}
