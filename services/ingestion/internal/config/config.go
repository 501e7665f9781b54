package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	OCRFeedBaseURL  string
	OCRFeedTimeout  time.Duration
	PollingInterval time.Duration
	PublishWorkers  int

	NATSURL         string
	NATSConnTimeout time.Duration
	PostsSubject    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	SeenTTL       time.Duration

	OTelCollectorURL string
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ocr_feed_base_url", "http://localhost:8081")
	v.SetDefault("ocr_feed_timeout", "10s")
	v.SetDefault("polling_interval", "5m")
	v.SetDefault("publish_workers", 10)

	v.SetDefault("nats_url", "nats://localhost:4222")
	v.SetDefault("nats_conn_timeout", "10s")
	v.SetDefault("posts_subject", "posts.ocr")

	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cache_ttl", "24h")
	v.SetDefault("seen_ttl", "720h")

	v.SetDefault("otel_collector_url", "")

	cfg := &Config{
		OCRFeedBaseURL:  v.GetString("ocr_feed_base_url"),
		OCRFeedTimeout:  v.GetDuration("ocr_feed_timeout"),
		PollingInterval: v.GetDuration("polling_interval"),
		PublishWorkers:  v.GetInt("publish_workers"),

		NATSURL:         v.GetString("nats_url"),
		NATSConnTimeout: v.GetDuration("nats_conn_timeout"),
		PostsSubject:    v.GetString("posts_subject"),

		RedisAddr:     v.GetString("redis_addr"),
		RedisPassword: v.GetString("redis_password"),
		RedisDB:       v.GetInt("redis_db"),
		CacheTTL:      v.GetDuration("cache_ttl"),
		SeenTTL:       v.GetDuration("seen_ttl"),

		OTelCollectorURL: v.GetString("otel_collector_url"),
	}

	if cfg.PollingInterval <= 0 {
		return nil, fmt.Errorf("polling interval must be positive, got %s", cfg.PollingInterval)
	}
	if cfg.PublishWorkers < 1 {
		return nil, fmt.Errorf("publish workers must be at least 1, got %d", cfg.PublishWorkers)
	}
	return cfg, nil
}
