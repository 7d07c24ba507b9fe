package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	JWTSecret      string        `envconfig:"JWT_SECRET" default:"storefront-dev-secret-change-me"`
	RedisAddr      string        `envconfig:"REDIS_ADDR" default:""`
	RedisPassword  string        `envconfig:"REDIS_PASSWORD" default:""`
	DatabaseURL    string        `envconfig:"DATABASE_URL" default:""`
	KafkaBrokers   string        `envconfig:"KAFKA_BROKERS" default:""`
	OrderTopic     string        `envconfig:"ORDER_TOPIC" default:"order_events"`
	AuthLatency    time.Duration `envconfig:"AUTH_LATENCY" default:"1s"`
	SearchDebounce time.Duration `envconfig:"SEARCH_DEBOUNCE" default:"200ms"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}
	return &cfg, nil
}
