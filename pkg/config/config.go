package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD" default:""`
	DBName      string `envconfig:"DB_NAME" default:"boutique"`

	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	CartTTL       time.Duration `envconfig:"CART_TTL" default:"24h"`
	CookieSecure  bool          `envconfig:"COOKIE_SECURE" default:"false"`

	// Optional order-event fanout; disabled when empty.
	KafkaBrokers string `envconfig:"KAFKA_BROKERS" default:""`
	OrderTopic   string `envconfig:"ORDER_TOPIC" default:"orders.created"`

	GeoDatasetPath string `envconfig:"GEO_DATASET_PATH" default:"data/algeria_cities.json"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
