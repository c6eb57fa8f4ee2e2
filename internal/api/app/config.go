package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Issuer string `env:"KINDLING_ISSUER" envDefault:"kindling-api"` // issuer claim for tokens

	TokenSecret  string        `env:"KINDLING_TOKEN_SECRET,required"`       // HS512 signing secret, min 32 bytes
	TokenTTL     time.Duration `env:"KINDLING_TOKEN_TTL" envDefault:"168h"` // bearer token lifetime
	DatabaseFile string        `env:"KINDLING_DATABASE_FILE" envDefault:"kindling.db"`

	CORSAllowedOrigins []string `env:"KINDLING_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:4200"`

	Env       string `env:"ENV" envDefault:"dev"`        // dev, staging, prod
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"` // debug, info, warn, error
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig parses configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
