package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr     string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath       string     `env:"DB_PATH" envDefault:"data/vinequiz.db"`
	RedisURL     string     `env:"REDIS_URL"`
	DataPath     string     `env:"DATA_PATH" envDefault:"data/grape_data.json"`
	MapsDir      string     `env:"MAPS_DIR" envDefault:"../web/public/maps"`
	SPADir       string     `env:"SPA_DIR" envDefault:"../web/dist"`
	RoundSeconds int        `env:"ROUND_SECONDS" envDefault:"120"`
	AdminEmail   string     `env:"ADMIN_EMAIL" envDefault:"admin@runicvine.local"`
	AdminPass    string     `env:"ADMIN_PASSWORD"`
	LogLevel     slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
