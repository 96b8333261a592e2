package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Postgres Postgres
	Supabase Supabase
	Storage  Storage
	Redis    Redis
	Bot      Bot
}

type App struct {
	Name           string     `env:"APP_NAME" envDefault:"berry-buddy-api"`
	Version        string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel       slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string     `env:"LOG_FORMAT" envDefault:"text"`
	LogFieldMaxLen int        `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

type HTTP struct {
	Port              int           `env:"PORT" envDefault:"5000"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
	ProbeAddress      string        `env:"PROBE_ADDRESS" envDefault:":8081"`
	MetricsAddress    string        `env:"METRICS_ADDRESS" envDefault:":9090"`
}

func (h HTTP) Address() string {
	return fmt.Sprintf(":%d", h.Port)
}

// Load reads the environment, with values from a .env file in the working
// directory when one exists. Nothing is required: missing backends are
// reported per request so the process can always start.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
