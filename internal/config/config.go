package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
}

type GeminiConfig struct {
	// APIKey may be empty at startup; the analyzer reports the missing
	// credential when the user actually submits something.
	APIKey            string        `envconfig:"GEMINI_API_KEY"`
	APIEndpoint       string        `envconfig:"GEMINI_ENDPOINT" default:"https://generativelanguage.googleapis.com"`
	Timeout           time.Duration `envconfig:"GEMINI_TIMEOUT" default:"30s"`
	RequestsPerMinute int           `envconfig:"GEMINI_RPM" default:"15"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
