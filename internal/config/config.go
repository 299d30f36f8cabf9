package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DataDir  string     `env:"DATA_DIR" envDefault:"data"`
	DBPath   string     `env:"DB_PATH" envDefault:"fanmate.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	// The simulated clock's startup value; movable at runtime via the API.
	SimulatedDate string `env:"SIMULATED_DATE" envDefault:"2034-06-13"`

	// Empty disables Redis; chat history then lives in process memory.
	RedisURL string `env:"REDIS_URL"`

	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`
	SPADir     string `env:"SPA_DIR"`

	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@fanmate.local"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
