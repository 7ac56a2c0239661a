package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port   string `env:"PORT" envDefault:"8000"`
	AppEnv string `env:"APP_ENV" envDefault:"dev"`

	// GeminiAPIKey is intentionally optional at boot: a missing key is a
	// per-request configuration error, the rest of the service keeps
	// working.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// DatabaseURL empty disables prediction history and emergency records.
	DatabaseURL string `env:"DATABASE_URL"`

	ClassifierURL    string `env:"CLASSIFIER_URL"`
	ClassIndicesFile string `env:"CLASS_INDICES_FILE" envDefault:"class_indices.json"`

	// StorageBucket empty disables emergency image uploads.
	StorageBucket string `env:"STORAGE_BUCKET"`

	TemplateGlob string `env:"TEMPLATE_GLOB" envDefault:"templates/*.html"`
	StaticDir    string `env:"STATIC_DIR" envDefault:"static"`
}

func Load() (*Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &c, nil
}
