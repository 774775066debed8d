package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken    string        `envconfig:"BOT_TOKEN" required:"true"`
	PollTimeout time.Duration `envconfig:"POLL_TIMEOUT" default:"10s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	MetricsAddr string        `envconfig:"METRICS_ADDR"`

	SessionStore   string        `envconfig:"SESSION_STORE" default:"memory"`
	SessionIdleTTL time.Duration `envconfig:"SESSION_IDLE_TTL" default:"168h"`

	Database DatabaseConfig `envconfig:"DB"`
	Redis    RedisConfig    `envconfig:"REDIS"`

	TranslatorEngine     string        `envconfig:"TRANSLATOR_ENGINE" default:"libretranslate"`
	TranslatorTimeout    time.Duration `envconfig:"TRANSLATOR_TIMEOUT" default:"30s"`
	LibreTranslateURL    string        `envconfig:"LIBRETRANSLATE_URL" default:"http://localhost:5000"`
	LibreTranslateAPIKey string        `envconfig:"LIBRETRANSLATE_API_KEY"`
	OpenAIAPIKey         string        `envconfig:"OPENAI_API_KEY"`
	OpenAIModel          string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAIBaseURL        string        `envconfig:"OPENAI_BASE_URL"`
}

// DatabaseConfig holds database connection settings (DB_HOST, DB_PORT, ...).
// Fields are untagged so envconfig never falls back to bare names like USER.
type DatabaseConfig struct {
	Host     string `default:"localhost"`
	Port     string `default:"5432"`
	Name     string `default:"tarjimon"`
	User     string `default:"tarjimon"`
	Password string
}

// RedisConfig holds redis session store settings
type RedisConfig struct {
	URL string `default:"redis://localhost:6379/0"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field requirements
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BotToken) == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}

	c.SessionStore = strings.ToLower(strings.TrimSpace(c.SessionStore))
	switch c.SessionStore {
	case StoreMemory, StoreRedis:
	case StorePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres session store")
		}
	default:
		return fmt.Errorf("unknown SESSION_STORE %q (supported: memory, redis, postgres)", c.SessionStore)
	}

	if strings.EqualFold(strings.TrimSpace(c.TranslatorEngine), "openai") && c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for the openai translator engine")
	}

	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
