package translator

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Engine selects the translation backend
type Engine string

const (
	EngineLibreTranslate Engine = "libretranslate"
	EngineOpenAI         Engine = "openai"
)

// Config holds configuration for creating a Translator
type Config struct {
	Engine Engine

	LibreTranslateURL    string
	LibreTranslateAPIKey string
	Timeout              time.Duration

	OpenAI OpenAIConfig
}

// ParseEngine parses an engine name, case-insensitive
func ParseEngine(s string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(s))) {
	case EngineLibreTranslate:
		return EngineLibreTranslate, nil
	case EngineOpenAI:
		return EngineOpenAI, nil
	default:
		return "", fmt.Errorf("unknown translator engine: %q (supported: libretranslate, openai)", s)
	}
}

// New creates the configured Translator
func New(cfg Config, logger *zap.Logger) (Translator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("Creating translator", zap.String("engine", string(cfg.Engine)))

	switch cfg.Engine {
	case EngineLibreTranslate:
		return NewLibreTranslateClient(cfg.LibreTranslateURL, cfg.LibreTranslateAPIKey, cfg.Timeout, logger), nil
	case EngineOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("openai engine requires an API key")
		}
		openAICfg := cfg.OpenAI
		if openAICfg.Timeout == 0 {
			openAICfg.Timeout = cfg.Timeout
		}
		return NewOpenAIClient(openAICfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown translator engine: %q", cfg.Engine)
	}
}
