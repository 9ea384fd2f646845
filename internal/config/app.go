package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/docbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"DOCBOT_RUNTIME_PATH" envDefault:".docbot"`

	// Generation backend selection
	Provider string `env:"LLM_PROVIDER" envDefault:"openai"`
	Model    string `env:"LLM_MODEL" envDefault:"gpt-3.5-turbo"`

	OpenAIAPIKey        string `env:"OPENAI_API_KEY"`
	OpenRouterAPIKey    string `env:"OPENROUTER_API_KEY"`
	OllamaBaseURL       string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaAPIKey        string `env:"OLLAMA_API_KEY"`
	CustomOpenAIBaseURL string `env:"CUSTOM_OPENAI_BASE_URL"`
	CustomOpenAIAPIKey  string `env:"CUSTOM_OPENAI_API_KEY"`

	Temperature float64 `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int     `env:"LLM_MAX_TOKENS" envDefault:"1500"`

	// Transport flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`

	// Documents loaded at startup (comma-separated paths, optional)
	DocsPaths []string `env:"DOCS_PATHS" envSeparator:","`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "docbot.db")
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}
