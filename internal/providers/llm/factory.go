package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/log"
)

// NewProvider creates the generation backend selected by configuration.
func NewProvider(ctx context.Context, cfg *config.AppConfig) (core.AIProvider, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Msg("starting llm provider")

	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil
	case "openrouter":
		return NewOpenRouter(cfg.OpenRouterAPIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil
	case "ollama":
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaAPIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil
	case "custom":
		return NewCustomOpenAI(cfg.CustomOpenAIBaseURL, cfg.CustomOpenAIAPIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
