package llm

import "github.com/sandevgo/docbot/internal/core"

type OpenRouter struct {
	*OpenAICompatible
}

func NewOpenRouter(apiKey, model string, temperature float64, maxTokens int) *OpenRouter {
	return &OpenRouter{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    "https://openrouter.ai/api",
			APIKey:     apiKey,
			Model:      model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
			ExtraHeaders: map[string]string{
				"HTTP-Referer": core.DocBotRepositoryURL,
				"X-Title":      core.DocBotName,
			},
			Temperature: temperature,
			MaxTokens:   maxTokens,
		}),
	}
}
