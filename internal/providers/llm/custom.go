package llm

// CustomOpenAI targets any self-hosted OpenAI-compatible endpoint.
type CustomOpenAI struct {
	*OpenAICompatible
}

func NewCustomOpenAI(baseURL, apiKey, model string, temperature float64, maxTokens int) *CustomOpenAI {
	return &CustomOpenAI{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:     baseURL,
			APIKey:      apiKey,
			Model:       model,
			AuthHeader:  "Authorization",
			AuthPrefix:  "Bearer ",
			Temperature: temperature,
			MaxTokens:   maxTokens,
		}),
	}
}
