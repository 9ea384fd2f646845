package llm

// OpenAI provider is implemented using OpenAICompatible.
type OpenAI struct {
	*OpenAICompatible
}

func NewOpenAI(apiKey, model string, temperature float64, maxTokens int) *OpenAI {
	return &OpenAI{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:     "https://api.openai.com",
			APIKey:      apiKey,
			Model:       model,
			AuthHeader:  "Authorization",
			AuthPrefix:  "Bearer ",
			Temperature: temperature,
			MaxTokens:   maxTokens,
		}),
	}
}
