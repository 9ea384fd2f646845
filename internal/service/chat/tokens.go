package chat

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Prices are USD per 1K tokens. Unknown models fall back to the
// gpt-3.5-turbo rate, which keeps estimates conservative for local models.
var modelPrices = map[string]struct{ in, out float64 }{
	"gpt-3.5-turbo": {0.0005, 0.0015},
	"gpt-4":         {0.03, 0.06},
	"gpt-4-turbo":   {0.01, 0.03},
	"gpt-4o":        {0.005, 0.015},
	"gpt-4o-mini":   {0.00015, 0.0006},
}

type TokenCounter struct {
	enc *tiktoken.Tiktoken
}

func NewTokenCounter() (*TokenCounter, error) {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("load encoding: %w", err)
	}
	return &TokenCounter{enc: enc}, nil
}

func (t *TokenCounter) Count(text string) int {
	if t == nil || t.enc == nil {
		return 0
	}
	return len(t.enc.Encode(text, nil, nil))
}

// EstimateCost prices a single exchange in USD.
func EstimateCost(model string, promptTokens, completionTokens int) float64 {
	price, ok := modelPrices[model]
	if !ok {
		price = modelPrices["gpt-3.5-turbo"]
	}
	return float64(promptTokens)/1000*price.in + float64(completionTokens)/1000*price.out
}
