package utils

import (
	"context"
	"fmt"
	"strings"
)

// Fixed sampling temperature for itinerary generation across providers.
const itineraryTemperature = 0.7

// AIClientInterface is the single seam to the hosted language model.
// GenerateItinerary sends one prompt and returns the raw completion
// text, expected (but not guaranteed) to be a JSON document.
type AIClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewAIClient is the provider factory; "gemini" and "openai" are the
// supported backends.
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
