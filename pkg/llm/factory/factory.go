package factory

import (
	"fmt"

	"noor-counseling-be/pkg/llm"
	"noor-counseling-be/pkg/llm/gemini"
)

func NewLLMProvider(providerType, modelName, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		if modelName == "" {
			modelName = "gemini-1.5-flash" // Default
		}
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
