package factory

import (
	"fmt"

	"eco-chat-be/pkg/llm"
	"eco-chat-be/pkg/llm/gemini"
	"eco-chat-be/pkg/llm/ollama"
)

// NewLLMProvider selects the chat backend from configuration. Gemini is the
// production backend; Ollama covers local development.
func NewLLMProvider(providerType, modelName, ollamaBaseURL, geminiAPIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		if geminiAPIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewProvider(geminiAPIKey, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
