package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"eco-chat-be/internal/retry"
	"eco-chat-be/pkg/llm"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1"
	defaultModel   = "gemini-2.5-flash-lite"

	maxRetries   = 2
	retryBackoff = 500 * time.Millisecond
)

type Provider struct {
	apiKey string
	model  string

	// BaseURL is overridable for tests.
	BaseURL string

	client *http.Client
}

// Ensure Provider implements LLMProvider
var _ llm.LLMProvider = &Provider{}

func NewProvider(apiKey, model string) *Provider {
	if model == "" {
		model = defaultModel
	}
	return &Provider{
		apiKey:  apiKey,
		model:   model,
		BaseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type geminiChatParts struct {
	Text string `json:"text"`
}

type geminiChatContent struct {
	Parts []*geminiChatParts `json:"parts"`
	Role  string             `json:"role"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"maxOutputTokens,omitempty"`
}

type geminiChatRequest struct {
	Contents         []*geminiChatContent    `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiChatCandidate struct {
	Content *geminiChatContent `json:"content"`
}

type geminiChatResponse struct {
	Candidates []*geminiChatCandidate `json:"candidates"`
}

// --- Interface Implementation ---

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	// 1. Process Options
	options := &llm.Options{
		Temperature: 1.0, // Default
	}
	for _, opt := range opts {
		opt(options)
	}

	// 2. Map generic messages to Gemini contents. The v1 generateContent API
	// only knows "user" and "model" roles, so system instructions ride along
	// as a leading user turn.
	contents := make([]*geminiChatContent, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == llm.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &geminiChatContent{
			Parts: []*geminiChatParts{{Text: msg.Content}},
			Role:  role,
		})
	}

	model := p.model
	if options.Model != "" {
		model = options.Model
	}

	payload := geminiChatRequest{
		Contents: contents,
		GenerationConfig: &geminiGenerationConfig{
			Temperature: options.Temperature,
			MaxTokens:   options.MaxTokens,
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	// 3. Send, retrying transient failures with exponential backoff.
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retry.ExponentialBackoff(attempt-1, retryBackoff)):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, retryable, err := p.generateContent(ctx, model, payloadJson)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}

	return "", lastErr
}

func (p *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

// generateContent performs one generateContent call. The second return value
// reports whether the failure is worth retrying (transport errors, 429, 5xx).
func (p *Provider) generateContent(ctx context.Context, model string, payloadJson []byte) (string, bool, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", p.BaseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", false, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("gemini request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", true, fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		retryable := res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= 500
		return "", retryable, fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes geminiChatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", false, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(geminiRes.Candidates) == 0 ||
		geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", false, fmt.Errorf("gemini returned no candidates")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, false, nil
}
