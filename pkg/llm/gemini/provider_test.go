package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"eco-chat-be/pkg/llm"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p := NewProvider("test-key", "gemini-2.5-flash-lite")
	p.BaseURL = server.URL
	return p
}

func TestChatMapsRolesToGeminiVocabulary(t *testing.T) {
	var got geminiChatRequest
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("request body did not parse: %v", err)
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hi"}],"role":"model"}}]}`))
	})

	_, err := p.Chat(context.Background(), []llm.Message{
		{Role: llm.RoleSystem, Content: "persona"},
		{Role: llm.RoleUser, Content: "question"},
		{Role: llm.RoleAssistant, Content: "answer"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(got.Contents) != 3 {
		t.Fatalf("contents length = %d, want 3", len(got.Contents))
	}
	wantRoles := []string{"user", "user", "model"}
	for i, want := range wantRoles {
		if got.Contents[i].Role != want {
			t.Errorf("contents[%d].Role = %q, want %q", i, got.Contents[i].Role, want)
		}
	}
}

func TestChatReturnsCandidateText(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"the answer"}],"role":"model"}}]}`))
	})

	text, err := p.Chat(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "q"}})
	if err != nil {
		t.Fatal(err)
	}
	if text != "the answer" {
		t.Errorf("text = %q, want %q", text, "the answer")
	}
}

func TestChatRetriesOnServerError(t *testing.T) {
	attempts := 0
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"recovered"}],"role":"model"}}]}`))
	})

	text, err := p.Chat(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "q"}})
	if err != nil {
		t.Fatal(err)
	}
	if text != "recovered" {
		t.Errorf("text = %q, want %q", text, "recovered")
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestChatDoesNotRetryClientError(t *testing.T) {
	attempts := 0
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	})

	if _, err := p.Chat(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "q"}}); err == nil {
		t.Fatal("expected error on 400 response")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestChatErrorOnEmptyCandidates(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	if _, err := p.Chat(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "q"}}); err == nil {
		t.Fatal("expected error when no candidates returned")
	}
}
