package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"eco-chat-be/internal/cache"
	"eco-chat-be/internal/pkg/logger"
)

func newTestSearcher(t *testing.T, handler http.HandlerFunc) (*GoogleSearcher, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s := NewGoogleSearcher("test-key", "test-cx", cache.NewNoOpCache(), logger.NewNopLogger())
	s.BaseURL = server.URL
	return s, server
}

func TestSearchMapsItemsToDocuments(t *testing.T) {
	s, _ := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "composting" {
			t.Errorf("query param q = %q, want %q", got, "composting")
		}
		if got := r.URL.Query().Get("num"); got != "5" {
			t.Errorf("query param num = %q, want 5", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[
			{"title":"Composting 101","link":"http://a","snippet":"rot it down"},
			{"title":"Guide","link":"http://b","snippet":"layer greens and browns"}
		]}`))
	})

	docs := s.Search(context.Background(), "composting")

	if len(docs) != 2 {
		t.Fatalf("document count = %d, want 2", len(docs))
	}
	if docs[0].Content != "rot it down" || docs[0].Title != "Composting 101" || docs[0].Link != "http://a" {
		t.Errorf("first document = %+v", docs[0])
	}
}

func TestSearchMissingCredentialsReturnsEmpty(t *testing.T) {
	s := NewGoogleSearcher("", "", cache.NewNoOpCache(), logger.NewNopLogger())

	docs := s.Search(context.Background(), "anything")
	if docs != nil {
		t.Errorf("documents = %v, want nil", docs)
	}
}

func TestSearchQuotaErrorReturnsEmpty(t *testing.T) {
	s, _ := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403}}`))
	})

	docs := s.Search(context.Background(), "anything")
	if len(docs) != 0 {
		t.Errorf("document count = %d, want 0", len(docs))
	}
}

func TestSearchTransportErrorReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // force connection refused

	s := NewGoogleSearcher("test-key", "test-cx", cache.NewNoOpCache(), logger.NewNopLogger())
	s.BaseURL = server.URL

	docs := s.Search(context.Background(), "anything")
	if len(docs) != 0 {
		t.Errorf("document count = %d, want 0", len(docs))
	}
}

func TestSearchNoItemsYieldsEmptySlice(t *testing.T) {
	s, _ := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	docs := s.Search(context.Background(), "obscure query")
	if len(docs) != 0 {
		t.Errorf("document count = %d, want 0", len(docs))
	}
}
