// Package search wraps the Google Custom Search JSON API as a context
// collaborator. It never fails a request: missing credentials, quota errors,
// and transport failures all degrade to empty results.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"eco-chat-be/internal/cache"
	"eco-chat-be/internal/pkg/logger"
	"eco-chat-be/pkg/store"
)

const (
	defaultBaseURL = "https://www.googleapis.com/customsearch/v1"
	resultCount    = 5
	cacheTTL       = 15 * time.Minute
)

// Searcher retrieves normalized context documents for a query.
type Searcher interface {
	Search(ctx context.Context, query string) []store.Document
}

type GoogleSearcher struct {
	apiKey   string
	engineID string

	// BaseURL is overridable for tests.
	BaseURL string

	client *http.Client
	cache  cache.Cache
	log    logger.ILogger
}

var _ Searcher = &GoogleSearcher{}

func NewGoogleSearcher(apiKey, engineID string, resultCache cache.Cache, log logger.ILogger) *GoogleSearcher {
	return &GoogleSearcher{
		apiKey:   apiKey,
		engineID: engineID,
		BaseURL:  defaultBaseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache: resultCache,
		log:   log,
	}
}

type searchItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

// Search returns up to 5 documents for the query, or nil when the search is
// not configured or the upstream call fails.
func (s *GoogleSearcher) Search(ctx context.Context, query string) []store.Document {
	if s.apiKey == "" || s.engineID == "" {
		s.log.Warn("search", "Missing Google Custom Search credentials, returning empty results", nil)
		return nil
	}

	if cached, err := s.cache.GetSearchResult(ctx, query); err == nil && cached != nil {
		return cached.Documents
	}

	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("cx", s.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(resultCount))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		s.log.Error("search", "Failed to build search request", map[string]interface{}{"error": err.Error()})
		return nil
	}

	res, err := s.client.Do(req)
	if err != nil {
		s.log.Error("search", "Google Search failed", map[string]interface{}{"error": err.Error()})
		return nil
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		s.log.Error("search", "Failed to read search response", map[string]interface{}{"error": err.Error()})
		return nil
	}

	if res.StatusCode != http.StatusOK {
		s.log.Error("search", fmt.Sprintf("Google Search returned status %d", res.StatusCode), map[string]interface{}{
			"body": string(body),
		})
		return nil
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		s.log.Error("search", "Failed to decode search response", map[string]interface{}{"error": err.Error()})
		return nil
	}

	docs := make([]store.Document, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		docs = append(docs, store.Document{
			Content: item.Snippet,
			Title:   item.Title,
			Link:    item.Link,
		})
	}

	if err := s.cache.SetSearchResult(ctx, query, &cache.SearchResult{Documents: docs}, cacheTTL); err != nil {
		s.log.Warn("search", "Failed to cache search results", map[string]interface{}{"error": err.Error()})
	}

	s.log.Debug("search", "Google Custom Search results", map[string]interface{}{
		"query": query,
		"count": len(docs),
	})
	return docs
}
