package cache

import (
	"context"
	"time"

	"eco-chat-be/pkg/store"
)

// Cache provides web-search result caching keyed by query.
type Cache interface {
	// GetSearchResult retrieves a cached result by key.
	// Returns nil if not found.
	GetSearchResult(ctx context.Context, key string) (*SearchResult, error)

	// SetSearchResult stores a result with TTL.
	SetSearchResult(ctx context.Context, key string, result *SearchResult, ttl time.Duration) error

	// Close closes the cache connection.
	Close() error
}

// SearchResult is a cached set of normalized search documents.
type SearchResult struct {
	Documents []store.Document `json:"documents"`
}
