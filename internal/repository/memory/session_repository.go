package memory

import (
	"sync"
	"time"

	"eco-chat-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds per-identity conversation histories in process
// memory. Entries expire after the configured TTL and the total number of
// live sessions is capped, so a long-running process cannot grow without
// bound on distinct callers.
type SessionRepository struct {
	cache       *cache.Cache
	maxSessions int

	// createMu serializes get-or-create so two first requests from the same
	// identity cannot race into two separate conversations.
	createMu sync.Mutex
}

func NewSessionRepository(ttl time.Duration, maxSessions int) *SessionRepository {
	// Expired conversations are purged every 10 minutes.
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache:       c,
		maxSessions: maxSessions,
	}
}

// GetOrCreate returns the conversation for the identity, creating and
// registering an empty one on first use. Each access refreshes the TTL so
// active callers are not evicted mid-conversation.
func (r *SessionRepository) GetOrCreate(identity string) *store.Conversation {
	r.createMu.Lock()
	defer r.createMu.Unlock()

	if x, found := r.cache.Get(identity); found {
		conv := x.(*store.Conversation)
		r.cache.Set(identity, conv, cache.DefaultExpiration)
		return conv
	}

	if r.maxSessions > 0 && r.cache.ItemCount() >= r.maxSessions {
		r.cache.DeleteExpired()
		if r.cache.ItemCount() >= r.maxSessions {
			r.evictOldest()
		}
	}

	conv := store.NewConversation()
	r.cache.Set(identity, conv, cache.DefaultExpiration)
	return conv
}

// Get returns the conversation for the identity without creating one.
func (r *SessionRepository) Get(identity string) (*store.Conversation, bool) {
	if x, found := r.cache.Get(identity); found {
		return x.(*store.Conversation), true
	}
	return nil, false
}

// Delete drops the conversation for the identity.
func (r *SessionRepository) Delete(identity string) {
	r.cache.Delete(identity)
}

// Count returns the number of live sessions.
func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}

// evictOldest removes the entry closest to expiry, which with a uniform TTL
// is the least recently touched identity.
func (r *SessionRepository) evictOldest() {
	var oldestKey string
	var oldestExp int64

	for key, item := range r.cache.Items() {
		if oldestKey == "" || item.Expiration < oldestExp {
			oldestKey = key
			oldestExp = item.Expiration
		}
	}

	if oldestKey != "" {
		r.cache.Delete(oldestKey)
	}
}
