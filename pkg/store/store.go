package store

import (
	"sync"

	"eco-chat-be/pkg/llm"
)

// Document is a normalized unit of retrieved context: a web-search snippet or a
// classifier description that gets folded into the prompt.
type Document struct {
	Content string `json:"content"`
	Title   string `json:"title"`
	Link    string `json:"link"`
}

// Conversation is the ordered per-identity message history. Appends are
// serialized through the conversation's own mutex so two in-flight requests
// from the same identity cannot interleave a user/assistant pair.
type Conversation struct {
	mu       sync.Mutex
	messages []llm.Message
}

func NewConversation() *Conversation {
	return &Conversation{}
}

// History returns a snapshot copy of the message sequence in chronological
// order. Callers may read it freely while other requests append.
func (c *Conversation) History() []llm.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]llm.Message, len(c.messages))
	copy(snapshot, c.messages)
	return snapshot
}

// AppendExchange appends one user/assistant turn pair. The pair is written
// atomically; histories never contain a user message without its reply.
func (c *Conversation) AppendExchange(user, assistant llm.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, user, assistant)
}

func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}
