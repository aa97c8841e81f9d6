// Package prompt assembles the exact message sequence sent to the chat model.
package prompt

import (
	"fmt"
	"strings"

	"eco-chat-be/pkg/llm"
	"eco-chat-be/pkg/store"
)

// Builder assembles prompts around a fixed persona. It never mutates the
// history it is given; recording the new exchange is the caller's job, after
// the model call has succeeded.
type Builder struct {
	persona string
}

func NewBuilder(persona string) *Builder {
	return &Builder{persona: persona}
}

// Build produces: one system message, the prior history in original order,
// then one user message combining the context documents and the query.
func (b *Builder) Build(history []llm.Message, docs []store.Document, query string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+2)

	messages = append(messages, llm.Message{
		Role:    llm.RoleSystem,
		Content: b.persona,
	})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: fmt.Sprintf("Context:\n%s\n\nQuestion: %s", joinDocuments(docs), query),
	})

	return messages
}

// joinDocuments concatenates document contents separated by a blank line.
// Zero documents yield an empty context block, which downstream tolerates.
func joinDocuments(docs []store.Document) string {
	if len(docs) == 0 {
		return ""
	}

	contents := make([]string, len(docs))
	for i, doc := range docs {
		contents[i] = doc.Content
	}
	return strings.Join(contents, "\n\n")
}
