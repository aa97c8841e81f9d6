// Package normalizer turns raw chat-model text into a structured advisory.
// Models wrap JSON in markdown fences or prefix it with a stray "json" word;
// Clean strips both, and Normalize parses whatever remains into a tagged
// result rather than failing.
package normalizer

import (
	"encoding/json"
	"strings"
)

const malformedMessage = "Invalid JSON response"

// Result is the outcome of normalizing model output: either a parsed JSON
// value, or the cleaned raw text tagged as malformed.
type Result struct {
	Value     interface{}
	Malformed bool
	Raw       string
}

// Payload returns the wire representation: the parsed value on success, or an
// error-shaped object embedding the raw text on parse failure.
func (r Result) Payload() interface{} {
	if r.Malformed {
		return map[string]interface{}{
			"error":        malformedMessage,
			"raw_response": r.Raw,
		}
	}
	return r.Value
}

// Clean strips markdown code fences and a leading "json" marker. It is
// idempotent: cleaning already-clean text is a no-op.
func Clean(text string) string {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	// Some models emit a bare "json" word before the payload.
	if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
		rest := s[4:]
		// Only treat it as a marker when it is not the start of the payload
		// itself (e.g. a raw string "jsonish answer" must survive parsing as-is).
		if rest == "" || rest[0] == ' ' || rest[0] == '\n' || rest[0] == '\r' || rest[0] == '\t' || rest[0] == '{' || rest[0] == '[' {
			s = strings.TrimSpace(rest)
		}
	}
	return s
}

// Normalize cleans the text and attempts to parse it as JSON. It never fails:
// unparseable input comes back tagged Malformed with the cleaned text attached.
func Normalize(text string) Result {
	cleaned := Clean(text)

	var value interface{}
	if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
		return Result{Malformed: true, Raw: cleaned}
	}
	return Result{Value: value}
}
