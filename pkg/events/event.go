package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USAGE_ASK").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Usage event codes, one per authenticated operation.
const (
	UsageAsk      = "USAGE_ASK"
	UsageClassify = "USAGE_CLASSIFY"
	UsageQuiz     = "USAGE_QUIZ"
)

// BaseEvent is the standard Event implementation.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewUsageEvent records one completed (or failed) operation for an identity.
func NewUsageEvent(eventType, identity string, elapsed time.Duration, ok bool) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"identity":   identity,
			"elapsed_ms": elapsed.Milliseconds(),
			"ok":         ok,
		},
		OccurredAt: time.Now(),
	}
}
