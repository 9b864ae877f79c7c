package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
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

const TypeChatCompleted = "CHAT_COMPLETED"

// NewChatCompleted records one finished pipeline run for the mood trend
// consumer.
func NewChatCompleted(runID, userID, emotion, branch string, latency time.Duration) Event {
	return BaseEvent{
		Type: TypeChatCompleted,
		Data: map[string]interface{}{
			"run_id":     runID,
			"user_id":    userID,
			"emotion":    emotion,
			"branch":     branch,
			"latency_ms": latency.Milliseconds(),
		},
		OccurredAt: time.Now(),
	}
}
