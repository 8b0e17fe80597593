package models

type EventType string

const (
	EventTypeDecision  EventType = "decision"
	EventTypeLifecycle EventType = "lifecycle"
	EventTypeWarning   EventType = "warning"
	EventTypeError     EventType = "error"
)

type Event struct {
	Guid      string                 `json:"guid"`
	Timestamp int64                  `json:"timestamp"`
	Type      EventType              `json:"type"`
	Message   string                 `json:"message"`
	Error     string                 `json:"error,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
}
