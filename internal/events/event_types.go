package events

import (
	"time"

	"github.com/helpdesk-br/chamados-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventCallCreated    EventType = "call_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email  string `json:"email"`
	Sector string `json:"sector"`
}

// CallCreatedPayload payload.
type CallCreatedPayload struct {
	Variant  domain.CallVariant `json:"variant"`
	Sector   string             `json:"sector"`
	Deadline time.Time          `json:"deadline"`
}
