// Package events publishes domain events to NATS.
package events

import "time"

// Subjects published by the service.
const (
	SubjectEscalationRequested = "strategy.escalation.requested"
	SubjectEmailCaptured       = "strategy.profile.email_captured"
)

// Publisher sends a JSON-encoded payload to a subject.
type Publisher interface {
	Publish(subject string, data any) error
	Close()
}

// EscalationRequested is emitted when a reply asks the user to bring in a
// professional or book a clarity sprint.
type EscalationRequested struct {
	UserID           string    `json:"user_id"`
	Topic            string    `json:"topic"`
	EscalationType   string    `json:"escalation_type"`
	ProfessionalType string    `json:"professional_type,omitempty"`
	Framework        string    `json:"framework,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// EmailCaptured is emitted the first time a user shares an email address.
type EmailCaptured struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

type noop struct{}

// NewNoop returns a Publisher that drops every event.
func NewNoop() Publisher { return noop{} }

func (noop) Publish(string, any) error { return nil }
func (noop) Close()                    {}
