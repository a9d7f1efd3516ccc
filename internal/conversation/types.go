package conversation

import (
	"strategy-shop/internal/model"
	"strategy-shop/pkg/annotation"
	"strategy-shop/pkg/relevance"
)

// Reply compatibility values.
const (
	EscalationClaritySprint = "clarity_sprint"
	EscalationProfessional  = "professional"

	SafetyProfessionalRequired = "professional_required"
	SafetySafeDIY              = "safe_diy"
)

// --- UseCase Inputs ---

// ChatMessage is one turn as sent by the client.
type ChatMessage struct {
	Role    string
	Content string
}

type ChatInput struct {
	Topic    model.Topic
	Messages []ChatMessage
	// ImageData is an optional data URL attached to the latest user message.
	ImageData    string
	SearchVideos bool
	// SessionID continues a stored session; empty starts a new one.
	SessionID string
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Reply             annotation.Reply
	AudioURL          string
	Videos            []relevance.Candidate
	ConversationCount int
	SessionID         string
	NextStep          string
}

// EscalationType returns the escalation kind the web client understands,
// or "" when the reply did not escalate.
func (o ChatOutput) EscalationType() string {
	if o.Reply.DeepWorkRequested {
		return EscalationClaritySprint
	}
	return ""
}

// SafetyLevel reports whether the reply asked for a professional.
func (o ChatOutput) SafetyLevel() string {
	if o.Reply.ProfessionalRequested {
		return SafetyProfessionalRequired
	}
	return SafetySafeDIY
}
