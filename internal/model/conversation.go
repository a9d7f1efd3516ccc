package model

import (
	"sort"
	"time"
)

// Role is who authored a message.
type Role string

const (
	RoleUser       Role = "user"
	RoleStrategist Role = "strategist"
)

// NormalizeRole maps legacy and provider role names onto the two roles.
func NormalizeRole(r string) Role {
	switch r {
	case "strategist", "dad", "assistant", "model":
		return RoleStrategist
	default:
		return RoleUser
	}
}

// Message is one turn of a conversation.
type Message struct {
	ID                string    `json:"id"`
	Role              Role      `json:"role"`
	Content           string    `json:"content"`
	Timestamp         time.Time `json:"timestamp"`
	AudioURL          string    `json:"audio_url,omitempty"`
	MediaURL          string    `json:"media_url,omitempty"`
	MediaType         string    `json:"media_type,omitempty"`
	NeedsProfessional bool      `json:"needs_professional,omitempty"`
	ProfessionalType  string    `json:"professional_type,omitempty"`
	VideoSuggestion   string    `json:"video_suggestion,omitempty"`
	Framework         string    `json:"framework,omitempty"`
	Mood              string    `json:"mood,omitempty"`
}

// Session is a conversation on one topic. Sessions are keyed by StartTime
// within a user.
type Session struct {
	UserID       string    `json:"user_id"`
	Topic        Topic     `json:"topic"`
	Messages     []Message `json:"messages"`
	StartTime    time.Time `json:"start_time"`
	LastActivity time.Time `json:"last_activity"`
}

// Key identifies the session within its user.
func (s Session) Key() string {
	return s.StartTime.UTC().Format(time.RFC3339Nano)
}

// SortSessionsByActivity orders sessions most recent first.
func SortSessionsByActivity(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].LastActivity.After(sessions[j].LastActivity)
	})
}
