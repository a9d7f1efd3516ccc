package repository

import "time"

// CreateProfileOptions holds parameters for inserting a new Profile.
type CreateProfileOptions struct {
	ID        string
	CreatedAt time.Time
}

// UpdateProfileOptions overwrites the editable fields of a Profile.
// The conversation counter is only changed by IncrementConversationCount.
type UpdateProfileOptions struct {
	ID                  string
	Email               string
	BusinessName        string
	BusinessType        string
	Revenue             string
	TeamSize            string
	BiggestChallenge    string
	HasProvidedEmail    bool
	HasCompletedProfile bool
}
