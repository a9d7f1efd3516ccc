package model

import "time"

// Profile is what the service knows about a caller's business.
type Profile struct {
	ID                  string
	Email               string
	BusinessName        string
	BusinessType        string
	Revenue             string
	TeamSize            string
	BiggestChallenge    string
	CreatedAt           time.Time
	ConversationCount   int
	HasProvidedEmail    bool
	HasCompletedProfile bool
}

// Complete reports whether the key business facts are known.
func (p Profile) Complete() bool {
	return p.BusinessType != "" && p.Revenue != ""
}
