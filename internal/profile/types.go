package profile

// Default freemium limits.
const (
	DefaultFreeLimit  = 3
	DefaultEmailBonus = 2
)

// Limits configures the freemium allowance.
type Limits struct {
	FreeLimit  int
	EmailBonus int
}

// WithDefaults fills zero fields.
func (l Limits) WithDefaults() Limits {
	if l.FreeLimit <= 0 {
		l.FreeLimit = DefaultFreeLimit
	}
	if l.EmailBonus < 0 {
		l.EmailBonus = DefaultEmailBonus
	}
	return l
}

// Total is the allowance after an email has been shared.
func (l Limits) Total() int {
	return l.FreeLimit + l.EmailBonus
}

// Allowed returns how many conversations a caller may have.
func (l Limits) Allowed(hasProvidedEmail bool) int {
	if hasProvidedEmail {
		return l.Total()
	}
	return l.FreeLimit
}

// --- UseCase Inputs ---

type SaveEmailInput struct {
	Email string
}

// UpdateBusinessInput carries partial business facts; empty fields keep
// their stored value.
type UpdateBusinessInput struct {
	BusinessName     string
	BusinessType     string
	Revenue          string
	TeamSize         string
	BiggestChallenge string
}

// --- UseCase Outputs ---

type Metadata struct {
	UserID              string
	ConversationCount   int
	ConversationLimit   int
	HasCompletedProfile bool
	HasProvidedEmail    bool
}

// Remaining returns conversations left before the next gate.
func (m Metadata) Remaining() int {
	return max(m.ConversationLimit-m.ConversationCount, 0)
}
