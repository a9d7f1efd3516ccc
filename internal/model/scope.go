package model

import (
	"strings"

	"github.com/google/uuid"
)

// UserIDPrefix prefixes minted user ids.
const UserIDPrefix = "user_"

// Scope identifies the caller of a use case.
type Scope struct {
	UserID string
}

// NewUserID mints a fresh user id.
func NewUserID() string {
	return UserIDPrefix + uuid.NewString()
}

// ValidUserID reports whether id looks like something a client may send back.
func ValidUserID(id string) bool {
	if id == "" || len(id) > 128 {
		return false
	}
	return !strings.ContainsAny(id, " \t\r\n:")
}
