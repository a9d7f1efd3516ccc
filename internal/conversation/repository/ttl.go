package repository

import (
	"time"

	"strategy-shop/internal/model"
)

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 24 * time.Hour

// Live reports whether s has been active within ttl of now.
func Live(s model.Session, ttl time.Duration, now time.Time) bool {
	return now.Sub(s.LastActivity) <= ttl
}
