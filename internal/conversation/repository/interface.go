package repository

import (
	"context"

	"strategy-shop/internal/model"
)

// Repository stores a user's sessions. Sessions idle for longer than the
// store's TTL are dropped.
type Repository interface {
	SaveSession(ctx context.Context, s model.Session) error
	// GetSession returns the zero Session when key is unknown or expired.
	GetSession(ctx context.Context, userID, key string) (model.Session, error)
	// ListSessions returns live sessions, most recent activity first.
	ListSessions(ctx context.Context, userID string) ([]model.Session, error)
	DeleteSessions(ctx context.Context, userID string) error
}
