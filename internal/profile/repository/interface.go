package repository

import (
	"context"

	"strategy-shop/internal/model"
)

// Repository is the profile data store.
type Repository interface {
	// GetProfile returns the zero Profile (ID == "") when id is unknown.
	GetProfile(ctx context.Context, id string) (model.Profile, error)
	// CreateProfile is idempotent: an existing profile is returned unchanged.
	CreateProfile(ctx context.Context, opt CreateProfileOptions) (model.Profile, error)
	UpdateProfile(ctx context.Context, opt UpdateProfileOptions) (model.Profile, error)
	IncrementConversationCount(ctx context.Context, id string) (int, error)
	DeleteProfile(ctx context.Context, id string) error
}
