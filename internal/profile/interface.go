package profile

import (
	"context"

	"strategy-shop/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Profile
	Get(ctx context.Context, sc model.Scope) (model.Profile, error)
	SaveEmail(ctx context.Context, sc model.Scope, input SaveEmailInput) (model.Profile, error)
	UpdateBusiness(ctx context.Context, sc model.Scope, input UpdateBusinessInput) (model.Profile, error)
	Metadata(ctx context.Context, sc model.Scope) (Metadata, error)
	Reset(ctx context.Context, sc model.Scope) error

	// Freemium allowance
	CheckAllowance(ctx context.Context, sc model.Scope) (model.Profile, error)
	IncrementConversation(ctx context.Context, sc model.Scope) (int, error)
}
