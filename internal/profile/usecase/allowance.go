package usecase

import (
	"context"

	"strategy-shop/internal/model"
	"strategy-shop/internal/profile"
)

// CheckAllowance returns the caller's profile when another conversation is
// permitted. Callers without an email who have used exactly the free
// allowance are asked for one; everyone else is stopped at the full total.
func (uc *implUseCase) CheckAllowance(ctx context.Context, sc model.Scope) (model.Profile, error) {
	p, err := uc.Get(ctx, sc)
	if err != nil {
		return model.Profile{}, err
	}

	if p.ConversationCount < uc.limits.Allowed(p.HasProvidedEmail) {
		return p, nil
	}
	switch {
	case !p.HasProvidedEmail && p.ConversationCount == uc.limits.FreeLimit:
		return p, profile.ErrEmailRequired
	case p.ConversationCount >= uc.limits.Total():
		return p, profile.ErrUpgradeRequired
	}
	return p, nil
}

// IncrementConversation counts one answered chat turn.
func (uc *implUseCase) IncrementConversation(ctx context.Context, sc model.Scope) (int, error) {
	if _, err := uc.Get(ctx, sc); err != nil {
		return 0, err
	}

	count, err := uc.repo.IncrementConversationCount(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.IncrementConversation: %v", err)
		return 0, err
	}
	return count, nil
}
