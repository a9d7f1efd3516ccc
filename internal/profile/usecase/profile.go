package usecase

import (
	"context"
	"net/mail"
	"strings"

	"strategy-shop/internal/model"
	"strategy-shop/internal/profile"
	repo "strategy-shop/internal/profile/repository"
	"strategy-shop/pkg/events"
)

// Get returns the caller's profile, creating an empty one on first access.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (model.Profile, error) {
	p, err := uc.repo.GetProfile(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetProfile: %v", err)
		return model.Profile{}, err
	}
	if p.ID != "" {
		return p, nil
	}

	p, err = uc.repo.CreateProfile(ctx, repo.CreateProfileOptions{
		ID:        sc.UserID,
		CreatedAt: uc.now().UTC(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get CreateProfile: %v", err)
		return model.Profile{}, err
	}
	uc.l.Infof(ctx, "uc.Get: created profile %s", p.ID)
	return p, nil
}

// SaveEmail records the caller's email, which unlocks the bonus conversations.
func (uc *implUseCase) SaveEmail(ctx context.Context, sc model.Scope, input profile.SaveEmailInput) (model.Profile, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return model.Profile{}, err
	}

	p, err := uc.Get(ctx, sc)
	if err != nil {
		return model.Profile{}, err
	}
	firstTime := !p.HasProvidedEmail

	p.Email = email
	p.HasProvidedEmail = true
	updated, err := uc.repo.UpdateProfile(ctx, updateOptions(p))
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveEmail UpdateProfile: %v", err)
		return model.Profile{}, err
	}

	if firstTime {
		evt := events.EmailCaptured{UserID: sc.UserID, Email: email, OccurredAt: uc.now().UTC()}
		if err := uc.pub.Publish(events.SubjectEmailCaptured, evt); err != nil {
			uc.l.Warnf(ctx, "uc.SaveEmail Publish: %v", err)
		}
	}
	return updated, nil
}

// UpdateBusiness merges the provided business facts into the profile.
func (uc *implUseCase) UpdateBusiness(ctx context.Context, sc model.Scope, input profile.UpdateBusinessInput) (model.Profile, error) {
	p, err := uc.Get(ctx, sc)
	if err != nil {
		return model.Profile{}, err
	}

	p.BusinessName = coalesce(strings.TrimSpace(input.BusinessName), p.BusinessName)
	p.BusinessType = coalesce(strings.TrimSpace(input.BusinessType), p.BusinessType)
	p.Revenue = coalesce(strings.TrimSpace(input.Revenue), p.Revenue)
	p.TeamSize = coalesce(strings.TrimSpace(input.TeamSize), p.TeamSize)
	p.BiggestChallenge = coalesce(strings.TrimSpace(input.BiggestChallenge), p.BiggestChallenge)
	p.HasCompletedProfile = p.HasCompletedProfile || p.Complete()

	updated, err := uc.repo.UpdateProfile(ctx, updateOptions(p))
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateBusiness UpdateProfile: %v", err)
		return model.Profile{}, err
	}
	return updated, nil
}

// Metadata summarises the caller's usage.
func (uc *implUseCase) Metadata(ctx context.Context, sc model.Scope) (profile.Metadata, error) {
	p, err := uc.Get(ctx, sc)
	if err != nil {
		return profile.Metadata{}, err
	}
	return profile.Metadata{
		UserID:              p.ID,
		ConversationCount:   p.ConversationCount,
		ConversationLimit:   uc.limits.Allowed(p.HasProvidedEmail),
		HasCompletedProfile: p.HasCompletedProfile,
		HasProvidedEmail:    p.HasProvidedEmail,
	}, nil
}

// Reset forgets everything known about the caller.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) error {
	if err := uc.repo.DeleteProfile(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.Reset DeleteProfile: %v", err)
		return err
	}
	return nil
}

func normalizeEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", profile.ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return "", profile.ErrInvalidEmail
	}
	if !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".") {
		return "", profile.ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}

func updateOptions(p model.Profile) repo.UpdateProfileOptions {
	return repo.UpdateProfileOptions{
		ID:                  p.ID,
		Email:               p.Email,
		BusinessName:        p.BusinessName,
		BusinessType:        p.BusinessType,
		Revenue:             p.Revenue,
		TeamSize:            p.TeamSize,
		BiggestChallenge:    p.BiggestChallenge,
		HasProvidedEmail:    p.HasProvidedEmail,
		HasCompletedProfile: p.HasCompletedProfile,
	}
}
