package memory

import (
	"context"
	"sync"

	"strategy-shop/internal/model"
	repo "strategy-shop/internal/profile/repository"
)

type implRepository struct {
	mu       sync.RWMutex
	profiles map[string]model.Profile
}

// New creates an in-process Repository. Profiles live until the process exits.
func New() repo.Repository {
	return &implRepository{profiles: make(map[string]model.Profile)}
}

func (r *implRepository) GetProfile(ctx context.Context, id string) (model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profiles[id], nil
}

func (r *implRepository) CreateProfile(ctx context.Context, opt repo.CreateProfileOptions) (model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.profiles[opt.ID]; ok {
		return p, nil
	}
	p := model.Profile{ID: opt.ID, CreatedAt: opt.CreatedAt}
	r.profiles[opt.ID] = p
	return p, nil
}

func (r *implRepository) UpdateProfile(ctx context.Context, opt repo.UpdateProfileOptions) (model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[opt.ID]
	if !ok {
		return model.Profile{}, repo.ErrNotFound
	}
	p.Email = opt.Email
	p.BusinessName = opt.BusinessName
	p.BusinessType = opt.BusinessType
	p.Revenue = opt.Revenue
	p.TeamSize = opt.TeamSize
	p.BiggestChallenge = opt.BiggestChallenge
	p.HasProvidedEmail = opt.HasProvidedEmail
	p.HasCompletedProfile = opt.HasCompletedProfile
	r.profiles[opt.ID] = p
	return p, nil
}

func (r *implRepository) IncrementConversationCount(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return 0, repo.ErrNotFound
	}
	p.ConversationCount++
	r.profiles[id] = p
	return p.ConversationCount, nil
}

func (r *implRepository) DeleteProfile(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, id)
	return nil
}
