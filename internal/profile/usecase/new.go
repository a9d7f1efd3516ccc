package usecase

import (
	"time"

	"strategy-shop/internal/profile"
	"strategy-shop/internal/profile/repository"
	"strategy-shop/pkg/events"
	"strategy-shop/pkg/log"
)

// implUseCase is the private implementation of profile.UseCase.
type implUseCase struct {
	repo   repository.Repository
	pub    events.Publisher
	limits profile.Limits
	l      log.Logger
	now    func() time.Time
}

// New creates a new profile UseCase implementation.
func New(repo repository.Repository, pub events.Publisher, limits profile.Limits, l log.Logger) profile.UseCase {
	if pub == nil {
		pub = events.NewNoop()
	}
	return &implUseCase{
		repo:   repo,
		pub:    pub,
		limits: limits.WithDefaults(),
		l:      l,
		now:    time.Now,
	}
}
