package usecase

import (
	"time"

	"strategy-shop/internal/conversation"
	"strategy-shop/internal/conversation/repository"
	"strategy-shop/internal/profile"
	"strategy-shop/internal/speech"
	"strategy-shop/internal/video"
	"strategy-shop/pkg/events"
	"strategy-shop/pkg/log"
)

type implUseCase struct {
	repo     repository.Repository
	llm      conversation.Generator
	profiles profile.UseCase
	speech   speech.UseCase
	videos   video.UseCase
	pub      events.Publisher
	l        log.Logger
	now      func() time.Time
}

// New creates the conversation UseCase. speech and videos are optional
// enrichments and may be nil.
func New(
	repo repository.Repository,
	llm conversation.Generator,
	profiles profile.UseCase,
	speechUC speech.UseCase,
	videoUC video.UseCase,
	pub events.Publisher,
	l log.Logger,
) conversation.UseCase {
	if pub == nil {
		pub = events.NewNoop()
	}
	return &implUseCase{
		repo:     repo,
		llm:      llm,
		profiles: profiles,
		speech:   speechUC,
		videos:   videoUC,
		pub:      pub,
		l:        l,
		now:      time.Now,
	}
}
