package usecase

import (
	"strategy-shop/internal/speech"
	"strategy-shop/pkg/cache"
	"strategy-shop/pkg/log"
)

type implUseCase struct {
	synth speech.Synthesizer
	cache cache.Cache
	l     log.Logger
}

// New creates a speech UseCase. A nil synth disables synthesis; a nil cache
// disables memoization.
func New(synth speech.Synthesizer, c cache.Cache, l log.Logger) speech.UseCase {
	return &implUseCase{
		synth: synth,
		cache: c,
		l:     l,
	}
}
