package usecase

import (
	"strategy-shop/internal/video"
	"strategy-shop/pkg/cache"
	"strategy-shop/pkg/log"
	"strategy-shop/pkg/relevance"
)

type implUseCase struct {
	searcher video.Searcher
	filter   *relevance.Filter
	cache    cache.Cache
	l        log.Logger
}

// New creates a video UseCase. A nil searcher disables search; a nil filter
// uses the default vocabulary; a nil cache disables result caching.
func New(searcher video.Searcher, filter *relevance.Filter, c cache.Cache, l log.Logger) video.UseCase {
	if filter == nil {
		filter = relevance.NewDefault()
	}
	return &implUseCase{
		searcher: searcher,
		filter:   filter,
		cache:    c,
		l:        l,
	}
}
