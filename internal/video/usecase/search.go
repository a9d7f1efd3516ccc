package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"strategy-shop/internal/video"
	"strategy-shop/pkg/cache"
	"strategy-shop/pkg/metrics"
	"strategy-shop/pkg/relevance"
)

const cacheNamespace = "videos"

// Search looks up videos for the query and, when the user's own words are
// known, keeps only the ones relevant to them.
func (uc *implUseCase) Search(ctx context.Context, input video.SearchInput) (video.SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return video.SearchOutput{}, video.ErrEmptyQuery
	}
	if uc.searcher == nil {
		return video.SearchOutput{}, video.ErrDisabled
	}

	candidates, err := uc.search(ctx, query)
	if err != nil {
		metrics.VideoSearches.WithLabelValues(metrics.OutcomeFailure).Inc()
		uc.l.Errorf(ctx, "video.usecase.Search: %v", err)
		return video.SearchOutput{}, err
	}
	metrics.VideoSearches.WithLabelValues(metrics.OutcomeSuccess).Inc()

	if strings.TrimSpace(input.UserQuery) != "" {
		candidates = uc.filter.Filter(input.UserQuery, query, candidates)
	}
	if candidates == nil {
		candidates = []relevance.Candidate{}
	}
	return video.SearchOutput{Videos: candidates}, nil
}

func (uc *implUseCase) search(ctx context.Context, query string) ([]relevance.Candidate, error) {
	key := cache.Key(cacheNamespace, strings.ToLower(query))
	if uc.cache != nil {
		if b, err := uc.cache.Get(ctx, key); err == nil {
			var cached []relevance.Candidate
			if err := json.Unmarshal(b, &cached); err == nil {
				return cached, nil
			}
		}
	}

	candidates, err := uc.searcher.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if b, err := json.Marshal(candidates); err == nil {
			if err := uc.cache.Set(ctx, key, b); err != nil {
				uc.l.Warnf(ctx, "video.usecase.Search: cache set: %v", err)
			}
		}
	}
	return candidates, nil
}
