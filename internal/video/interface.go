package video

import (
	"context"

	"strategy-shop/pkg/relevance"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
}

// Searcher queries the video backend.
type Searcher interface {
	Search(ctx context.Context, query string) ([]relevance.Candidate, error)
}
