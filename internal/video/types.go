package video

import "strategy-shop/pkg/relevance"

// SearchInput is a video lookup. When UserQuery is set the results are
// filtered for relevance to it.
type SearchInput struct {
	Query     string
	UserQuery string
}

type SearchOutput struct {
	Videos []relevance.Candidate
}
