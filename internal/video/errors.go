package video

import "errors"

var (
	ErrEmptyQuery = errors.New("query is required")
	ErrDisabled   = errors.New("video search is not configured")
)
