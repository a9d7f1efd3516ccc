package speech

import "errors"

var (
	ErrEmptyText   = errors.New("text is required")
	ErrTextTooLong = errors.New("text is too long")
	ErrDisabled    = errors.New("speech synthesis is not configured")
)
