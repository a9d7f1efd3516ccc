package profile

import "errors"

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrEmailRequired   = errors.New("free conversations used up: share an email to unlock more")
	ErrUpgradeRequired = errors.New("free conversations used up: upgrade to continue")
)
