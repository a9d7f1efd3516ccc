package repository

import "errors"

var (
	ErrFailedToSave   = errors.New("failed to save session")
	ErrFailedToGet    = errors.New("failed to get session")
	ErrFailedToDelete = errors.New("failed to delete sessions")
)
