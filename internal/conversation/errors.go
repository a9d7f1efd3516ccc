package conversation

import "errors"

var (
	ErrEmptyMessages      = errors.New("messages are required")
	ErrLastMessageNotUser = errors.New("the last message must come from the user")
	ErrUnknownTopic       = errors.New("unknown topic")
	ErrInvalidImage       = errors.New("image_data must be a base64 image data URL")
	ErrSessionNotFound    = errors.New("session not found")
)
