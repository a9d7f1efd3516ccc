package http

import (
	"strategy-shop/internal/speech"
	"strategy-shop/pkg/log"
)

type handler struct {
	l  log.Logger
	uc speech.UseCase
}

// New creates a new HTTP handler for speech synthesis.
func New(l log.Logger, uc speech.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
