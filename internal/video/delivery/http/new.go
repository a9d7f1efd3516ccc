package http

import (
	"strategy-shop/internal/video"
	"strategy-shop/pkg/log"
)

type handler struct {
	l  log.Logger
	uc video.UseCase
}

// New creates a new HTTP handler for video search.
func New(l log.Logger, uc video.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
