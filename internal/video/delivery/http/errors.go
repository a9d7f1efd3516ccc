package http

import (
	"errors"
	"net/http"

	"strategy-shop/internal/video"
	pkgErrors "strategy-shop/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, video.ErrEmptyQuery):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, video.ErrDisabled):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.Classify(err).HTTPError()
	}
}
