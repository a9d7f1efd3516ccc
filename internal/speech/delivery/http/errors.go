package http

import (
	"errors"
	"net/http"

	"strategy-shop/internal/speech"
	pkgErrors "strategy-shop/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, speech.ErrEmptyText), errors.Is(err, speech.ErrTextTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, speech.ErrDisabled):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.Classify(err).HTTPError()
	}
}
