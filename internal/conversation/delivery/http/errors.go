package http

import (
	"errors"
	"net/http"

	"strategy-shop/internal/conversation"
	"strategy-shop/internal/profile"
	profileHTTP "strategy-shop/internal/profile/delivery/http"
	pkgErrors "strategy-shop/pkg/errors"
)

var errMissingScope = pkgErrors.NewHTTPError(http.StatusUnauthorized, "missing caller identity")

// mapError translates conversation errors. Model failures are classified
// into a friendly message with a matching status.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrEmptyMessages),
		errors.Is(err, conversation.ErrLastMessageNotUser),
		errors.Is(err, conversation.ErrUnknownTopic),
		errors.Is(err, conversation.ErrInvalidImage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, conversation.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, profile.ErrEmailRequired), errors.Is(err, profile.ErrUpgradeRequired):
		return profileHTTP.MapError(err)
	default:
		return pkgErrors.Classify(err).HTTPError()
	}
}
