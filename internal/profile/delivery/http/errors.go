package http

import (
	"errors"
	"net/http"

	"strategy-shop/internal/profile"
	"strategy-shop/internal/profile/repository"
	pkgErrors "strategy-shop/pkg/errors"
)

const (
	CodeEmailRequired   = "EMAIL_REQUIRED"
	CodeUpgradeRequired = "UPGRADE_REQUIRED"
)

var errMissingScope = pkgErrors.NewHTTPError(http.StatusUnauthorized, "missing caller identity")

// MapError translates profile use-case errors into HTTP errors. It is shared
// with the conversation delivery layer, which surfaces allowance errors.
func MapError(err error) error {
	switch {
	case errors.Is(err, profile.ErrInvalidEmail):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, profile.ErrEmailRequired):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusPaymentRequired, CodeEmailRequired, err.Error())
	case errors.Is(err, profile.ErrUpgradeRequired):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusPaymentRequired, CodeUpgradeRequired, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "profile not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

func (h *handler) mapError(err error) error {
	return MapError(err)
}
