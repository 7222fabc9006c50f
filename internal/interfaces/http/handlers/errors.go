package handlers

import (
	"errors"
	"net/http"

	domainerrors "refgate.backend/internal/domain/errors"
)

// mapDomainError translates core sentinel errors into HTTP app errors.
// Activation and attribution failures are surfaced verbatim so the end
// user can correct the action (re-sign, use a different link).
func mapDomainError(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNonceInvalid):
		return domainerrors.NewAppError(http.StatusUnauthorized, "ERR_NONCE_INVALID", "nonce invalid", err)
	case errors.Is(err, domainerrors.ErrNonceExpired):
		return domainerrors.NewAppError(http.StatusUnauthorized, "ERR_NONCE_EXPIRED", "nonce expired", err)
	case errors.Is(err, domainerrors.ErrSignatureExpired):
		return domainerrors.NewAppError(http.StatusUnauthorized, "ERR_SIGNATURE_EXPIRED", "signature expired", err)
	case errors.Is(err, domainerrors.ErrSignatureInvalid):
		return domainerrors.NewAppError(http.StatusUnauthorized, "ERR_SIGNATURE_INVALID", "signature invalid", err)
	case errors.Is(err, domainerrors.ErrAffiliateNotFound):
		return domainerrors.NewAppError(http.StatusNotFound, "ERR_AFFILIATE_NOT_FOUND", "affiliate not found", err)
	case errors.Is(err, domainerrors.ErrSelfReferral):
		return domainerrors.NewAppError(http.StatusBadRequest, "ERR_SELF_REFERRAL", "self referral rejected", err)
	case errors.Is(err, domainerrors.ErrConflictingBinding):
		return domainerrors.NewAppError(http.StatusConflict, "ERR_CONFLICTING_BINDING", "referee already bound to a different affiliate", err)
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest("invalid input")
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	default:
		return domainerrors.InternalError(err)
	}
}
