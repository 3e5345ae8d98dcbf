package api

import (
	"errors"
	"net/http"

	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
	"github.com/praffulbansal123/Project2-Books-Management/internal/service/auth"
	"github.com/praffulbansal123/Project2-Books-Management/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors. A missing token is reported as not-found
	// and an expired session as a timeout, both distinct from a bad token.
	case errors.Is(err, auth.ErrMissingToken):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrExpiredToken):
		return http.StatusRequestTimeout
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized

	// Not found errors (missing or soft-deleted entities)
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err),
		errors.Is(err, domain.ErrReviewMismatch):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "an unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return "token not found"
	case errors.Is(err, auth.ErrExpiredToken):
		return "session expired, please login again"
	case errors.Is(err, auth.ErrInvalidToken):
		return "invalid authentication token"

	case errors.Is(err, store.ErrUserNotFound):
		return "user does not exist"
	case errors.Is(err, store.ErrBookNotFound):
		return "book not found"
	case errors.Is(err, store.ErrReviewNotFound):
		return "review not found"

	case errors.Is(err, store.ErrPhoneExists):
		return "mobile number already exist"
	case errors.Is(err, store.ErrEmailExists):
		return "email address already exist"
	case errors.Is(err, domain.ErrReviewMismatch):
		return "this review is not of the book given in params"

	case errors.Is(err, store.ErrInvalidEntity):
		return "invalid entity data"

	default:
		return "an unexpected error occurred"
	}
}
