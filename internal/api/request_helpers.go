package api

import (
	"net/http"

	"github.com/praffulbansal123/Project2-Books-Management/internal/api/shared"
)

// respondWithMappedError funnels an unclassified error through the
// error-to-status translator. Every handler failure path that is not an
// explicit flow check ends up here.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
}

// decodeRequestBody decodes the raw body into the target DTO and writes
// the appropriate error response on failure. A field outside the schema
// is a validation failure; anything else is a malformed request.
// Returns false when a response has already been written.
func decodeRequestBody(w http.ResponseWriter, r *http.Request, body []byte, v interface{}) bool {
	if err := shared.DecodeJSON(body, v); err != nil {
		if shared.IsUnknownFieldError(err) {
			shared.RespondWithValidationErrors(w, r, map[string]string{"request": err.Error()})
		} else {
			shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		}
		return false
	}
	return true
}

// readRequiredBody enforces the body channel for endpoints that require
// input data: a read failure is a bad request, an empty body is a
// not-acceptable missing-input error. Returns the raw body, or nil when
// a response has already been written.
func readRequiredBody(w http.ResponseWriter, r *http.Request) []byte {
	body, err := shared.ReadBody(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "failed to read request body")
		return nil
	}
	if shared.IsEmptyBody(body) {
		shared.RespondWithError(w, r, http.StatusNotAcceptable, "input data is not provided")
		return nil
	}
	return body
}

// rejectBody enforces the body channel for endpoints that accept none:
// any input data present is a bad request. Returns false when a response
// has already been written.
func rejectBody(w http.ResponseWriter, r *http.Request, message string) bool {
	body, err := shared.ReadBody(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "failed to read request body")
		return false
	}
	if !shared.IsEmptyBody(body) {
		shared.RespondWithError(w, r, http.StatusBadRequest, message)
		return false
	}
	return true
}
