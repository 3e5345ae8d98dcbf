package shared

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// maxBodyBytes caps request bodies; payloads here are small documents.
const maxBodyBytes = 1 << 20

// HasQueryParams reports whether the request carries any query parameters.
// Endpoints that accept no query data treat their presence as a
// wrong-channel error.
func HasQueryParams(r *http.Request) bool {
	return len(r.URL.Query()) > 0
}

// ReadBody drains and returns the request body, restoring it on the
// request so a later decode still works.
func ReadBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

// IsEmptyBody reports whether the raw body carries no input data:
// nothing at all, or an empty/null JSON document.
func IsEmptyBody(body []byte) bool {
	trimmed := strings.TrimSpace(string(body))
	return trimmed == "" || trimmed == "{}" || trimmed == "null"
}

// DecodeJSON decodes the raw body into the given struct, rejecting fields
// the schema does not declare.
func DecodeJSON(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// IsUnknownFieldError reports whether a decode failure was caused by a
// field outside the schema, which callers classify as a validation
// failure rather than a malformed request.
func IsUnknownFieldError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "unknown field")
}
