// Package middleware provides the HTTP middleware chain for the books
// service: tracing, rate limiting, authentication and ownership gates.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/praffulbansal123/Project2-Books-Management/internal/api/shared"
	"github.com/praffulbansal123/Project2-Books-Management/internal/service/auth"
	"github.com/praffulbansal123/Project2-Books-Management/internal/store"
)

// AuthMiddleware provides the authentication and ownership gates.
// The gate never mutates state; every failed step is fatal to the request.
type AuthMiddleware struct {
	jwtService auth.JWTService
	bookStore  store.BookStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, bookStore store.BookStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		bookStore:  bookStore,
	}
}

// Authenticate validates bearer tokens from the Authorization header and
// adds the decoded claims to the request context. A missing token is
// reported as not-found; an expired session as a request timeout,
// distinct from an invalid token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusNotFound, "token not found")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			shared.RespondWithError(w, r, http.StatusNotFound, "token not found")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusRequestTimeout, "session expired, please login again")
			case errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid authentication token")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "authentication error")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSelf authorizes ownership-by-user: the userId carried in the
// request body must match the authenticated identity. The body is
// restored for the downstream handler.
func (m *AuthMiddleware) RequireSelf(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid authentication token")
			return
		}

		body, err := shared.ReadBody(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "failed to read request body")
			return
		}

		// Only the userId field matters here; full schema validation is
		// the handler's job.
		var probe struct {
			UserID string `json:"userId"`
		}
		_ = json.Unmarshal(body, &probe)

		if claims.UserID != probe.UserID {
			shared.RespondWithError(w, r, http.StatusForbidden, "unauthorized access")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireBookOwner authorizes ownership-by-book: the non-deleted book
// addressed by the path must be owned by the authenticated identity.
// A malformed id is a validation failure, not a not-found.
func (m *AuthMiddleware) RequireBookOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid authentication token")
			return
		}

		raw := chi.URLParam(r, "bookId")
		if raw == "" {
			shared.RespondWithError(w, r, http.StatusNotAcceptable, "book id is not provided in params")
			return
		}

		bookID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			shared.RespondWithValidationErrors(w, r,
				map[string]string{"bookId": "must be a valid 24 character hex id"})
			return
		}

		book, err := m.bookStore.GetByID(r.Context(), bookID)
		if err != nil {
			if errors.Is(err, store.ErrBookNotFound) {
				shared.RespondWithError(w, r, http.StatusNotFound,
					fmt.Sprintf("no book exists with %s or the book has been deleted", bookID.Hex()))
				return
			}
			slog.Error("failed to load book for ownership check", "error", err, "book_id", bookID.Hex())
			shared.RespondWithError(w, r, http.StatusInternalServerError, "authorization error")
			return
		}

		if claims.UserID != book.UserID.Hex() {
			shared.RespondWithError(w, r, http.StatusForbidden, "unauthorized access")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetClaims extracts the decoded token claims from the request context.
// Returns the claims and a boolean indicating if they were found.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	return claims, ok
}
