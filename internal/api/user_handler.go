package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/praffulbansal123/Project2-Books-Management/internal/api/shared"
	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
	"github.com/praffulbansal123/Project2-Books-Management/internal/service/auth"
	"github.com/praffulbansal123/Project2-Books-Management/internal/store"
)

// UserHandler handles user registration and login requests.
type UserHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		logger:           logger,
	}
}

// Register handles POST /createUser.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if shared.HasQueryParams(r) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request: no data is required in query params")
		return
	}

	body := readRequiredBody(w, r)
	if body == nil {
		return
	}

	var req RegisterUserRequest
	if !decodeRequestBody(w, r, body, &req) {
		return
	}

	req.Normalize()
	if fields := validateStruct(&req); fields != nil {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	// Uniqueness pre-checks, each an independent query. The unique
	// indexes remain the backstop for concurrent registrations.
	if _, err := h.userStore.GetByPhone(r.Context(), req.Phone); err == nil {
		shared.RespondWithError(w, r, http.StatusConflict,
			fmt.Sprintf("mobile number: %s already exist", req.Phone))
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		respondWithMappedError(w, r, err)
		return
	}

	if _, err := h.userStore.GetByEmail(r.Context(), req.Email); err == nil {
		shared.RespondWithError(w, r, http.StatusConflict,
			fmt.Sprintf("email Id: %s already exist", req.Email))
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		respondWithMappedError(w, r, err)
		return
	}

	hashed, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to register user")
		return
	}

	var address *domain.Address
	if req.Address != nil {
		address = &domain.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			Pincode: req.Address.Pincode,
		}
	}

	user, err := domain.NewUser(req.Title, req.Name, req.Phone, req.Email, hashed, address)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid user data: "+err.Error())
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, store.ErrPhoneExists):
			shared.RespondWithError(w, r, http.StatusConflict,
				fmt.Sprintf("mobile number: %s already exist", req.Phone))
		case errors.Is(err, store.ErrEmailExists):
			shared.RespondWithError(w, r, http.StatusConflict,
				fmt.Sprintf("email Id: %s already exist", req.Email))
		default:
			h.logger.Error("failed to create user", "error", err, "email", req.Email)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to register user")
		}
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, "new user registered successfully", user)
}

// Login handles POST /userLogin. On success the bearer token is echoed in
// both the Authorization response header and the response body.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if shared.HasQueryParams(r) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request: no data is required in query params")
		return
	}

	body := readRequiredBody(w, r)
	if body == nil {
		return
	}

	var req LoginRequest
	if !decodeRequestBody(w, r, body, &req) {
		return
	}

	req.Normalize()
	if fields := validateStruct(&req); fields != nil {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusForbidden, "invalid login credentials")
			return
		}
		h.logger.Error("failed to get user by email", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.Password, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusForbidden, "invalid login credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID.Hex())
	if err != nil {
		h.logger.Error("failed to generate token", "error", err, "user_id", user.ID.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to generate authentication token")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	shared.RespondWithSuccess(w, r, http.StatusOK, "login successful", token)
}
