package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Users are never updated or deleted; registration is the only mutation.
type UserStore interface {
	// Create saves a new user to the store. The user's password must
	// already be hashed. Returns ErrEmailExists or ErrPhoneExists when a
	// unique contact field is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByPhone retrieves a user by their phone number.
	// Returns ErrUserNotFound if the user does not exist.
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
}
