package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
)

// ReviewUpdate carries the mutable fields of a review. Only the reviewer
// name, rating and text may change after creation. A nil pointer means
// the field was not supplied and the stored value must be preserved.
type ReviewUpdate struct {
	ReviewedBy *string
	Rating     int
	Review     *string
}

// ReviewStore defines the interface for review data persistence.
// Lookups exclude soft-deleted reviews.
type ReviewStore interface {
	// Create saves a new review to the store.
	Create(ctx context.Context, review *domain.Review) error

	// GetByID retrieves a non-deleted review by its unique ID.
	// Returns ErrReviewNotFound if the review does not exist or is deleted.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Review, error)

	// ListByBook returns all non-deleted reviews attached to the given book.
	ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]domain.Review, error)

	// Update replaces the mutable fields of a non-deleted review and
	// returns the updated record. Returns ErrReviewNotFound if the review
	// does not exist or is deleted.
	Update(ctx context.Context, id primitive.ObjectID, update ReviewUpdate) (*domain.Review, error)

	// SoftDelete marks a review deleted by flag alone; reviews carry no
	// deletion timestamp. Returns ErrReviewNotFound if the review does not
	// exist or is already deleted.
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
}
