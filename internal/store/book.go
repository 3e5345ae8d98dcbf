package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
)

// BookFilter narrows the book list query. Zero-valued fields are ignored.
// Soft-deleted books are always excluded regardless of the filter.
type BookFilter struct {
	UserID      *primitive.ObjectID
	Category    string
	Subcategory string
}

// BookUpdate carries the full replacement field set for a book update.
// Partial updates are not supported; every field must be resupplied.
type BookUpdate struct {
	Title      string
	Excerpt    string
	ISBN       string
	ReleasedAt time.Time
}

// BookStore defines the interface for book data persistence.
// Every lookup and mutation is scoped to non-deleted records
// (isDeleted=false AND deletedAt=null), so a soft-deleted book is
// invisible to all of these operations.
type BookStore interface {
	// Create saves a new book to the store.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID retrieves a non-deleted book by its unique ID.
	// Returns ErrBookNotFound if the book does not exist or is deleted.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Book, error)

	// GetByTitle retrieves a non-deleted book by its exact title.
	// Returns ErrBookNotFound if no such book exists.
	GetByTitle(ctx context.Context, title string) (*domain.Book, error)

	// GetByISBN retrieves a non-deleted book by its ISBN.
	// Returns ErrBookNotFound if no such book exists.
	GetByISBN(ctx context.Context, isbn string) (*domain.Book, error)

	// List returns non-deleted books matching the filter, sorted by title
	// ascending. An empty result is returned as an empty slice; the caller
	// decides how to report it.
	List(ctx context.Context, filter BookFilter) ([]domain.Book, error)

	// Update replaces the updatable fields of a non-deleted book and
	// returns the updated record. Returns ErrBookNotFound if the book does
	// not exist or is deleted.
	Update(ctx context.Context, id primitive.ObjectID, update BookUpdate) (*domain.Book, error)

	// SoftDelete marks a non-deleted book deleted, setting isDeleted=true
	// and deletedAt to the given time. Returns ErrBookNotFound if the book
	// does not exist or is already deleted.
	SoftDelete(ctx context.Context, id primitive.ObjectID, deletedAt time.Time) error

	// IncrementReviews adjusts the denormalized review counter by delta
	// and returns the updated book. Returns ErrBookNotFound if the book
	// does not exist or is deleted.
	IncrementReviews(ctx context.Context, id primitive.ObjectID, delta int) (*domain.Book, error)
}
