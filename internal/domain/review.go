package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultReviewer is used when a review is submitted without a name.
const DefaultReviewer = "Guest"

// ErrEmptyBookRef is returned when a review is not linked to a book.
var ErrEmptyBookRef = errors.New("review must reference a book")

// Review is a reader's rating of a book. Reviews soft-delete by flag
// alone; unlike books they carry no deletion timestamp.
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookID     primitive.ObjectID `bson:"bookId"        json:"bookId"`
	ReviewedBy string             `bson:"reviewedBy"    json:"reviewedBy"`
	ReviewedAt time.Time          `bson:"reviewedAt"    json:"reviewedAt"`
	Rating     int                `bson:"rating"        json:"rating"`
	Review     string             `bson:"review,omitempty" json:"review,omitempty"`
	IsDeleted  bool               `bson:"isDeleted"     json:"-"`
}

// NewReview creates a review attached to bookID, stamping ReviewedAt
// with the current time. An empty reviewer name falls back to "Guest".
func NewReview(bookID primitive.ObjectID, reviewedBy string, rating int, text string) (*Review, error) {
	if reviewedBy == "" {
		reviewedBy = DefaultReviewer
	}
	review := &Review{
		ID:         primitive.NewObjectID(),
		BookID:     bookID,
		ReviewedBy: reviewedBy,
		ReviewedAt: time.Now().UTC(),
		Rating:     rating,
		Review:     text,
		IsDeleted:  false,
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks if the Review has valid data.
func (r *Review) Validate() error {
	if r.BookID.IsZero() {
		return ErrEmptyBookRef
	}
	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

// BelongsTo reports whether the review is attached to the given book.
// Operations that address a review through a book path must check this;
// a mismatch is a conflict, not a not-found.
func (r *Review) BelongsTo(bookID primitive.ObjectID) bool {
	return r.BookID == bookID
}
