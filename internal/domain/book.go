package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReleaseCutoff is the latest date a book may have been released.
// Older catalog imports stop at this fixed historical boundary.
var ReleaseCutoff = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

// Common book validation errors
var (
	ErrEmptyBookTitle = errors.New("book title cannot be empty")
	ErrEmptyExcerpt   = errors.New("excerpt cannot be empty")
	ErrEmptyISBN      = errors.New("ISBN cannot be empty")
	ErrEmptyCategory  = errors.New("category cannot be empty")
	ErrEmptyOwner     = errors.New("book owner cannot be empty")
	ErrReleaseTooLate = errors.New("releasedAt cannot be after 2022-01-01")
)

// Book represents a catalog record owned by a user. A book is never
// physically removed; deletion flips IsDeleted and stamps DeletedAt, and
// every normal query excludes records where either is set.
type Book struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title"         json:"title"`
	Excerpt     string             `bson:"excerpt"       json:"excerpt"`
	UserID      primitive.ObjectID `bson:"userId"        json:"userId"`
	ISBN        string             `bson:"ISBN"          json:"ISBN"`
	Category    string             `bson:"category"      json:"category"`
	Subcategory []string           `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Reviews     int                `bson:"reviews"       json:"reviews"`
	ReleasedAt  time.Time          `bson:"releasedAt"    json:"releasedAt"`
	IsDeleted   bool               `bson:"isDeleted"     json:"isDeleted"`
	DeletedAt   *time.Time         `bson:"deletedAt"     json:"deletedAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"     json:"updatedAt"`
}

// NewBook creates a new Book owned by userID. The review counter starts
// at zero and the soft-delete fields start cleared regardless of input.
func NewBook(title, excerpt string, userID primitive.ObjectID, isbn, category string,
	subcategory []string, releasedAt time.Time) (*Book, error) {
	now := time.Now().UTC()
	book := &Book{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Excerpt:     excerpt,
		UserID:      userID,
		ISBN:        isbn,
		Category:    category,
		Subcategory: subcategory,
		Reviews:     0,
		ReleasedAt:  releasedAt,
		IsDeleted:   false,
		DeletedAt:   nil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks if the Book has valid data.
func (b *Book) Validate() error {
	if b.Title == "" {
		return ErrEmptyBookTitle
	}
	if b.Excerpt == "" {
		return ErrEmptyExcerpt
	}
	if b.UserID.IsZero() {
		return ErrEmptyOwner
	}
	if b.ISBN == "" {
		return ErrEmptyISBN
	}
	if b.Category == "" {
		return ErrEmptyCategory
	}
	if b.ReleasedAt.After(ReleaseCutoff) {
		return ErrReleaseTooLate
	}
	return nil
}

// BookWithReviews is a response-only composition of a book and its
// non-deleted reviews. It is assembled fresh per request and never persisted.
type BookWithReviews struct {
	Book
	ReviewsData []Review `json:"reviewsData"`
}

// ComposeBookWithReviews builds the denormalized view returned by the
// book-details and review endpoints.
func ComposeBookWithReviews(book *Book, reviews []Review) *BookWithReviews {
	if reviews == nil {
		reviews = []Review{}
	}
	return &BookWithReviews{Book: *book, ReviewsData: reviews}
}
