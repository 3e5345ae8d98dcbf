package api

import (
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
)

// Common request/response structures

// AddressPayload is the optional nested address object on registration.
type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// RegisterUserRequest defines the payload for the /createUser endpoint.
type RegisterUserRequest struct {
	Title    string          `json:"title"    validate:"required,oneof=Mr Mrs Miss"`
	Name     string          `json:"name"     validate:"required,min=3"`
	Phone    string          `json:"phone"    validate:"required,inphone"`
	Email    string          `json:"email"    validate:"required,email"`
	Password string          `json:"password" validate:"required,bookpassword"`
	Address  *AddressPayload `json:"address"`
}

// Normalize applies the schema's coercions: strings are trimmed and the
// email is lowercased.
func (r *RegisterUserRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Address != nil {
		r.Address.Street = strings.TrimSpace(r.Address.Street)
		r.Address.City = strings.TrimSpace(r.Address.City)
		r.Address.Pincode = strings.TrimSpace(r.Address.Pincode)
	}
}

// LoginRequest defines the payload for the /userLogin endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,bookpassword"`
}

// Normalize trims and lowercases the email. The password is taken as
// supplied, matching registration: surrounding whitespace fails the
// pattern check instead of being silently stripped.
func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// CreateBookRequest defines the payload for the /createBook endpoint.
// Reviews, IsDeleted and DeletedAt are accepted for schema compatibility
// but their values are ignored: a new book always starts with a zero
// counter and cleared soft-delete fields.
type CreateBookRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Excerpt     string   `json:"excerpt"     validate:"required,min=3"`
	UserID      string   `json:"userId"      validate:"required,objectid"`
	ISBN        string   `json:"ISBN"        validate:"required,isbn1013"`
	Category    string   `json:"category"    validate:"required,min=3"`
	Subcategory []string `json:"subcategory" validate:"omitempty,dive,required,min=3"`
	ReleasedAt  string   `json:"releasedAt"  validate:"required"`
	Reviews     *int     `json:"reviews"`
	IsDeleted   *bool    `json:"isDeleted"`
	DeletedAt   *string  `json:"deletedAt"`
}

// Normalize trims every string field of the payload.
func (r *CreateBookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Excerpt = strings.TrimSpace(r.Excerpt)
	r.UserID = strings.TrimSpace(r.UserID)
	r.ISBN = strings.TrimSpace(r.ISBN)
	r.Category = strings.TrimSpace(r.Category)
	r.ReleasedAt = strings.TrimSpace(r.ReleasedAt)
	for i, s := range r.Subcategory {
		r.Subcategory[i] = strings.TrimSpace(s)
	}
}

// UpdateBookRequest defines the payload for PUT /books/{bookId}.
// Partial updates are not supported; every field must be resupplied.
type UpdateBookRequest struct {
	Title      string `json:"title"      validate:"required"`
	Excerpt    string `json:"excerpt"    validate:"required,min=3"`
	ISBN       string `json:"ISBN"       validate:"required,isbn1013"`
	ReleasedAt string `json:"releasedAt" validate:"required"`
}

// Normalize trims every field of the payload.
func (r *UpdateBookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Excerpt = strings.TrimSpace(r.Excerpt)
	r.ISBN = strings.TrimSpace(r.ISBN)
	r.ReleasedAt = strings.TrimSpace(r.ReleasedAt)
}

// ReviewRequest defines the payload for creating or updating a review.
// The optional fields are pointers so an omitted field stays
// distinguishable from an explicit empty one: on update, an absent
// reviewedBy or review leaves the stored value untouched.
type ReviewRequest struct {
	ReviewedBy *string `json:"reviewedBy" validate:"omitempty,min=3"`
	Rating     int     `json:"rating"     validate:"required,min=1,max=5"`
	Review     *string `json:"review"     validate:"omitempty,min=5"`
}

// Normalize trims the supplied optional fields in place.
func (r *ReviewRequest) Normalize() {
	if r.ReviewedBy != nil {
		*r.ReviewedBy = strings.TrimSpace(*r.ReviewedBy)
	}
	if r.Review != nil {
		*r.Review = strings.TrimSpace(*r.Review)
	}
}

// BookListFilter is the recognized query-parameter filter for /getBookList.
type BookListFilter struct {
	UserID      string `json:"userId"      validate:"omitempty,objectid"`
	Category    string `json:"category"    validate:"omitempty,min=3"`
	Subcategory string `json:"subcategory" validate:"omitempty,min=3"`
}

// allowedFilterKeys is the closed set of recognized filter parameters.
var allowedFilterKeys = map[string]bool{"userId": true, "category": true, "subcategory": true}

// parseBookListFilter validates the query parameters against the filter
// schema. Unrecognized keys and constraint violations are both reported
// as per-field validation failures.
func parseBookListFilter(query url.Values) (*BookListFilter, map[string]string) {
	for key := range query {
		if !allowedFilterKeys[key] {
			return nil, map[string]string{key: "is not a recognized filter"}
		}
	}

	filter := &BookListFilter{
		UserID:      strings.TrimSpace(query.Get("userId")),
		Category:    strings.TrimSpace(query.Get("category")),
		Subcategory: strings.TrimSpace(query.Get("subcategory")),
	}

	if fields := validateStruct(filter); fields != nil {
		return nil, fields
	}

	return filter, nil
}

// BookSummary is the projected book view returned by the list endpoint.
type BookSummary struct {
	ID          primitive.ObjectID `json:"_id"`
	Title       string             `json:"title"`
	Excerpt     string             `json:"excerpt"`
	UserID      primitive.ObjectID `json:"userId"`
	Category    string             `json:"category"`
	Subcategory []string           `json:"subcategory,omitempty"`
	ReleasedAt  time.Time          `json:"releasedAt"`
	Reviews     int                `json:"reviews"`
}

// NewBookSummary projects a book onto its list view.
func NewBookSummary(b domain.Book) BookSummary {
	return BookSummary{
		ID:          b.ID,
		Title:       b.Title,
		Excerpt:     b.Excerpt,
		UserID:      b.UserID,
		Category:    b.Category,
		Subcategory: b.Subcategory,
		ReleasedAt:  b.ReleasedAt,
		Reviews:     b.Reviews,
	}
}

// BookListResponse is the success envelope for the list endpoint, carrying
// the match count alongside the projected books.
type BookListResponse struct {
	Status     bool          `json:"status"`
	Message    string        `json:"message"`
	BooksCount int           `json:"booksCount"`
	BookList   []BookSummary `json:"bookList"`
}
