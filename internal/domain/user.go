package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common user validation errors
var (
	ErrEmptyTitle    = errors.New("title must be one of Mr, Mrs or Miss")
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyPhone    = errors.New("phone cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrEmptyPassword = errors.New("password hash cannot be empty")
)

// userTitles is the closed set of honorifics a user may register with.
var userTitles = map[string]bool{"Mr": true, "Mrs": true, "Miss": true}

// Address is the optional postal address attached to a user.
type Address struct {
	Street  string `bson:"street,omitempty"  json:"street,omitempty"`
	City    string `bson:"city,omitempty"    json:"city,omitempty"`
	Pincode string `bson:"pincode,omitempty" json:"pincode,omitempty"`
}

// User represents a registered user of the books service.
// Phone and email are globally unique among all users; uniqueness is
// enforced both by pre-checks in the handler and by unique indexes.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title"         json:"title"`
	Name      string             `bson:"name"          json:"name"`
	Phone     string             `bson:"phone"         json:"phone"`
	Email     string             `bson:"email"         json:"email"`
	Password  string             `bson:"password"      json:"-"` // bcrypt hash, never exposed
	Address   *Address           `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"     json:"updatedAt"`
}

// NewUser creates a new User with a fresh ObjectID and timestamps.
// The password argument must already be hashed; plaintext never reaches
// the domain layer.
func NewUser(title, name, phone, email, hashedPassword string, address *Address) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Name:      name,
		Phone:     phone,
		Email:     email,
		Password:  hashedPassword,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if !userTitles[u.Title] {
		return ErrEmptyTitle
	}
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Phone == "" {
		return ErrEmptyPhone
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}
