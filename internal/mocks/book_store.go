package mocks

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
	"github.com/praffulbansal123/Project2-Books-Management/internal/store"
)

// MockBookStore is a configurable test double for store.BookStore.
type MockBookStore struct {
	CreateFn           func(ctx context.Context, book *domain.Book) error
	GetByIDFn          func(ctx context.Context, id primitive.ObjectID) (*domain.Book, error)
	GetByTitleFn       func(ctx context.Context, title string) (*domain.Book, error)
	GetByISBNFn        func(ctx context.Context, isbn string) (*domain.Book, error)
	ListFn             func(ctx context.Context, filter store.BookFilter) ([]domain.Book, error)
	UpdateFn           func(ctx context.Context, id primitive.ObjectID, update store.BookUpdate) (*domain.Book, error)
	SoftDeleteFn       func(ctx context.Context, id primitive.ObjectID, deletedAt time.Time) error
	IncrementReviewsFn func(ctx context.Context, id primitive.ObjectID, delta int) (*domain.Book, error)
}

var _ store.BookStore = (*MockBookStore)(nil)

// NewMockBookStore creates a mock whose lookups report not-found and
// whose mutations succeed.
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{}
}

func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}
	return nil
}

func (m *MockBookStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrBookNotFound
}

func (m *MockBookStore) GetByTitle(ctx context.Context, title string) (*domain.Book, error) {
	if m.GetByTitleFn != nil {
		return m.GetByTitleFn(ctx, title)
	}
	return nil, store.ErrBookNotFound
}

func (m *MockBookStore) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	if m.GetByISBNFn != nil {
		return m.GetByISBNFn(ctx, isbn)
	}
	return nil, store.ErrBookNotFound
}

func (m *MockBookStore) List(ctx context.Context, filter store.BookFilter) ([]domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return []domain.Book{}, nil
}

func (m *MockBookStore) Update(ctx context.Context, id primitive.ObjectID, update store.BookUpdate) (*domain.Book, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return nil, store.ErrBookNotFound
}

func (m *MockBookStore) SoftDelete(ctx context.Context, id primitive.ObjectID, deletedAt time.Time) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, id, deletedAt)
	}
	return nil
}

func (m *MockBookStore) IncrementReviews(ctx context.Context, id primitive.ObjectID, delta int) (*domain.Book, error) {
	if m.IncrementReviewsFn != nil {
		return m.IncrementReviewsFn(ctx, id, delta)
	}
	return nil, store.ErrBookNotFound
}
