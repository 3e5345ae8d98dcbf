package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
	"github.com/praffulbansal123/Project2-Books-Management/internal/store"
)

// MockReviewStore is a configurable test double for store.ReviewStore.
type MockReviewStore struct {
	CreateFn     func(ctx context.Context, review *domain.Review) error
	GetByIDFn    func(ctx context.Context, id primitive.ObjectID) (*domain.Review, error)
	ListByBookFn func(ctx context.Context, bookID primitive.ObjectID) ([]domain.Review, error)
	UpdateFn     func(ctx context.Context, id primitive.ObjectID, update store.ReviewUpdate) (*domain.Review, error)
	SoftDeleteFn func(ctx context.Context, id primitive.ObjectID) error
}

var _ store.ReviewStore = (*MockReviewStore)(nil)

// NewMockReviewStore creates a mock whose lookups report not-found and
// whose mutations succeed.
func NewMockReviewStore() *MockReviewStore {
	return &MockReviewStore{}
}

func (m *MockReviewStore) Create(ctx context.Context, review *domain.Review) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, review)
	}
	return nil
}

func (m *MockReviewStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Review, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrReviewNotFound
}

func (m *MockReviewStore) ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]domain.Review, error) {
	if m.ListByBookFn != nil {
		return m.ListByBookFn(ctx, bookID)
	}
	return []domain.Review{}, nil
}

func (m *MockReviewStore) Update(ctx context.Context, id primitive.ObjectID, update store.ReviewUpdate) (*domain.Review, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return nil, store.ErrReviewNotFound
}

func (m *MockReviewStore) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, id)
	}
	return nil
}
