package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewBook(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()
	released := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("starts with cleared counter and delete state", func(t *testing.T) {
		t.Parallel()

		book, err := NewBook("Learning Go", "a practical introduction", userID,
			"978-93-5019-561-8", "programming", []string{"golang"}, released)
		require.NoError(t, err)

		assert.False(t, book.ID.IsZero())
		assert.Equal(t, 0, book.Reviews)
		assert.False(t, book.IsDeleted)
		assert.Nil(t, book.DeletedAt)
		assert.False(t, book.CreatedAt.IsZero())
	})

	t.Run("release after cutoff rejected", func(t *testing.T) {
		t.Parallel()

		late := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
		_, err := NewBook("Learning Go", "a practical introduction", userID,
			"978-93-5019-561-8", "programming", nil, late)
		assert.ErrorIs(t, err, ErrReleaseTooLate)
	})

	t.Run("release on cutoff accepted", func(t *testing.T) {
		t.Parallel()

		_, err := NewBook("Learning Go", "a practical introduction", userID,
			"978-93-5019-561-8", "programming", nil, ReleaseCutoff)
		assert.NoError(t, err)
	})

	t.Run("missing owner rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewBook("Learning Go", "a practical introduction", primitive.NilObjectID,
			"978-93-5019-561-8", "programming", nil, released)
		assert.ErrorIs(t, err, ErrEmptyOwner)
	})
}

func TestComposeBookWithReviews(t *testing.T) {
	t.Parallel()

	book := &Book{ID: primitive.NewObjectID(), Title: "Learning Go"}

	t.Run("nil reviews become empty slice", func(t *testing.T) {
		t.Parallel()

		composed := ComposeBookWithReviews(book, nil)
		require.NotNil(t, composed.ReviewsData)
		assert.Empty(t, composed.ReviewsData)
	})

	t.Run("reviews pass through", func(t *testing.T) {
		t.Parallel()

		reviews := []Review{{ID: primitive.NewObjectID(), BookID: book.ID, Rating: 4}}
		composed := ComposeBookWithReviews(book, reviews)
		assert.Len(t, composed.ReviewsData, 1)
		assert.Equal(t, book.Title, composed.Title)
	})
}
