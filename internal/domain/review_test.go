package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewReview(t *testing.T) {
	t.Parallel()

	bookID := primitive.NewObjectID()

	t.Run("valid review", func(t *testing.T) {
		t.Parallel()

		review, err := NewReview(bookID, "Jane", 4, "worth reading")
		require.NoError(t, err)
		assert.Equal(t, bookID, review.BookID)
		assert.False(t, review.ReviewedAt.IsZero())
		assert.False(t, review.IsDeleted)
	})

	t.Run("empty reviewer falls back to guest", func(t *testing.T) {
		t.Parallel()

		review, err := NewReview(bookID, "", 3, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultReviewer, review.ReviewedBy)
	})

	t.Run("rating bounds", func(t *testing.T) {
		t.Parallel()

		_, err := NewReview(bookID, "Jane", 0, "")
		assert.ErrorIs(t, err, ErrInvalidRating)

		_, err = NewReview(bookID, "Jane", 6, "")
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("missing book reference", func(t *testing.T) {
		t.Parallel()

		_, err := NewReview(primitive.NilObjectID, "Jane", 4, "")
		assert.ErrorIs(t, err, ErrEmptyBookRef)
	})
}

func TestReviewBelongsTo(t *testing.T) {
	t.Parallel()

	bookID := primitive.NewObjectID()
	review := Review{BookID: bookID}

	assert.True(t, review.BelongsTo(bookID))
	assert.False(t, review.BelongsTo(primitive.NewObjectID()))
}
