package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrBookNotFound))
	assert.True(t, IsNotFoundError(ErrReviewNotFound))
	assert.False(t, IsNotFoundError(ErrEmailExists))

	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(ErrPhoneExists))
	assert.False(t, IsDuplicateError(ErrBookNotFound))
}

func TestWrappedErrorsSurviveAnnotation(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("looking up owner: %w", ErrUserNotFound)
	assert.True(t, IsNotFoundError(err))
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	err := NewStoreError("book", "update", "write failed", ErrBookNotFound)

	assert.Contains(t, err.Error(), "update operation on book failed")
	assert.True(t, errors.Is(err, ErrBookNotFound))
	assert.True(t, IsNotFoundError(err))

	bare := NewStoreError("user", "create", "no connection", nil)
	assert.Equal(t, "create operation on user failed: no connection", bare.Error())
}
