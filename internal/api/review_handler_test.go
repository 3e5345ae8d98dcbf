package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
	"github.com/praffulbansal123/Project2-Books-Management/internal/mocks"
	"github.com/praffulbansal123/Project2-Books-Management/internal/store"
)

func TestCreateReview(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()

	t.Run("success increments counter", func(t *testing.T) {
		t.Parallel()

		book := sampleBook(userID)

		bookStore := mocks.NewMockBookStore()
		bookStore.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Book, error) {
			return book, nil
		}
		var delta int
		bookStore.IncrementReviewsFn = func(ctx context.Context, id primitive.ObjectID, d int) (*domain.Book, error) {
			delta = d
			updated := *book
			updated.Reviews += d
			return &updated, nil
		}

		reviewStore := mocks.NewMockReviewStore()
		var created *domain.Review
		reviewStore.CreateFn = func(ctx context.Context, review *domain.Review) error {
			created = review
			return nil
		}

		handler := NewReviewHandler(reviewStore, bookStore, nil)

		body := `{"reviewedBy": "Jane", "rating": 4, "review": "worth reading"}`
		req := withURLParams(httptest.NewRequest(http.MethodPost,
			"/books/"+book.ID.Hex()+"/review", strings.NewReader(body)),
			map[string]string{"bookId": book.ID.Hex()})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, delta)
		require.NotNil(t, created)
		assert.Equal(t, book.ID, created.BookID)
		assert.Equal(t, "Jane", created.ReviewedBy)
		assert.Contains(t, rec.Body.String(), "new review has been added")
		assert.Contains(t, rec.Body.String(), "reviewsData")
	})

	t.Run("anonymous reviewer defaults to guest", func(t *testing.T) {
		t.Parallel()

		book := sampleBook(userID)

		bookStore := mocks.NewMockBookStore()
		bookStore.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Book, error) {
			return book, nil
		}
		bookStore.IncrementReviewsFn = func(ctx context.Context, id primitive.ObjectID, d int) (*domain.Book, error) {
			return book, nil
		}

		reviewStore := mocks.NewMockReviewStore()
		var created *domain.Review
		reviewStore.CreateFn = func(ctx context.Context, review *domain.Review) error {
			created = review
			return nil
		}

		handler := NewReviewHandler(reviewStore, bookStore, nil)

		req := withURLParams(httptest.NewRequest(http.MethodPost,
			"/books/"+book.ID.Hex()+"/review", strings.NewReader(`{"rating": 3}`)),
			map[string]string{"bookId": book.ID.Hex()})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, created)
		assert.Equal(t, domain.DefaultReviewer, created.ReviewedBy)
	})

	t.Run("invalid rating", func(t *testing.T) {
		t.Parallel()

		handler := NewReviewHandler(mocks.NewMockReviewStore(), mocks.NewMockBookStore(), nil)

		bookID := primitive.NewObjectID()
		req := withURLParams(httptest.NewRequest(http.MethodPost,
			"/books/"+bookID.Hex()+"/review", strings.NewReader(`{"rating": 6}`)),
			map[string]string{"bookId": bookID.Hex()})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		resp := decodeErrorResponse(t, rec)
		fields, ok := resp["errors"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, fields, "rating")
	})

	t.Run("missing or deleted book", func(t *testing.T) {
		t.Parallel()

		handler := NewReviewHandler(mocks.NewMockReviewStore(), mocks.NewMockBookStore(), nil)

		bookID := primitive.NewObjectID()
		req := withURLParams(httptest.NewRequest(http.MethodPost,
			"/books/"+bookID.Hex()+"/review", strings.NewReader(`{"rating": 4}`)),
			map[string]string{"bookId": bookID.Hex()})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateReview(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()

	t.Run("review of another book is a conflict", func(t *testing.T) {
		t.Parallel()

		book := sampleBook(userID)
		otherBookID := primitive.NewObjectID()
		review := &domain.Review{
			ID:         primitive.NewObjectID(),
			BookID:     otherBookID,
			ReviewedBy: "Jane",
			Rating:     4,
		}

		bookStore := mocks.NewMockBookStore()
		bookStore.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Book, error) {
			return book, nil
		}

		reviewStore := mocks.NewMockReviewStore()
		reviewStore.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Review, error) {
			return review, nil
		}

		handler := NewReviewHandler(reviewStore, bookStore, nil)

		req := withURLParams(httptest.NewRequest(http.MethodPut,
			"/books/"+book.ID.Hex()+"/review/"+review.ID.Hex(),
			strings.NewReader(`{"rating": 5}`)),
			map[string]string{"bookId": book.ID.Hex(), "reviewId": review.ID.Hex()})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, "this review is not of the book given in params", resp["message"])
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		book := sampleBook(userID)
		review := &domain.Review{
			ID:         primitive.NewObjectID(),
			BookID:     book.ID,
			ReviewedBy: "Jane",
			Rating:     4,
		}

		bookStore := mocks.NewMockBookStore()
		bookStore.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Book, error) {
			return book, nil
		}

		reviewStore := mocks.NewMockReviewStore()
		reviewStore.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Review, error) {
			return review, nil
		}
		reviewStore.UpdateFn = func(ctx context.Context, id primitive.ObjectID, update store.ReviewUpdate) (*domain.Review, error) {
			assert.Equal(t, 5, update.Rating)
			require.NotNil(t, update.Review)
			assert.Equal(t, "even better on reread", *update.Review)
			return review, nil
		}

		handler := NewReviewHandler(reviewStore, bookStore, nil)

		req := withURLParams(httptest.NewRequest(http.MethodPut,
			"/books/"+book.ID.Hex()+"/review/"+review.ID.Hex(),
			strings.NewReader(`{"rating": 5, "review": "even better on reread"}`)),
			map[string]string{"bookId": book.ID.Hex(), "reviewId": review.ID.Hex()})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "review has been updated")
	})

	t.Run("omitted optional fields are preserved", func(t *testing.T) {
		t.Parallel()

		book := sampleBook(userID)
		review := &domain.Review{
			ID:         primitive.NewObjectID(),
			BookID:     book.ID,
			ReviewedBy: "Jane",
			Rating:     4,
			Review:     "worth reading",
		}

		bookStore := mocks.NewMockBookStore()
		bookStore.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Book, error) {
			return book, nil
		}

		reviewStore := mocks.NewMockReviewStore()
		reviewStore.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Review, error) {
			return review, nil
		}
		var applied store.ReviewUpdate
		reviewStore.UpdateFn = func(ctx context.Context, id primitive.ObjectID, update store.ReviewUpdate) (*domain.Review, error) {
			applied = update
			return review, nil
		}

		handler := NewReviewHandler(reviewStore, bookStore, nil)

		// A rating-only body must not blank the stored reviewer or text.
		req := withURLParams(httptest.NewRequest(http.MethodPut,
			"/books/"+book.ID.Hex()+"/review/"+review.ID.Hex(),
			strings.NewReader(`{"rating": 5}`)),
			map[string]string{"bookId": book.ID.Hex(), "reviewId": review.ID.Hex()})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, applied.Rating)
		assert.Nil(t, applied.ReviewedBy)
		assert.Nil(t, applied.Review)
	})

	t.Run("missing review", func(t *testing.T) {
		t.Parallel()

		book := sampleBook(userID)

		bookStore := mocks.NewMockBookStore()
		bookStore.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Book, error) {
			return book, nil
		}

		handler := NewReviewHandler(mocks.NewMockReviewStore(), bookStore, nil)

		reviewID := primitive.NewObjectID()
		req := withURLParams(httptest.NewRequest(http.MethodPut,
			"/books/"+book.ID.Hex()+"/review/"+reviewID.Hex(),
			strings.NewReader(`{"rating": 5}`)),
			map[string]string{"bookId": book.ID.Hex(), "reviewId": reviewID.Hex()})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteReview(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()

	t.Run("success decrements counter", func(t *testing.T) {
		t.Parallel()

		book := sampleBook(userID)
		review := &domain.Review{
			ID:     primitive.NewObjectID(),
			BookID: book.ID,
			Rating: 4,
		}

		bookStore := mocks.NewMockBookStore()
		bookStore.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Book, error) {
			return book, nil
		}
		var delta int
		bookStore.IncrementReviewsFn = func(ctx context.Context, id primitive.ObjectID, d int) (*domain.Book, error) {
			delta = d
			return book, nil
		}

		reviewStore := mocks.NewMockReviewStore()
		reviewStore.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Review, error) {
			return review, nil
		}
		var softDeleted primitive.ObjectID
		reviewStore.SoftDeleteFn = func(ctx context.Context, id primitive.ObjectID) error {
			softDeleted = id
			return nil
		}

		handler := NewReviewHandler(reviewStore, bookStore, nil)

		req := withURLParams(httptest.NewRequest(http.MethodDelete,
			"/books/"+book.ID.Hex()+"/review/"+review.ID.Hex(), nil),
			map[string]string{"bookId": book.ID.Hex(), "reviewId": review.ID.Hex()})
		rec := httptest.NewRecorder()
		handler.Delete(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, -1, delta)
		assert.Equal(t, review.ID, softDeleted)
		assert.Contains(t, rec.Body.String(), "review has been deleted")
	})

	t.Run("wrong book path is a conflict", func(t *testing.T) {
		t.Parallel()

		book := sampleBook(userID)
		review := &domain.Review{
			ID:     primitive.NewObjectID(),
			BookID: primitive.NewObjectID(),
			Rating: 4,
		}

		bookStore := mocks.NewMockBookStore()
		bookStore.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Book, error) {
			return book, nil
		}

		reviewStore := mocks.NewMockReviewStore()
		reviewStore.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Review, error) {
			return review, nil
		}

		handler := NewReviewHandler(reviewStore, bookStore, nil)

		req := withURLParams(httptest.NewRequest(http.MethodDelete,
			"/books/"+book.ID.Hex()+"/review/"+review.ID.Hex(), nil),
			map[string]string{"bookId": book.ID.Hex(), "reviewId": review.ID.Hex()})
		rec := httptest.NewRecorder()
		handler.Delete(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
