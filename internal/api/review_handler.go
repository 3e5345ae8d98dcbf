package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/praffulbansal123/Project2-Books-Management/internal/api/shared"
	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
	"github.com/praffulbansal123/Project2-Books-Management/internal/store"
)

// ReviewHandler handles review requests nested under a book path.
type ReviewHandler struct {
	reviewStore store.ReviewStore
	bookStore   store.BookStore
	logger      *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler with the given dependencies.
func NewReviewHandler(
	reviewStore store.ReviewStore,
	bookStore store.BookStore,
	logger *slog.Logger,
) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		reviewStore: reviewStore,
		bookStore:   bookStore,
		logger:      logger,
	}
}

// Create handles POST /books/{bookId}/review. The book's denormalized
// review counter is incremented after the insert; the two writes are
// independent single-document operations, not a transaction.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	if shared.HasQueryParams(r) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request: no data is required in query params")
		return
	}

	bookID, ok := h.pathID(w, r, "bookId")
	if !ok {
		return
	}

	body := readRequiredBody(w, r)
	if body == nil {
		return
	}

	var req ReviewRequest
	if !decodeRequestBody(w, r, body, &req) {
		return
	}

	req.Normalize()
	if fields := validateStruct(&req); fields != nil {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	if _, err := h.loadBook(w, r, bookID); err != nil {
		return
	}

	var reviewedBy, text string
	if req.ReviewedBy != nil {
		reviewedBy = *req.ReviewedBy
	}
	if req.Review != nil {
		text = *req.Review
	}

	review, err := domain.NewReview(bookID, reviewedBy, req.Rating, text)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid review data: "+err.Error())
		return
	}

	if err := h.reviewStore.Create(r.Context(), review); err != nil {
		h.logger.Error("failed to create review", "error", err, "book_id", bookID.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to add review")
		return
	}

	book, err := h.bookStore.IncrementReviews(r.Context(), bookID, +1)
	if err != nil {
		h.logger.Error("failed to increment review count", "error", err, "book_id", bookID.Hex())
		respondWithMappedError(w, r, err)
		return
	}

	h.respondWithBookReviews(w, r, http.StatusOK, "new review has been added", book)
}

// Update handles PUT /books/{bookId}/review/{reviewId}. Only the reviewer
// name, rating and text may change.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	if shared.HasQueryParams(r) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request: no data is required in query params")
		return
	}

	bookID, ok := h.pathID(w, r, "bookId")
	if !ok {
		return
	}

	reviewID, ok := h.pathID(w, r, "reviewId")
	if !ok {
		return
	}

	body := readRequiredBody(w, r)
	if body == nil {
		return
	}

	var req ReviewRequest
	if !decodeRequestBody(w, r, body, &req) {
		return
	}

	req.Normalize()
	if fields := validateStruct(&req); fields != nil {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	book, err := h.loadBook(w, r, bookID)
	if err != nil {
		return
	}

	review, err := h.loadReview(w, r, reviewID)
	if err != nil {
		return
	}

	// A review addressed through the wrong book path is a conflict, not
	// a not-found, even though both ids exist individually.
	if !review.BelongsTo(bookID) {
		shared.RespondWithError(w, r, http.StatusConflict, GetSafeErrorMessage(domain.ErrReviewMismatch))
		return
	}

	if _, err := h.reviewStore.Update(r.Context(), reviewID, store.ReviewUpdate{
		ReviewedBy: req.ReviewedBy,
		Rating:     req.Rating,
		Review:     req.Review,
	}); err != nil {
		h.respondReviewLookupError(w, r, reviewID, err)
		return
	}

	h.respondWithBookReviews(w, r, http.StatusOK, "review has been updated", book)
}

// Delete handles DELETE /books/{bookId}/review/{reviewId}. The review is
// soft-deleted by flag and the book's counter decremented.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if shared.HasQueryParams(r) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request: no data is required in query params")
		return
	}
	if !rejectBody(w, r, "invalid request: no data is required in request body") {
		return
	}

	bookID, ok := h.pathID(w, r, "bookId")
	if !ok {
		return
	}

	reviewID, ok := h.pathID(w, r, "reviewId")
	if !ok {
		return
	}

	if _, err := h.loadBook(w, r, bookID); err != nil {
		return
	}

	review, err := h.loadReview(w, r, reviewID)
	if err != nil {
		return
	}

	if !review.BelongsTo(bookID) {
		shared.RespondWithError(w, r, http.StatusConflict, GetSafeErrorMessage(domain.ErrReviewMismatch))
		return
	}

	if err := h.reviewStore.SoftDelete(r.Context(), reviewID); err != nil {
		h.respondReviewLookupError(w, r, reviewID, err)
		return
	}

	if _, err := h.bookStore.IncrementReviews(r.Context(), bookID, -1); err != nil {
		h.logger.Error("failed to decrement review count", "error", err, "book_id", bookID.Hex())
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "review has been deleted", nil)
}

// pathID extracts and validates a path-supplied identifier.
func (h *ReviewHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusNotAcceptable,
			fmt.Sprintf("%s is not provided in params", name))
		return primitive.NilObjectID, false
	}

	id, fields := validatePathID(name, raw)
	if fields != nil {
		shared.RespondWithValidationErrors(w, r, fields)
		return primitive.NilObjectID, false
	}

	return id, true
}

// loadBook fetches the non-deleted book or writes the error response.
func (h *ReviewHandler) loadBook(w http.ResponseWriter, r *http.Request, bookID primitive.ObjectID) (*domain.Book, error) {
	book, err := h.bookStore.GetByID(r.Context(), bookID)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				fmt.Sprintf("no book exists with %s or the book has been deleted", bookID.Hex()))
		} else {
			h.logger.Error("failed to get book", "error", err, "book_id", bookID.Hex())
			respondWithMappedError(w, r, err)
		}
		return nil, err
	}
	return book, nil
}

// loadReview fetches the non-deleted review or writes the error response.
func (h *ReviewHandler) loadReview(w http.ResponseWriter, r *http.Request, reviewID primitive.ObjectID) (*domain.Review, error) {
	review, err := h.reviewStore.GetByID(r.Context(), reviewID)
	if err != nil {
		h.respondReviewLookupError(w, r, reviewID, err)
		return nil, err
	}
	return review, nil
}

func (h *ReviewHandler) respondReviewLookupError(w http.ResponseWriter, r *http.Request, reviewID primitive.ObjectID, err error) {
	if errors.Is(err, store.ErrReviewNotFound) {
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("no review exists with %s or the review has been deleted", reviewID.Hex()))
		return
	}
	h.logger.Error("review store operation failed", "error", err, "review_id", reviewID.Hex())
	respondWithMappedError(w, r, err)
}

// respondWithBookReviews recomputes the full set of non-deleted reviews
// for the book and returns it composed with the book record.
func (h *ReviewHandler) respondWithBookReviews(w http.ResponseWriter, r *http.Request, status int, message string, book *domain.Book) {
	reviews, err := h.reviewStore.ListByBook(r.Context(), book.ID)
	if err != nil {
		h.logger.Error("failed to list reviews", "error", err, "book_id", book.ID.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to fetch reviews")
		return
	}

	shared.RespondWithSuccess(w, r, status, message, domain.ComposeBookWithReviews(book, reviews))
}
