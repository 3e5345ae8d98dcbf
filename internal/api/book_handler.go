package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/praffulbansal123/Project2-Books-Management/internal/api/shared"
	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
	"github.com/praffulbansal123/Project2-Books-Management/internal/store"
)

// BookHandler handles book catalog requests.
type BookHandler struct {
	bookStore   store.BookStore
	userStore   store.UserStore
	reviewStore store.ReviewStore
	logger      *slog.Logger
}

// NewBookHandler creates a new BookHandler with the given dependencies.
func NewBookHandler(
	bookStore store.BookStore,
	userStore store.UserStore,
	reviewStore store.ReviewStore,
	logger *slog.Logger,
) *BookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookHandler{
		bookStore:   bookStore,
		userStore:   userStore,
		reviewStore: reviewStore,
		logger:      logger,
	}
}

// Create handles POST /createBook.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	if shared.HasQueryParams(r) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request: no data is required in query params")
		return
	}

	body := readRequiredBody(w, r)
	if body == nil {
		return
	}

	var req CreateBookRequest
	if !decodeRequestBody(w, r, body, &req) {
		return
	}

	req.Normalize()
	if fields := validateStruct(&req); fields != nil {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	releasedAt, err := parseReleaseDate(req.ReleasedAt)
	if err != nil {
		shared.RespondWithValidationErrors(w, r, map[string]string{"releasedAt": err.Error()})
		return
	}

	userID, _ := primitive.ObjectIDFromHex(req.UserID) // validated above

	// Referential existence before uniqueness checks.
	if _, err := h.userStore.GetByID(r.Context(), userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "user does not exist")
			return
		}
		respondWithMappedError(w, r, err)
		return
	}

	if !h.checkBookUnique(w, r, req.Title, req.ISBN) {
		return
	}

	book, err := domain.NewBook(req.Title, req.Excerpt, userID, req.ISBN, req.Category, req.Subcategory, releasedAt)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid book data: "+err.Error())
		return
	}

	if err := h.bookStore.Create(r.Context(), book); err != nil {
		h.logger.Error("failed to create book", "error", err, "title", req.Title)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to register book")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, "new book registered successfully", book)
}

// List handles GET /getBookList. Filters come from query parameters; an
// empty result after filtering is reported as not-found rather than an
// empty-list success.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	if !rejectBody(w, r, "no data is required in the body") {
		return
	}

	filter := store.BookFilter{}
	message := "book list is here"

	if shared.HasQueryParams(r) {
		parsed, fields := parseBookListFilter(r.URL.Query())
		if fields != nil {
			shared.RespondWithValidationErrors(w, r, fields)
			return
		}

		if parsed.UserID != "" {
			userID, _ := primitive.ObjectIDFromHex(parsed.UserID)
			if _, err := h.userStore.GetByID(r.Context(), userID); err != nil {
				if errors.Is(err, store.ErrUserNotFound) {
					shared.RespondWithError(w, r, http.StatusNotFound,
						fmt.Sprintf("user with %s does not exist", parsed.UserID))
					return
				}
				respondWithMappedError(w, r, err)
				return
			}
			filter.UserID = &userID
		}
		filter.Category = parsed.Category
		filter.Subcategory = parsed.Subcategory
		message = "filtered book list is here"
	}

	books, err := h.bookStore.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list books", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to fetch book list")
		return
	}

	if len(books) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "no books found")
		return
	}

	summaries := make([]BookSummary, 0, len(books))
	for _, b := range books {
		summaries = append(summaries, NewBookSummary(b))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BookListResponse{
		Status:     true,
		Message:    message,
		BooksCount: len(summaries),
		BookList:   summaries,
	})
}

// GetDetails handles GET /books/{bookId}, returning the book together
// with its non-deleted reviews as a response-only composition.
func (h *BookHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	if shared.HasQueryParams(r) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request: no data is required in query params")
		return
	}
	if !rejectBody(w, r, "invalid request: no data is required in request body") {
		return
	}

	bookID, ok := h.pathBookID(w, r)
	if !ok {
		return
	}

	book, err := h.bookStore.GetByID(r.Context(), bookID)
	if err != nil {
		h.respondBookLookupError(w, r, bookID, err)
		return
	}

	reviews, err := h.reviewStore.ListByBook(r.Context(), bookID)
	if err != nil {
		h.logger.Error("failed to list reviews", "error", err, "book_id", bookID.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to fetch book details")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "complete book details are here",
		domain.ComposeBookWithReviews(book, reviews))
}

// Update handles PUT /books/{bookId}. The update schema requires every
// updatable field to be resupplied.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	if shared.HasQueryParams(r) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request: no data is required in query params")
		return
	}

	bookID, ok := h.pathBookID(w, r)
	if !ok {
		return
	}

	body := readRequiredBody(w, r)
	if body == nil {
		return
	}

	var req UpdateBookRequest
	if !decodeRequestBody(w, r, body, &req) {
		return
	}

	req.Normalize()
	if fields := validateStruct(&req); fields != nil {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	releasedAt, err := parseReleaseDate(req.ReleasedAt)
	if err != nil {
		shared.RespondWithValidationErrors(w, r, map[string]string{"releasedAt": err.Error()})
		return
	}

	if !h.checkBookUnique(w, r, req.Title, req.ISBN) {
		return
	}

	updated, err := h.bookStore.Update(r.Context(), bookID, store.BookUpdate{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		ISBN:       req.ISBN,
		ReleasedAt: releasedAt,
	})
	if err != nil {
		h.respondBookLookupError(w, r, bookID, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "book details have been updated", updated)
}

// Delete handles DELETE /books/{bookId}. The record is soft-deleted:
// isDeleted is set and deletedAt stamped, never physically removed.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if shared.HasQueryParams(r) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request: no data is required in query params")
		return
	}
	if !rejectBody(w, r, "invalid request: no data is required in request body") {
		return
	}

	bookID, ok := h.pathBookID(w, r)
	if !ok {
		return
	}

	if err := h.bookStore.SoftDelete(r.Context(), bookID, time.Now().UTC()); err != nil {
		h.respondBookLookupError(w, r, bookID, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "the book has been marked deleted", nil)
}

// pathBookID extracts and validates the bookId path segment. A missing
// segment is not-acceptable; a malformed one is a validation failure,
// not a not-found.
func (h *BookHandler) pathBookID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, "bookId")
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusNotAcceptable, "book id is not provided in params")
		return primitive.NilObjectID, false
	}

	bookID, fields := validatePathID("bookId", raw)
	if fields != nil {
		shared.RespondWithValidationErrors(w, r, fields)
		return primitive.NilObjectID, false
	}

	return bookID, true
}

// checkBookUnique runs the title and ISBN uniqueness checks, each as an
// independent query scoped to non-deleted books. Returns false when a
// conflict response has already been written.
func (h *BookHandler) checkBookUnique(w http.ResponseWriter, r *http.Request, title, isbn string) bool {
	if _, err := h.bookStore.GetByTitle(r.Context(), title); err == nil {
		shared.RespondWithError(w, r, http.StatusConflict,
			fmt.Sprintf("book with title %s already exist", title))
		return false
	} else if !errors.Is(err, store.ErrBookNotFound) {
		respondWithMappedError(w, r, err)
		return false
	}

	if _, err := h.bookStore.GetByISBN(r.Context(), isbn); err == nil {
		shared.RespondWithError(w, r, http.StatusConflict,
			fmt.Sprintf("%s already exist", isbn))
		return false
	} else if !errors.Is(err, store.ErrBookNotFound) {
		respondWithMappedError(w, r, err)
		return false
	}

	return true
}

// respondBookLookupError translates a failed book lookup, keeping the
// missing-or-deleted wording for not-found outcomes.
func (h *BookHandler) respondBookLookupError(w http.ResponseWriter, r *http.Request, bookID primitive.ObjectID, err error) {
	if errors.Is(err, store.ErrBookNotFound) {
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("no book exists with %s or the book has been deleted", bookID.Hex()))
		return
	}
	h.logger.Error("book store operation failed", "error", err, "book_id", bookID.Hex())
	respondWithMappedError(w, r, err)
}
