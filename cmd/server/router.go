package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/praffulbansal123/Project2-Books-Management/internal/api"
	"github.com/praffulbansal123/Project2-Books-Management/internal/api/middleware"
	"github.com/praffulbansal123/Project2-Books-Management/internal/api/shared"
)

// newRouter builds the route table. Registration and login are public;
// book routes require a bearer token plus an ownership check on the
// mutating ones. Review routes carry no authentication.
func newRouter(
	userHandler *api.UserHandler,
	bookHandler *api.BookHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Trace)
	r.Use(middleware.NewRateLimiter(10, 20).Limit)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithSuccess(w, req, http.StatusOK, "ok", nil)
	})

	r.Post("/createUser", userHandler.Register)
	r.Post("/userLogin", userHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.With(authMiddleware.RequireSelf).Post("/createBook", bookHandler.Create)
		r.Get("/getBookList", bookHandler.List)
		r.Get("/books/{bookId}", bookHandler.GetDetails)

		r.With(authMiddleware.RequireBookOwner).Put("/books/{bookId}", bookHandler.Update)
		r.With(authMiddleware.RequireBookOwner).Delete("/books/{bookId}", bookHandler.Delete)
	})

	r.Post("/books/{bookId}/review", reviewHandler.Create)
	r.Put("/books/{bookId}/review/{reviewId}", reviewHandler.Update)
	r.Delete("/books/{bookId}/review/{reviewId}", reviewHandler.Delete)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithError(w, req, http.StatusNotFound, "this route does not exist")
	})

	return r
}
