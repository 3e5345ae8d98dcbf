package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/praffulbansal123/Project2-Books-Management/internal/api"
	"github.com/praffulbansal123/Project2-Books-Management/internal/api/middleware"
	"github.com/praffulbansal123/Project2-Books-Management/internal/config"
	"github.com/praffulbansal123/Project2-Books-Management/internal/platform/mongodb"
	"github.com/praffulbansal123/Project2-Books-Management/internal/service/auth"
)

// application wires every layer together and owns the HTTP server and
// database client lifecycles.
type application struct {
	cfg    *config.Config
	logger *slog.Logger
	client *mongo.Client
	server *http.Server
}

// newApplication connects to the database, ensures indexes, builds the
// service and handler graph and prepares the HTTP server.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	client, err := mongodb.Connect(ctx, cfg.Database.URI)
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.Database.Name)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return nil, err
	}

	userStore := mongodb.NewMongoUserStore(db, log)
	bookStore := mongodb.NewMongoBookStore(db, log)
	reviewStore := mongodb.NewMongoReviewStore(db, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create jwt service: %w", err)
	}

	userHandler := api.NewUserHandler(userStore, jwtService,
		auth.NewBcryptHasher(cfg.Auth.BcryptCost), auth.NewBcryptVerifier(), log)
	bookHandler := api.NewBookHandler(bookStore, userStore, reviewStore, log)
	reviewHandler := api.NewReviewHandler(reviewStore, bookStore, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, bookStore)

	router := newRouter(userHandler, bookHandler, reviewHandler, authMiddleware)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &application{
		cfg:    cfg,
		logger: log,
		client: client,
		server: srv,
	}, nil
}

// Run serves until the context is cancelled, then shuts down gracefully
// within the configured timeout and disconnects from the database.
func (a *application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutdown signal received")

	timeout := time.Duration(a.cfg.Server.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("graceful shutdown failed", "error", err)
	}

	if err := a.client.Disconnect(shutdownCtx); err != nil {
		a.logger.Error("failed to disconnect from database", "error", err)
	}

	a.logger.Info("server stopped")
	return nil
}
