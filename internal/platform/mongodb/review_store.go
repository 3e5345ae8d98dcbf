package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
	"github.com/praffulbansal123/Project2-Books-Management/internal/store"
)

// MongoReviewStore implements the store.ReviewStore interface using a
// MongoDB collection as the storage backend.
type MongoReviewStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoReviewStore creates a new MongoDB implementation of the
// ReviewStore interface. If logger is nil, the default logger is used.
func NewMongoReviewStore(db *mongo.Database, logger *slog.Logger) *MongoReviewStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MongoReviewStore{
		coll:   db.Collection(reviewsCollection),
		logger: logger.With(slog.String("component", "review_store")),
	}
}

// Ensure MongoReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*MongoReviewStore)(nil)

// Create implements store.ReviewStore.Create
func (s *MongoReviewStore) Create(ctx context.Context, review *domain.Review) error {
	if err := review.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.coll.InsertOne(ctx, review)
	if err != nil {
		s.logger.Error("failed to insert review", "error", err)
		return store.NewStoreError("review", "create", "insert failed", err)
	}

	return nil
}

// GetByID implements store.ReviewStore.GetByID
func (s *MongoReviewStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Review, error) {
	filter := notDeletedReview()
	filter["_id"] = id

	var review domain.Review
	err := s.coll.FindOne(ctx, filter).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrReviewNotFound
		}
		s.logger.Error("failed to find review", "error", err)
		return nil, store.NewStoreError("review", "get", "query failed", err)
	}
	return &review, nil
}

// ListByBook implements store.ReviewStore.ListByBook
func (s *MongoReviewStore) ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]domain.Review, error) {
	filter := notDeletedReview()
	filter["bookId"] = bookID

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list reviews", "error", err)
		return nil, store.NewStoreError("review", "list", "query failed", err)
	}

	var reviews []domain.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		s.logger.Error("failed to decode review list", "error", err)
		return nil, store.NewStoreError("review", "list", "decode failed", err)
	}

	return reviews, nil
}

// Update implements store.ReviewStore.Update
func (s *MongoReviewStore) Update(ctx context.Context, id primitive.ObjectID, update store.ReviewUpdate) (*domain.Review, error) {
	filter := notDeletedReview()
	filter["_id"] = id

	// Unsupplied optional fields stay out of the $set document so their
	// stored values survive the update.
	fields := bson.M{"rating": update.Rating}
	if update.ReviewedBy != nil {
		fields["reviewedBy"] = *update.ReviewedBy
	}
	if update.Review != nil {
		fields["review"] = *update.Review
	}
	set := bson.M{"$set": fields}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var review domain.Review
	err := s.coll.FindOneAndUpdate(ctx, filter, set, opts).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrReviewNotFound
		}
		s.logger.Error("failed to update review", "error", err)
		return nil, store.NewStoreError("review", "update", "query failed", err)
	}
	return &review, nil
}

// SoftDelete implements store.ReviewStore.SoftDelete
func (s *MongoReviewStore) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	filter := notDeletedReview()
	filter["_id"] = id

	res, err := s.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"isDeleted": true}})
	if err != nil {
		s.logger.Error("failed to soft-delete review", "error", err)
		return store.NewStoreError("review", "delete", "update failed", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrReviewNotFound
	}

	return nil
}
