package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
	"github.com/praffulbansal123/Project2-Books-Management/internal/store"
)

// MongoBookStore implements the store.BookStore interface using a MongoDB
// collection as the storage backend.
type MongoBookStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoBookStore creates a new MongoDB implementation of the BookStore
// interface. If logger is nil, the default logger is used.
func NewMongoBookStore(db *mongo.Database, logger *slog.Logger) *MongoBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MongoBookStore{
		coll:   db.Collection(booksCollection),
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure MongoBookStore implements store.BookStore interface
var _ store.BookStore = (*MongoBookStore)(nil)

// Create implements store.BookStore.Create
func (s *MongoBookStore) Create(ctx context.Context, book *domain.Book) error {
	if err := book.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.coll.InsertOne(ctx, book)
	if err != nil {
		s.logger.Error("failed to insert book", "error", err)
		return store.NewStoreError("book", "create", "insert failed", err)
	}

	return nil
}

// GetByID implements store.BookStore.GetByID
func (s *MongoBookStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Book, error) {
	filter := notDeletedBook()
	filter["_id"] = id
	return s.findOne(ctx, filter)
}

// GetByTitle implements store.BookStore.GetByTitle
func (s *MongoBookStore) GetByTitle(ctx context.Context, title string) (*domain.Book, error) {
	filter := notDeletedBook()
	filter["title"] = title
	return s.findOne(ctx, filter)
}

// GetByISBN implements store.BookStore.GetByISBN
func (s *MongoBookStore) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	filter := notDeletedBook()
	filter["ISBN"] = isbn
	return s.findOne(ctx, filter)
}

// List implements store.BookStore.List
func (s *MongoBookStore) List(ctx context.Context, f store.BookFilter) ([]domain.Book, error) {
	filter := notDeletedBook()
	if f.UserID != nil {
		filter["userId"] = *f.UserID
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Subcategory != "" {
		// Matching a scalar against an array field selects books whose
		// subcategory set contains the value.
		filter["subcategory"] = f.Subcategory
	}

	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		s.logger.Error("failed to list books", "error", err)
		return nil, store.NewStoreError("book", "list", "query failed", err)
	}

	var books []domain.Book
	if err := cursor.All(ctx, &books); err != nil {
		s.logger.Error("failed to decode book list", "error", err)
		return nil, store.NewStoreError("book", "list", "decode failed", err)
	}

	return books, nil
}

// Update implements store.BookStore.Update
func (s *MongoBookStore) Update(ctx context.Context, id primitive.ObjectID, update store.BookUpdate) (*domain.Book, error) {
	filter := notDeletedBook()
	filter["_id"] = id

	set := bson.M{"$set": bson.M{
		"title":      update.Title,
		"excerpt":    update.Excerpt,
		"ISBN":       update.ISBN,
		"releasedAt": update.ReleasedAt,
		"updatedAt":  time.Now().UTC(),
	}}

	return s.findOneAndUpdate(ctx, filter, set)
}

// SoftDelete implements store.BookStore.SoftDelete
func (s *MongoBookStore) SoftDelete(ctx context.Context, id primitive.ObjectID, deletedAt time.Time) error {
	filter := notDeletedBook()
	filter["_id"] = id

	set := bson.M{"$set": bson.M{
		"isDeleted": true,
		"deletedAt": deletedAt,
		"updatedAt": deletedAt,
	}}

	_, err := s.findOneAndUpdate(ctx, filter, set)
	return err
}

// IncrementReviews implements store.BookStore.IncrementReviews
func (s *MongoBookStore) IncrementReviews(ctx context.Context, id primitive.ObjectID, delta int) (*domain.Book, error) {
	filter := notDeletedBook()
	filter["_id"] = id

	return s.findOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"reviews": delta}})
}

func (s *MongoBookStore) findOne(ctx context.Context, filter bson.M) (*domain.Book, error) {
	var book domain.Book
	err := s.coll.FindOne(ctx, filter).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrBookNotFound
		}
		s.logger.Error("failed to find book", "error", err)
		return nil, store.NewStoreError("book", "get", "query failed", err)
	}
	return &book, nil
}

func (s *MongoBookStore) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*domain.Book, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var book domain.Book
	err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrBookNotFound
		}
		s.logger.Error("failed to update book", "error", err)
		return nil, store.NewStoreError("book", "update", "query failed", err)
	}
	return &book, nil
}
