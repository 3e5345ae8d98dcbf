package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the store implementations.
const (
	usersCollection   = "users"
	booksCollection   = "books"
	reviewsCollection = "reviews"
)

// connectTimeout bounds the initial connection and ping.
const connectTimeout = 10 * time.Second

// Connect establishes a client connection to MongoDB and verifies it with
// a ping against the primary. The caller owns the returned client and is
// responsible for disconnecting it on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the unique indexes the data model relies on:
// user phone and email are globally unique with no soft-delete exemption.
// Index creation is idempotent, so this is safe to run on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(usersCollection)

	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	books := db.Collection(booksCollection)

	// Non-unique helper index for the common list filter and title sort.
	_, err = books.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create book indexes: %w", err)
	}

	return nil
}

// notDeletedBook is the soft-delete scope every book query carries.
func notDeletedBook() bson.M {
	return bson.M{"isDeleted": false, "deletedAt": nil}
}

// notDeletedReview is the soft-delete scope for reviews, which carry no
// deletion timestamp.
func notDeletedReview() bson.M {
	return bson.M{"isDeleted": false}
}
