// Package database owns the MongoDB connection lifecycle.
package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens a client for the given URI and verifies it with a ping.
// The caller owns the returned client and is responsible for Disconnect.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("creating mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the unique index on users.email. The no-duplicate
// profile invariant depends on this index: the profile upsert is a single
// atomic update-with-upsert, and the unique constraint is what prevents two
// concurrent first-time registrations from creating two documents. Failure
// here is a startup error, not a warning.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("users").Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("creating unique index on users.email: %w", err)
	}
	return nil
}

// Disconnect closes the client, bounded by ctx.
func Disconnect(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting mongo: %w", err)
	}
	return nil
}
