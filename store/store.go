// Package store holds the storage clients for users, products and brands.
// Handlers receive these as injected dependencies; the Mongo implementations
// live in mongo.go and an in-memory implementation in memory.go.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/joya-jewelry/server/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("store: not found")

// ErrInvalidID is returned when a document identifier cannot be parsed.
var ErrInvalidID = errors.New("store: invalid id")

// UpsertResult mirrors the driver's update result for a profile upsert.
// UpsertedID is the hex identifier of a newly created document, empty when
// an existing one was matched.
type UpsertResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// Created reports whether the upsert inserted a new document.
func (r UpsertResult) Created() bool {
	return r.UpsertedCount > 0
}

// UserStore is the storage client for profile documents.
type UserStore interface {
	// UpsertProfile sets email plus the given fields on the document whose
	// email matches, creating it if absent. The match-and-write is a single
	// atomic storage operation; together with the unique index on email it
	// guarantees at most one profile per email.
	UpsertProfile(ctx context.Context, email string, fields bson.M) (UpsertResult, error)
	List(ctx context.Context) ([]models.User, error)
	// FindByEmail returns every document matching the email. Email is unique
	// so the slice has at most one element, but the list shape is kept as a
	// guard against duplicates predating the unique index.
	FindByEmail(ctx context.Context, email string) ([]models.User, error)
}

// ProductStore is the storage client for product documents.
type ProductStore interface {
	Insert(ctx context.Context, p models.Product) (string, error)
	List(ctx context.Context) ([]models.Product, error)
	ByID(ctx context.Context, id string) (models.Product, error)
	ByAddedBy(ctx context.Context, email string) ([]models.Product, error)
	// NewArrivals returns the most recently added products, newest first.
	NewArrivals(ctx context.Context, limit int64) ([]models.Product, error)
	// Trending returns the most viewed products, highest views first.
	Trending(ctx context.Context, limit int64) ([]models.Product, error)
}

// BrandStore is the storage client for brand documents.
type BrandStore interface {
	// List returns all brands sorted by name ascending.
	List(ctx context.Context) ([]models.Brand, error)
}
