package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joya-jewelry/server/models"
)

// MongoUserStore implements UserStore on the users collection.
type MongoUserStore struct {
	coll *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection("users")}
}

func (s *MongoUserStore) UpsertProfile(ctx context.Context, email string, fields bson.M) (UpsertResult, error) {
	set := bson.M{"email": email}
	for k, v := range fields {
		set[k] = v
	}

	filter := bson.M{"email": email}
	opts := options.Update().SetUpsert(true)

	res, err := s.coll.UpdateOne(ctx, filter, bson.M{"$set": set}, opts)
	if err != nil {
		return UpsertResult{}, fmt.Errorf("upserting profile for %q: %w", email, err)
	}

	out := UpsertResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = oid.Hex()
	}
	return out, nil
}

func (s *MongoUserStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return users, nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("finding users by email %q: %w", email, err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return users, nil
}

// MongoProductStore implements ProductStore on the products collection.
type MongoProductStore struct {
	coll *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{coll: db.Collection("products")}
}

func (s *MongoProductStore) Insert(ctx context.Context, p models.Product) (string, error) {
	res, err := s.coll.InsertOne(ctx, p)
	if err != nil {
		return "", fmt.Errorf("inserting product: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("inserting product: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *MongoProductStore) List(ctx context.Context) ([]models.Product, error) {
	return s.find(ctx, bson.M{}, nil)
}

func (s *MongoProductStore) ByID(ctx context.Context, id string) (models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var p models.Product
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Product{}, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return models.Product{}, fmt.Errorf("finding product %s: %w", id, err)
	}
	return p, nil
}

func (s *MongoProductStore) ByAddedBy(ctx context.Context, email string) ([]models.Product, error) {
	return s.find(ctx, bson.M{"addedBy": email}, nil)
}

func (s *MongoProductStore) NewArrivals(ctx context.Context, limit int64) ([]models.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "dateAdded", Value: -1}}).
		SetLimit(limit)
	return s.find(ctx, bson.M{}, opts)
}

func (s *MongoProductStore) Trending(ctx context.Context, limit int64) ([]models.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "views", Value: -1}}).
		SetLimit(limit)
	return s.find(ctx, bson.M{}, opts)
}

func (s *MongoProductStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("finding products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}

// MongoBrandStore implements BrandStore on the brands collection.
type MongoBrandStore struct {
	coll *mongo.Collection
}

func NewMongoBrandStore(db *mongo.Database) *MongoBrandStore {
	return &MongoBrandStore{coll: db.Collection("brands")}
}

func (s *MongoBrandStore) List(ctx context.Context) ([]models.Brand, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing brands: %w", err)
	}
	defer cursor.Close(ctx)

	brands := []models.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, fmt.Errorf("decoding brands: %w", err)
	}
	return brands, nil
}
