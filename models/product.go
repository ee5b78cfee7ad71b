package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a product document in the products collection.
// AddedBy holds the owner's email (not enforced against the users
// collection), DateAdded drives the new-arrivals sort and Views the
// trending sort. Products are insert-only.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Brand       string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Rating      float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	AddedBy     string             `bson:"addedBy,omitempty" json:"addedBy,omitempty"`
	DateAdded   time.Time          `bson:"dateAdded" json:"dateAdded"`
	Views       int64              `bson:"views" json:"views"`
}
