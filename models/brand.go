package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand represents a brand document in the brands collection. Brands are
// read-only from this service's perspective; the collection is maintained
// out of band.
type Brand struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"` // sort key for GET /brands
	Logo        string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}
