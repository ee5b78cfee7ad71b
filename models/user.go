package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a profile document in the users collection.
// Email is the unique key; everything else is optional and last-write-wins.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Gender   string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address  string             `bson:"address,omitempty" json:"address,omitempty"`
}

// ProfilePayload is the body of PUT /users/:email. Pointer fields distinguish
// "absent" from "empty": a nil field is left untouched on the stored profile.
type ProfilePayload struct {
	Name     *string `json:"name"`
	PhotoURL *string `json:"photoURL"`
	Gender   *string `json:"gender"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// GoogleProfilePayload is the body of PUT /users/google/:email. The google
// login flow only ever supplies the display name.
type GoogleProfilePayload struct {
	Name *string `json:"name"`
}
