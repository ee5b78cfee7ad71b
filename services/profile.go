// Package services holds the domain services sitting between handlers and
// storage.
package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/joya-jewelry/server/models"
	"github.com/joya-jewelry/server/store"
)

// ProfileService implements the profile upsert contract: given an email and
// a partial set of profile fields, ensure exactly one user document exists
// for that email with the fields merged in. The caller never needs to know
// whether the document already existed.
//
// The merge is field-presence based: only fields present in the request body
// are written, everything else on the stored document is left untouched.
// The write itself is a single atomic upsert in the storage engine; the
// unique index on email (created at startup) closes the race between two
// concurrent first-time registrations.
type ProfileService struct {
	users store.UserStore
}

func NewProfileService(users store.UserStore) *ProfileService {
	return &ProfileService{users: users}
}

// Upsert handles the password-registration path. Emails match exactly, with
// no normalization, and are immutable once set.
func (s *ProfileService) Upsert(ctx context.Context, email string, p models.ProfilePayload) (store.UpsertResult, error) {
	fields := bson.M{}
	setIfPresent(fields, "name", p.Name)
	setIfPresent(fields, "photoURL", p.PhotoURL)
	setIfPresent(fields, "gender", p.Gender)
	setIfPresent(fields, "phone", p.Phone)
	setIfPresent(fields, "address", p.Address)
	return s.users.UpsertProfile(ctx, email, fields)
}

// UpsertGoogle handles the google-login path, which carries a narrower
// field set: just the display name, when the identity provider supplies one.
func (s *ProfileService) UpsertGoogle(ctx context.Context, email string, p models.GoogleProfilePayload) (store.UpsertResult, error) {
	fields := bson.M{}
	setIfPresent(fields, "name", p.Name)
	return s.users.UpsertProfile(ctx, email, fields)
}

func setIfPresent(fields bson.M, key string, value *string) {
	if value != nil {
		fields[key] = *value
	}
}
