package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/joya-jewelry/server/models"
	"github.com/joya-jewelry/server/store"
)

type captureUserStore struct {
	email  string
	fields bson.M
}

func (c *captureUserStore) UpsertProfile(ctx context.Context, email string, fields bson.M) (store.UpsertResult, error) {
	c.email = email
	c.fields = fields
	return store.UpsertResult{MatchedCount: 1}, nil
}

func (c *captureUserStore) List(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func (c *captureUserStore) FindByEmail(ctx context.Context, email string) ([]models.User, error) {
	return nil, nil
}

func strptr(s string) *string { return &s }

func TestUpsertOnlyWritesPresentFields(t *testing.T) {
	cs := &captureUserStore{}
	svc := NewProfileService(cs)

	_, err := svc.Upsert(context.Background(), "a@x.com", models.ProfilePayload{
		Name:  strptr("Ann"),
		Phone: strptr("555"),
	})
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", cs.email)
	assert.Equal(t, bson.M{"name": "Ann", "phone": "555"}, cs.fields)
}

func TestUpsertEmptyStringIsStillWritten(t *testing.T) {
	cs := &captureUserStore{}
	svc := NewProfileService(cs)

	_, err := svc.Upsert(context.Background(), "a@x.com", models.ProfilePayload{
		Address: strptr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"address": ""}, cs.fields)
}

func TestUpsertGoogleCarriesOnlyName(t *testing.T) {
	cs := &captureUserStore{}
	svc := NewProfileService(cs)

	_, err := svc.UpsertGoogle(context.Background(), "g@x.com", models.GoogleProfilePayload{
		Name: strptr("Greta"),
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"name": "Greta"}, cs.fields)

	_, err = svc.UpsertGoogle(context.Background(), "g@x.com", models.GoogleProfilePayload{})
	require.NoError(t, err)
	assert.Empty(t, cs.fields)
}
