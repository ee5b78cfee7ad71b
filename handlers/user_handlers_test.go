package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joya-jewelry/server/models"
	"github.com/joya-jewelry/server/store"
)

func TestUpsertProfileCreateThenUpdate(t *testing.T) {
	env := setup(t)

	rr := env.do(http.MethodPut, "/users/a@x.com", `{"name":"Ann"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created store.UpsertResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.UpsertedCount)
	assert.NotEmpty(t, created.UpsertedID)

	rr = env.do(http.MethodPut, "/users/a@x.com", `{"phone":"555"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var updated store.UpsertResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, int64(1), updated.MatchedCount)
	assert.Empty(t, updated.UpsertedID)
}

func TestUpsertProfileMergesFields(t *testing.T) {
	env := setup(t)

	env.do(http.MethodPut, "/users/a@x.com", `{"name":"Ann"}`)
	env.do(http.MethodPut, "/users/a@x.com", `{"phone":"555"}`)

	rr := env.do(http.MethodGet, "/users/a@x.com", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Ann", users[0].Name)
	assert.Equal(t, "555", users[0].Phone)
}

func TestUpsertProfileRejectsBadJSON(t *testing.T) {
	env := setup(t)

	rr := env.do(http.MethodPut, "/users/a@x.com", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpsertGoogleProfile(t *testing.T) {
	env := setup(t)

	rr := env.do(http.MethodPut, "/users/google/g@x.com", `{"name":"Greta"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	// A repeat login must not create a second profile.
	rr = env.do(http.MethodPut, "/users/google/g@x.com", `{}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(http.MethodGet, "/users/g@x.com", "")
	var users []models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Greta", users[0].Name)
}

func TestListUsers(t *testing.T) {
	env := setup(t)

	env.do(http.MethodPut, "/users/a@x.com", `{"name":"Ann"}`)
	env.do(http.MethodPut, "/users/b@x.com", `{"name":"Bob"}`)

	rr := env.do(http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestFindUsersByEmailNoMatchReturnsEmptyList(t *testing.T) {
	env := setup(t)

	rr := env.do(http.MethodGet, "/users/nobody@x.com", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}
