package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joya-jewelry/server/models"
	"github.com/joya-jewelry/server/store"
)

// UpsertProfile godoc
// @Summary Create or update a user profile (password registration path)
// @Description Upserts the profile keyed by the email path parameter. Only fields present in the body are written; absent fields keep their stored values.
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email (exact match, case-sensitive)"
// @Param profile body models.ProfilePayload true "Partial profile fields"
// @Success 200 {object} store.UpsertResult "Existing profile updated"
// @Success 201 {object} store.UpsertResult "New profile created"
// @Failure 400 {object} map[string]string "Malformed JSON body"
// @Failure 500 {object} map[string]string "Storage error"
// @Router /users/{email} [put]
func (h *Handlers) UpsertProfile(c *gin.Context) {
	email := c.Param("email")

	var payload models.ProfilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return
	}

	ctx, cancel := h.dbCtx(c)
	defer cancel()

	result, err := h.Profiles.Upsert(ctx, email, payload)
	if err != nil {
		h.fail(c, "upsert profile", err)
		return
	}

	c.JSON(upsertStatus(result), result)
}

// UpsertGoogleProfile godoc
// @Summary Create or update a user profile (google login path)
// @Description Same upsert contract as the password path, but the google flow only ever carries the display name.
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param profile body models.GoogleProfilePayload true "Partial profile fields"
// @Success 200 {object} store.UpsertResult
// @Success 201 {object} store.UpsertResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/google/{email} [put]
func (h *Handlers) UpsertGoogleProfile(c *gin.Context) {
	email := c.Param("email")

	var payload models.GoogleProfilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return
	}

	ctx, cancel := h.dbCtx(c)
	defer cancel()

	result, err := h.Profiles.UpsertGoogle(ctx, email, payload)
	if err != nil {
		h.fail(c, "upsert google profile", err)
		return
	}

	c.JSON(upsertStatus(result), result)
}

func upsertStatus(r store.UpsertResult) int {
	if r.Created() {
		return http.StatusCreated
	}
	return http.StatusOK
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} map[string]string
// @Router /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	ctx, cancel := h.dbCtx(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		h.fail(c, "list users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// FindUsersByEmail godoc
// @Summary Find users matching an email
// @Description Returns a list even though email is unique, as a guard against duplicates predating the unique index. An empty list means no match.
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {array} models.User
// @Failure 500 {object} map[string]string
// @Router /users/{email} [get]
func (h *Handlers) FindUsersByEmail(c *gin.Context) {
	email := c.Param("email")

	ctx, cancel := h.dbCtx(c)
	defer cancel()

	users, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		h.fail(c, "find users by email", err)
		return
	}

	c.JSON(http.StatusOK, users)
}
