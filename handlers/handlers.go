// Package handlers exposes the HTTP API over gin.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joya-jewelry/server/services"
	"github.com/joya-jewelry/server/store"
)

// Fixed limit for the new-arrivals and trending listings.
const trendingLimit = 10

// Handlers carries the injected dependencies for every route.
type Handlers struct {
	Profiles *services.ProfileService
	Users    store.UserStore
	Products store.ProductStore
	Brands   store.BrandStore

	// Ping checks storage reachability for /health. Optional.
	Ping func(ctx context.Context) error

	Logger    *slog.Logger
	DBTimeout time.Duration
}

func New(profiles *services.ProfileService, users store.UserStore, products store.ProductStore, brands store.BrandStore, logger *slog.Logger, dbTimeout time.Duration) *Handlers {
	return &Handlers{
		Profiles:  profiles,
		Users:     users,
		Products:  products,
		Brands:    brands,
		Logger:    logger,
		DBTimeout: dbTimeout,
	}
}

// dbCtx derives a bounded context for one storage operation.
func (h *Handlers) dbCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := h.DBTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

// fail maps a storage error to a deterministic status code. Anything that is
// not a known error kind is logged server-side and reported as a bare 500;
// driver details never reach the client.
func (h *Handlers) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		h.Logger.Error(op, "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// Home godoc
// @Summary Liveness greeting
// @Produce plain
// @Success 200 {string} string "Greeting"
// @Router / [get]
func (h *Handlers) Home(c *gin.Context) {
	c.String(http.StatusOK, "Joya Jewelry server is running")
}

// Health godoc
// @Summary Health check including storage reachability
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handlers) Health(c *gin.Context) {
	if h.Ping != nil {
		ctx, cancel := h.dbCtx(c)
		defer cancel()
		if err := h.Ping(ctx); err != nil {
			h.Logger.Error("health ping failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "details": "database unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}
