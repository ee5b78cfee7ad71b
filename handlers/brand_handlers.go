package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListBrands godoc
// @Summary List all brands sorted by name ascending
// @Tags brands
// @Produce json
// @Success 200 {array} models.Brand
// @Failure 500 {object} map[string]string
// @Router /brands [get]
func (h *Handlers) ListBrands(c *gin.Context) {
	ctx, cancel := h.dbCtx(c)
	defer cancel()

	brands, err := h.Brands.List(ctx)
	if err != nil {
		h.fail(c, "list brands", err)
		return
	}

	c.JSON(http.StatusOK, brands)
}
