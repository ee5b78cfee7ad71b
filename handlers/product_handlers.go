package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joya-jewelry/server/models"
)

// AddProduct godoc
// @Summary Insert a product
// @Description Inserts the posted product document. No field is required; dateAdded is filled server-side when the client omits it.
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.Product true "Product document"
// @Success 201 {object} map[string]string "insertedId of the new product"
// @Failure 400 {object} map[string]string "Malformed JSON body"
// @Failure 500 {object} map[string]string
// @Router /add-product [post]
func (h *Handlers) AddProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return
	}

	if product.DateAdded.IsZero() {
		product.DateAdded = time.Now().UTC()
	}

	ctx, cancel := h.dbCtx(c)
	defer cancel()

	id, err := h.Products.Insert(ctx, product)
	if err != nil {
		h.fail(c, "insert product", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// ListProducts godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]string
// @Router /products [get]
func (h *Handlers) ListProducts(c *gin.Context) {
	ctx, cancel := h.dbCtx(c)
	defer cancel()

	products, err := h.Products.List(ctx)
	if err != nil {
		h.fail(c, "list products", err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Fetch one product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ObjectID hex"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]string "Malformed identifier"
// @Failure 404 {object} map[string]string "No such product"
// @Failure 500 {object} map[string]string
// @Router /products/{id} [get]
func (h *Handlers) GetProduct(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := h.dbCtx(c)
	defer cancel()

	product, err := h.Products.ByID(ctx, id)
	if err != nil {
		h.fail(c, "get product", err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// ProductsByEmail godoc
// @Summary List products added by a user
// @Description Exact match on the addedBy field.
// @Tags products
// @Produce json
// @Param email path string true "Owner email"
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]string
// @Router /products/email/{email} [get]
func (h *Handlers) ProductsByEmail(c *gin.Context) {
	email := c.Param("email")

	ctx, cancel := h.dbCtx(c)
	defer cancel()

	products, err := h.Products.ByAddedBy(ctx, email)
	if err != nil {
		h.fail(c, "list products by email", err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// NewArrivals godoc
// @Summary Top 10 products by dateAdded descending
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]string
// @Router /new-arrivals [get]
func (h *Handlers) NewArrivals(c *gin.Context) {
	ctx, cancel := h.dbCtx(c)
	defer cancel()

	products, err := h.Products.NewArrivals(ctx, trendingLimit)
	if err != nil {
		h.fail(c, "list new arrivals", err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// TrendingProducts godoc
// @Summary Top 10 products by views descending
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]string
// @Router /trending-products [get]
func (h *Handlers) TrendingProducts(c *gin.Context) {
	ctx, cancel := h.dbCtx(c)
	defer cancel()

	products, err := h.Products.Trending(ctx, trendingLimit)
	if err != nil {
		h.fail(c, "list trending products", err)
		return
	}

	c.JSON(http.StatusOK, products)
}
