package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the full HTTP surface. Cross-origin requests are allowed
// from any origin; the storefront and admin UI are served from domains this
// backend does not know about.
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), h.RequestLogger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"}
	router.Use(cors.New(corsConfig))

	router.GET("/", h.Home)
	router.GET("/health", h.Health)

	router.PUT("/users/:email", h.UpsertProfile)
	router.PUT("/users/google/:email", h.UpsertGoogleProfile)
	router.GET("/users", h.ListUsers)
	router.GET("/users/:email", h.FindUsersByEmail)

	router.POST("/add-product", h.AddProduct)
	router.GET("/products", h.ListProducts)
	router.GET("/products/:id", h.GetProduct)
	router.GET("/products/email/:email", h.ProductsByEmail)
	router.GET("/new-arrivals", h.NewArrivals)
	router.GET("/trending-products", h.TrendingProducts)

	router.GET("/brands", h.ListBrands)

	return router
}
