package httpserver

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins string) (*gin.Engine, error) {
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(corsMiddleware(allowedOrigins))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api/v1")

	// Public storefront reads and auth.
	api.POST("/signup", signupHandler(deps.CustomerSvc))
	api.POST("/login", loginHandler(deps.CustomerSvc))
	api.GET("/products", listProductsHandler(deps.CatalogSvc, logger))
	api.GET("/products/:slug", getProductHandler(deps.CatalogSvc, logger))
	api.GET("/products/:slug/reviews", listReviewsHandler(deps.ReviewSvc, logger))
	api.GET("/categories", listCategoriesHandler(deps.CatalogSvc, logger))
	api.GET("/categories/:slug/products", listCategoryProductsHandler(deps.CatalogSvc, logger))

	// Authenticated customer surface.
	auth := api.Group("")
	auth.Use(authMiddleware(deps.CustomerSvc))
	{
		auth.GET("/me", meHandler())
		auth.POST("/logout", logoutHandler(deps.CustomerSvc))
		auth.PUT("/me", updateProfileHandler(deps.CustomerSvc, logger))

		auth.GET("/cart", getCartHandler(deps.CartSvc, logger))
		auth.POST("/cart/lines", addCartLineHandler(deps.CartSvc, logger))
		auth.PUT("/cart/lines/:lineID", changeCartLineHandler(deps.CartSvc, logger))
		auth.DELETE("/cart/lines/:lineID", removeCartLineHandler(deps.CartSvc, logger))
		auth.DELETE("/cart", clearCartHandler(deps.CartSvc, logger))

		auth.POST("/promotions/apply", applyPromotionHandler(deps.CheckoutSvc, logger))
		auth.POST("/orders", submitOrderHandler(deps.CheckoutSvc, logger))
		auth.GET("/orders", listOrdersHandler(deps.OrderSvc, logger))
		auth.GET("/orders/:id", getOrderHandler(deps.OrderSvc, logger))

		auth.GET("/favorites", listFavoritesHandler(deps.FavoriteSvc, logger))
		auth.POST("/favorites", addFavoriteHandler(deps.FavoriteSvc, logger))
		auth.DELETE("/favorites/:productID", removeFavoriteHandler(deps.FavoriteSvc, logger))

		auth.POST("/products/:slug/reviews", createReviewHandler(deps.ReviewSvc, logger))
	}

	// Back office.
	admin := api.Group("/admin")
	admin.Use(authMiddleware(deps.CustomerSvc), adminMiddleware())
	{
		admin.POST("/products", createProductHandler(deps.CatalogSvc, logger))
		admin.PUT("/products/:id", updateProductHandler(deps.CatalogSvc, logger))
		admin.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc, logger))

		admin.POST("/categories", createCategoryHandler(deps.CatalogSvc, logger))
		admin.PUT("/categories/:id", updateCategoryHandler(deps.CatalogSvc, logger))
		admin.DELETE("/categories/:id", deleteCategoryHandler(deps.CatalogSvc, logger))

		admin.GET("/promotions", listPromotionsHandler(deps.PromotionSvc, logger))
		admin.POST("/promotions", createPromotionHandler(deps.PromotionSvc, logger))
		admin.PUT("/promotions/:id", updatePromotionHandler(deps.PromotionSvc, logger))
		admin.DELETE("/promotions/:id", deletePromotionHandler(deps.PromotionSvc, logger))

		admin.GET("/orders", adminListOrdersHandler(deps.OrderSvc, logger))
		admin.GET("/orders/:id", adminGetOrderHandler(deps.OrderSvc, logger))
		admin.PUT("/orders/:id/status", setOrderStatusHandler(deps.OrderSvc, logger))
	}

	return router, nil
}

func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if allowedOrigins == "" || allowedOrigins == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = strings.Split(allowedOrigins, ",")
	}
	return cors.New(cfg)
}
