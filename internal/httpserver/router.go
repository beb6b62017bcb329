package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"nutribites-storefront/internal/catalog"
)

// Deps carries the wired collaborators for the router.
type Deps struct {
	Catalog        catalog.Source
	Sessions       *SessionManager
	AllowedOrigins []string
}

// buildRouter wires the storefront routes.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowedOrigins) == 1 && deps.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.Catalog))
		api.GET("/products/:handle", productHandler(deps.Catalog))

		api.GET("/collections", listCollectionsHandler(deps.Catalog))
		api.GET("/collections/:handle", collectionHandler(deps.Catalog))
		api.GET("/collections/:handle/products", collectionProductsHandler(deps.Catalog))

		api.GET("/content/site", siteContentHandler)
		api.GET("/content/hero-banners", heroBannersHandler(deps.Catalog, logger))
		api.GET("/content/trust-badges", trustBadgesHandler)
		api.GET("/content/testimonials", testimonialsHandler)
		api.GET("/content/faq", faqHandler)
		api.GET("/content/moods", moodsHandler)

		api.GET("/cart", getCartHandler(deps.Sessions))
		api.POST("/cart/items", addCartItemHandler(deps.Sessions, deps.Catalog))
		api.PATCH("/cart/items", updateCartItemHandler(deps.Sessions))
		api.DELETE("/cart/items", removeCartItemHandler(deps.Sessions))
		api.DELETE("/cart", clearCartHandler(deps.Sessions))
		api.POST("/cart/open", drawerHandler(deps.Sessions, drawerOpen))
		api.POST("/cart/close", drawerHandler(deps.Sessions, drawerClose))
		api.POST("/cart/toggle", drawerHandler(deps.Sessions, drawerToggle))
	}

	return router
}
