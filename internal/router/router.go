// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cavea-app/cavea-backend/internal/config"
	"github.com/cavea-app/cavea-backend/internal/handlers"
	"github.com/cavea-app/cavea-backend/internal/middleware"
	"github.com/cavea-app/cavea-backend/internal/mockdata"
	"github.com/cavea-app/cavea-backend/internal/services"
)

func Initialize(stores *mockdata.Stores, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(stores.Bottles)
	searchService := services.NewSearchService(stores.Bottles, stores.Users)
	argusService := services.NewArgusService(stores.Bottles, stores.Sales)
	userService := services.NewUserService(stores.Users)
	messageService := services.NewMessageService(stores.Conversations, stores.Users)
	collectionService := services.NewCollectionService(stores.Collections, stores.Bottles)

	// Initialize handlers
	bottleHandler := handlers.NewBottleHandler(catalogService, argusService)
	argusHandler := handlers.NewArgusHandler(argusService, cfg.Argus)
	searchHandler := handlers.NewSearchHandler(searchService)
	userHandler := handlers.NewUserHandler(userService)
	messageHandler := handlers.NewMessageHandler(messageService)
	collectionHandler := handlers.NewCollectionHandler(collectionService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.Identity())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Catalog and Argus routes
		bottles := v1.Group("/bottles")
		{
			bottles.GET("", bottleHandler.GetBottles)
			bottles.GET("/categories", bottleHandler.GetCategories)
			bottles.GET("/trending", argusHandler.GetTrending)
			bottles.GET("/:id", bottleHandler.GetBottle)
			bottles.GET("/:id/detail", bottleHandler.GetBottleDetail)
			bottles.GET("/:id/price-series", argusHandler.GetPriceSeries)
			bottles.GET("/:id/summary", argusHandler.GetSummary)
			bottles.GET("/:id/comparables", argusHandler.GetComparables)
		}

		// Search routes
		search := v1.Group("/search")
		{
			search.GET("/bottles", searchHandler.SearchBottles)
			search.GET("/users", searchHandler.SearchUsers)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/public", userHandler.GetPublicProfile)
			users.PUT("/profile", userHandler.UpdateProfile)
		}

		// Messaging routes
		conversations := v1.Group("/conversations")
		{
			conversations.GET("", messageHandler.GetInbox)
			conversations.POST("", middleware.MessageRateLimit(), messageHandler.StartConversation)
			conversations.GET("/:id", messageHandler.GetConversation)
			conversations.POST("/:id/messages", middleware.MessageRateLimit(), messageHandler.SendMessage)
			conversations.PUT("/:id/read", messageHandler.MarkRead)
		}

		// Favorites and cart routes
		me := v1.Group("/me")
		{
			me.GET("/favorites", collectionHandler.GetFavorites)
			me.POST("/favorites/:bottleId", collectionHandler.AddFavorite)
			me.DELETE("/favorites/:bottleId", collectionHandler.RemoveFavorite)
			me.GET("/cart", collectionHandler.GetCart)
			me.PUT("/cart/:bottleId", collectionHandler.UpdateCart)
		}

		// Platform stats
		v1.GET("/stats/platform", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"bottles":       stores.Bottles.Count(),
				"sales":         stores.Sales.Count(),
				"users":         stores.Users.Count(),
				"conversations": stores.Conversations.Count(),
			})
		})
	}

	return r
}
