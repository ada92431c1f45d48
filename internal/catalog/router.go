package catalog

import (
	"cinebook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configures all show catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	shows := rg.Group("/shows")
	{
		// Public browsing
		shows.GET("", controller.ListShows)    // GET /api/v1/shows
		shows.GET("/:id", controller.GetShow)  // GET /api/v1/shows/:id

		// Admin catalog management
		admin := shows.Group("")
		admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
		{
			admin.POST("", controller.CreateShow) // POST /api/v1/shows
		}
	}
}
