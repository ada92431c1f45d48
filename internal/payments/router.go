package payments

import (
	"cinebook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPaymentRoutes configures all payment routes
func SetupPaymentRoutes(rg *gin.RouterGroup, controller *Controller) {
	pays := rg.Group("/payments")
	pays.Use(middleware.JWTAuth())
	{
		pays.GET("/:reference", controller.GetPayment)     // GET /api/v1/payments/:reference
		pays.POST("/:reference/settle", controller.Settle) // POST /api/v1/payments/:reference/settle
	}
}
