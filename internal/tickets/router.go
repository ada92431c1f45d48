package tickets

import (
	"cinebook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupTicketRoutes configures all ticket routes
func SetupTicketRoutes(rg *gin.RouterGroup, controller *Controller) {
	tix := rg.Group("/tickets")
	tix.Use(middleware.JWTAuth())
	{
		tix.POST("/reserve", controller.Reserve)          // POST /api/v1/tickets/reserve
		tix.GET("", controller.GetUserTickets)            // GET /api/v1/tickets
		tix.GET("/:id", controller.GetTicket)             // GET /api/v1/tickets/:id
		tix.POST("/:id/payment", controller.BeginPayment) // POST /api/v1/tickets/:id/payment
		tix.POST("/:id/confirm", controller.Confirm)      // POST /api/v1/tickets/:id/confirm
		tix.POST("/:id/cancel", controller.Cancel)        // POST /api/v1/tickets/:id/cancel
	}
}
