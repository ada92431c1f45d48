// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"cinebook/internal/catalog"
	"cinebook/internal/locks"
	"cinebook/internal/payments"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/database"
	"cinebook/internal/tickets"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher tickets.EventPublisher

	// Built during SetupRoutes so main can hand it to the sweeper
	ticketService tickets.Service
}

// NewRouter creates a new router instance. The publisher may be nil when
// Kafka is disabled.
func NewRouter(cfg *config.Config, db *database.DB, publisher tickets.EventPublisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Shared infrastructure behind the domain services
	var cacheService cache.Service
	if r.db.Redis != nil {
		cacheService = cache.NewService(r.db.Redis)
	}
	lockManager := locks.NewManager(locks.NewRedisLockStore(r.db.Redis))

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		catalogService := r.setupCatalogRoutes(api, cacheService)
		paymentService := r.setupPaymentRoutes(api)
		r.setupTicketRoutes(api, lockManager, catalogService, paymentService)
	}
}

// TicketService returns the wired ticket service. Valid after SetupRoutes.
func (r *Router) TicketService() tickets.Service {
	return r.ticketService
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cinebook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinebook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupCatalogRoutes configures show catalog routes
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup, cacheService cache.Service) catalog.Service {
	catalogRepo := catalog.NewRepository(r.db.GetPostgreSQL())
	catalogService := catalog.NewService(catalogRepo, r.config, cacheService)
	catalogController := catalog.NewController(catalogService)

	catalog.SetupCatalogRoutes(rg, catalogController)
	return catalogService
}

// setupPaymentRoutes configures payment routes
func (r *Router) setupPaymentRoutes(rg *gin.RouterGroup) payments.Service {
	paymentRepo := payments.NewRepository(r.db.GetPostgreSQL())
	paymentService := payments.NewService(paymentRepo)
	paymentController := payments.NewController(paymentService)

	payments.SetupPaymentRoutes(rg, paymentController)
	return paymentService
}

// setupTicketRoutes configures the booking flow routes
func (r *Router) setupTicketRoutes(rg *gin.RouterGroup, lockManager *locks.Manager,
	catalogService catalog.Service, paymentService payments.Service) {
	ticketRepo := tickets.NewRepository(r.db.GetPostgreSQL())
	ticketService := tickets.NewService(ticketRepo, lockManager, catalogService,
		paymentService, r.publisher, r.config, logger.GetDefault())
	ticketController := tickets.NewController(ticketService)

	r.ticketService = ticketService
	tickets.SetupTicketRoutes(rg, ticketController)
}
