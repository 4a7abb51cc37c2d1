// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront-hub/backend/internal/integration/entrypoint/controller"
	"github.com/storefront-hub/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	analyticsController *controller.AnalyticsController
	cacheController     *controller.CacheController
	exportRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	analyticsController *controller.AnalyticsController,
	cacheController *controller.CacheController,
	exportRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		analyticsController: analyticsController,
		cacheController:     cacheController,
		exportRateLimiter:   exportRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Analytics routes (only setup if analytics controller is available)
		if r.analyticsController != nil {
			analytics := v1.Group("/analytics")
			{
				analytics.GET("/summary", r.analyticsController.Summary)
				analytics.GET("/trend", r.analyticsController.Trend)
				analytics.POST("/evaluate", r.analyticsController.Evaluate)

				export := []gin.HandlerFunc{r.analyticsController.ExportTrend}
				if r.exportRateLimiter != nil {
					export = append([]gin.HandlerFunc{r.exportRateLimiter.Middleware()}, export...)
				}
				analytics.GET("/trend/export", export...)

				if r.cacheController != nil {
					analytics.POST("/refresh", r.cacheController.Refresh)
				}
			}
		}
	}
}

// Engine returns the Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
