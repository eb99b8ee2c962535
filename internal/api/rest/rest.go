package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/hookline/gateway/internal/api/middleware"
	"github.com/hookline/gateway/internal/ratelimit"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, limiter ratelimit.Limiter) {
	// Health check endpoint (no rate limiting)
	router.GET("/health", handler.HealthCheck)

	webhooks := router.Group("/webhooks")
	webhooks.Use(middleware.RateLimit(limiter))
	{
		// Intake endpoints, one path per configured provider
		webhooks.POST("/github", handler.IngestGitHub)
		webhooks.POST("/stripe", handler.IngestStripe)
		webhooks.POST("/resend", handler.IngestResend)

		// Providers probe intake paths with GET during endpoint setup
		webhooks.GET("/:provider", handler.ProbeSource)

		// Operator endpoints
		webhooks.POST("/replay/:id", handler.ReplayEvent)
		webhooks.GET("", handler.ListEvents)
	}
}
