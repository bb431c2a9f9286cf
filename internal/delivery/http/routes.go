package http

import (
	"github.com/gin-gonic/gin"

	"github.com/veridoc/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	rateLimit := RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		verify := v1.Group("/verify", rateLimit)
		{
			verify.POST("/:documentType", handler.VerifyDocument)
		}
	}

	// Legacy per-document-type paths, kept for the existing frontend
	router.POST("/ssc/", rateLimit, handler.VerifySSCMarksheet)
	router.POST("/cet/", rateLimit, handler.VerifyCETMarksheet)
	router.POST("/domicile/", rateLimit, handler.VerifyDomicileCertificate)

	return router
}
