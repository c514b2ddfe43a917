package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Irina-Na/ai-stylist/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
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

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/looks", handler.GenerateLook)

		runwayGroup := v1.Group("/runway")
		{
			runwayGroup.POST("/scene", handler.BuildScene)
			runwayGroup.POST("/director", handler.ParseDirectorCommand)
			runwayGroup.GET("/presets", handler.ListPresets)
		}

		v1.POST("/feedback", handler.SaveFeedback)
	}

	return router
}
