package router

import (
	"github.com/gin-gonic/gin"

	"lexora/internal/config"
	"lexora/internal/handler"
	"lexora/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	analyzeH *handler.AnalyzeHandler,
	qaH *handler.QAHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")
	v1.POST("/analyze", analyzeH.Analyze)
	v1.POST("/analyze/batch", analyzeH.AnalyzeBatch)
	v1.POST("/question", qaH.Question)
	v1.POST("/search", qaH.Search)
	v1.GET("/categories", analyzeH.Categories)

	return r
}
