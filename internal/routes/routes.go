package routes

import (
	"internhub_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты API v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.PaymentHandler.RegisterRoutes(api)
		appHandlers.ContentHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
	}

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
