package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stayfinder/handlers"
	"stayfinder/middleware"
	"stayfinder/utils"
)

// RegisterConversationRoutes registers the conversation input endpoints.
func RegisterConversationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/conversations")
	{
		api.Use(middleware.RateLimitMiddleware())
		api.POST("/:chatID/message", hb.PostMessageHandler)
		api.POST("/:chatID/option", hb.PostOptionHandler)
		api.GET("/:chatID/history", hb.GetHistoryHandler)
		api.DELETE("/:chatID/history", hb.ClearHistoryHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Stayfinder"})
	})
	r.GET("/health/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes wires all route groups onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	RegisterHealthRoute(r)
	RegisterConversationRoutes(r, hb)
}
