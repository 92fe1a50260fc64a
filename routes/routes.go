package routes

import (
	"net/http"
	"time"

	"breakthrough/handlers"
	"breakthrough/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWebhookRoutes registers the scheduling-provider webhook endpoint.
func RegisterWebhookRoutes(r *gin.Engine, h *handlers.WebhookHandler) {
	api := r.Group("/api/webhooks")
	{
		api.POST("/calendly", h.HandleCalendlyWebhook)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.WebhookHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Calendly-Webhook-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// The webhook endpoint only exists for POST; anything else is rejected
	// explicitly rather than falling through to a 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		utils.JSONError(c, http.StatusMethodNotAllowed, "Method not allowed", "")
	})

	RegisterWebhookRoutes(r, h)
	RegisterHealthRoute(r)
}
