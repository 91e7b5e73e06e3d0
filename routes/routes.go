package routes

import (
	"net/http"
	"time"

	"scheduly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the booking endpoint. The frontend calls
// it with POST; GET is accepted too for parity with the original contract.
func RegisterScheduleRoutes(r *gin.Engine, sh *handlers.ScheduleHandler) {
	r.POST("/setresponse", sh.SetResponseHandler)
	r.GET("/setresponse", sh.SetResponseHandler)
}

// RegisterHealthRoute registers a health-check endpoint used by the UI for a
// liveness indicator.
func RegisterHealthRoute(r *gin.Engine) {
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	r.GET("/health", health)
	r.POST("/health", health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, sh *handlers.ScheduleHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, sh)
	RegisterHealthRoute(r)
}
