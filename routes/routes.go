package routes

import (
	"github.com/gin-gonic/gin"

	"lumea/handlers"
)

// SetupRoutes registers all application endpoints.
func SetupRoutes(r *gin.Engine) {
	r.GET("/health", handlers.Health)
	RegisterBookingRoutes(r)
}
