package routes

import (
	"github.com/gin-gonic/gin"

	"lumea/handlers"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/availability", handlers.GetAvailability)
		booking.GET("/availability/calendar", handlers.GetCalendarSlots)
		booking.GET("/availability/check", handlers.CheckSlot)
		booking.POST("/cart/validate", handlers.ValidateCart)
		booking.POST("/checkout", handlers.Checkout)
		booking.GET("/appointments", handlers.ListAppointments)
		booking.POST("/appointments/:id/cancel", handlers.CancelAppointment)
	}
}
