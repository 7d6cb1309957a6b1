package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumea/models"
	"lumea/utils"
)

// ValidateCart checks a batch of pending bookings without writing
// anything; the client highlights the conflicting cart items.
func ValidateCart(c *gin.Context) {
	var input struct {
		Requests []models.PendingBooking `json:"requests" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	validation := bookingService.ValidateCart(c.Request.Context(), input.Requests)
	c.JSON(http.StatusOK, validation)
}

// Checkout confirms a whole cart. Conflicts block the entire checkout;
// there is no partial success.
func Checkout(c *gin.Context) {
	var input struct {
		Items    []models.CartItem   `json:"items" binding:"required"`
		Customer models.CustomerInfo `json:"customer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := bookingService.Checkout(c.Request.Context(), input.Items, input.Customer)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "checkout failed", err.Error())
		return
	}
	if !result.Validation.IsValid {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelAppointment releases a booked slot.
func CancelAppointment(c *gin.Context) {
	id := c.Param("id")
	if err := bookingService.CancelAppointment(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cancellation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.StatusCancelled})
}

// ListAppointments returns every stored appointment record.
func ListAppointments(c *gin.Context) {
	appts, err := bookingService.Appointments(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
