package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lumea/models"
	"lumea/services/booking"
	"lumea/utils"
)

var bookingService booking.BookingService

// SetBookingService injects the booking service used by all handlers.
func SetBookingService(svc booking.BookingService) {
	bookingService = svc
}

const availabilityCacheTTL = 30 * time.Second

// GetAvailability returns the full slot grid (booked and free) for a
// provider on a date. Responses are cached briefly since the grid is
// polled while customers browse.
func GetAvailability(c *gin.Context) {
	provider := c.Query("provider")
	date := c.Query("date")
	duration := c.DefaultQuery("duration", "1 hour")
	if provider == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "provider and date are required")
		return
	}

	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("availability:%s:%s:%s", strings.ToLower(provider), date, duration)
	cacheClient := utils.GetCacheClient()

	if cached, err := cacheClient.Get(ctx, cacheKey).Result(); err == nil {
		var slots []models.SlotStatus
		if json.Unmarshal([]byte(cached), &slots) == nil {
			c.JSON(http.StatusOK, gin.H{"slots": slots})
			return
		}
	}

	slots := bookingService.AvailableSlots(ctx, provider, date, duration)
	if data, err := json.Marshal(slots); err == nil {
		// A failed cache write only costs a recompute.
		_ = cacheClient.Set(ctx, cacheKey, data, availabilityCacheTTL).Err()
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GetCalendarSlots returns only the free slots as bare time strings.
func GetCalendarSlots(c *gin.Context) {
	provider := c.Query("provider")
	date := c.Query("date")
	duration := c.DefaultQuery("duration", "1 hour")
	if provider == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "provider and date are required")
		return
	}

	slots := bookingService.CalendarSlots(c.Request.Context(), provider, date, duration)
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CheckSlot probes a single candidate slot for conflicts.
func CheckSlot(c *gin.Context) {
	provider := c.Query("provider")
	date := c.Query("date")
	slotTime := c.Query("time")
	duration := c.DefaultQuery("duration", "1 hour")
	if provider == "" || date == "" || slotTime == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "provider, date and time are required")
		return
	}

	check := bookingService.CheckSlot(c.Request.Context(), provider, date, slotTime, duration)
	c.JSON(http.StatusOK, check)
}

// Health reports the latest stored health snapshot.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
