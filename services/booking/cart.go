package booking

import (
	"context"
	"fmt"
	"strings"

	"lumea/models"
	"lumea/services/schedule"
)

// ValidateCart checks a batch of pending bookings against the store and
// against each other, catching same-cart double-booking before
// confirmation. It performs no writes and never short-circuits: every
// item is checked so the client can highlight each one that needs
// rescheduling.
func (svc *DefaultBookingService) ValidateCart(ctx context.Context, requests []models.PendingBooking) models.CartValidation {
	var conflicts []models.CartConflict

	for i, req := range requests {
		if msg := validatePendingBooking(req); msg != "" {
			conflicts = append(conflicts, models.CartConflict{CartItemID: req.CartItemID, Message: msg})
			continue
		}

		// One conflict per item: an item blocked by the store does not
		// also get reported against its cart neighbours.
		if check := svc.CheckSlot(ctx, req.ProviderName, req.Date, req.Time, req.Duration); check.HasConflict {
			conflicts = append(conflicts, models.CartConflict{CartItemID: req.CartItemID, Message: check.Message})
			continue
		}

		start := schedule.ParseClockTime(req.Time)
		end := start + schedule.ParseServiceDuration(req.Duration)
		for j, other := range requests {
			if j == i || req.Date != other.Date || !providerNamesMatch(req.ProviderName, other.ProviderName) {
				continue
			}
			oStart := schedule.ParseClockTime(other.Time)
			oEnd := oStart + schedule.ParseServiceDuration(other.Duration)
			if schedule.Overlaps(start, end, oStart, oEnd) {
				conflicts = append(conflicts, models.CartConflict{
					CartItemID: req.CartItemID,
					Message: fmt.Sprintf("This clashes with another %s booking in your cart at %s.",
						other.ProviderName, other.Time),
				})
				break
			}
		}
	}

	return models.CartValidation{IsValid: len(conflicts) == 0, Conflicts: conflicts}
}

// validatePendingBooking returns a human-readable problem with the
// request fields, or "" when the request is checkable.
func validatePendingBooking(req models.PendingBooking) string {
	if strings.TrimSpace(req.Date) == "" {
		return "Please choose a date for this service."
	}
	if _, ok := parseBookingDate(req.Date); !ok {
		return "The selected date is invalid."
	}
	if strings.TrimSpace(req.Time) == "" {
		return "Please choose a time for this service."
	}
	// ParseClockTime returns 0 for anything it cannot read; midnight is
	// not an offered slot, so 0 means unparsable here.
	if schedule.ParseClockTime(req.Time) == 0 {
		return "We couldn't read the time for this service."
	}
	return ""
}
