package booking

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"lumea/models"
	"lumea/services/schedule"
	"lumea/utils"
)

// BookedSlots returns the confirmed, slot-holding bookings for a provider
// on a date, projected to the scheduling-relevant fields.
//
// Availability reads fail OPEN: a store error degrades to "nothing
// booked" so a storage hiccup cannot blank the whole calendar. The
// single-slot check in CheckSlot uses listBooked directly and fails the
// other way. Keep the asymmetry.
func (svc *DefaultBookingService) BookedSlots(ctx context.Context, providerName, date string) []models.BookedSlot {
	slots, err := svc.listBooked(ctx, providerName, date)
	if err != nil {
		utils.GetLogger().Warn("booked-slots read failed, treating day as free",
			zap.String("provider", providerName), zap.String("date", date), zap.Error(err))
		return nil
	}
	return slots
}

// listBooked is the error-returning variant feeding both the fail-open
// and fail-closed paths.
func (svc *DefaultBookingService) listBooked(ctx context.Context, providerName, date string) ([]models.BookedSlot, error) {
	appts, err := svc.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var booked []models.BookedSlot
	for _, a := range appts {
		if !a.HoldsSlot() {
			continue
		}
		if a.BookingDate != date {
			continue
		}
		if !providerNamesMatch(a.ProviderName, providerName) {
			continue
		}
		booked = append(booked, models.BookedSlot{
			Time:        a.BookingTime,
			EndTime:     a.EndTime,
			BookingID:   a.ID,
			ServiceName: a.ServiceName,
			Duration:    schedule.ParseServiceDuration(a.Duration),
		})
	}
	return booked, nil
}

// providerNamesMatch tolerates short-name vs display-name mismatches by
// accepting case-insensitive containment in either direction.
func providerNamesMatch(a, b string) bool {
	x := strings.ToLower(strings.TrimSpace(a))
	y := strings.ToLower(strings.TrimSpace(b))
	if x == "" || y == "" {
		return false
	}
	return strings.Contains(x, y) || strings.Contains(y, x)
}
