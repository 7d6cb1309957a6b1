package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lumea/models"
	"lumea/services/schedule"
	"lumea/utils"
)

const dateLayout = "2006-01-02"

// AvailableSlots resolves a provider's base schedule for a date against
// the confirmed bookings, returning every base slot in order with a
// booked/free flag. Past dates and non-working days yield an empty list.
func (svc *DefaultBookingService) AvailableSlots(ctx context.Context, providerName, date, serviceDuration string) []models.SlotStatus {
	day, ok := parseBookingDate(date)
	if !ok {
		utils.GetLogger().Warn("availability query with invalid date", zap.String("date", date))
		return nil
	}
	// Calendar-day comparison: today is still bookable.
	if day.Before(todayMidnight()) {
		return nil
	}

	base := schedule.DaySchedule(providerName, day.Weekday())
	if len(base) == 0 {
		return nil
	}

	booked := svc.BookedSlots(ctx, providerName, date)
	duration := schedule.ParseServiceDuration(serviceDuration)

	statuses := make([]models.SlotStatus, 0, len(base))
	for _, slotTime := range base {
		start := schedule.ParseClockTime(slotTime)
		status := models.SlotStatus{Time: slotTime}
		for _, b := range booked {
			bStart := schedule.ParseClockTime(b.Time)
			if schedule.Overlaps(start, start+duration, bStart, bStart+b.Duration) {
				status.Booked = true
				status.BookingID = b.BookingID
				break
			}
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// CalendarSlots is the calendar view: only the free slots, as bare time
// strings.
func (svc *DefaultBookingService) CalendarSlots(ctx context.Context, providerName, date, serviceDuration string) []string {
	var free []string
	for _, s := range svc.AvailableSlots(ctx, providerName, date, serviceDuration) {
		if !s.Booked {
			free = append(free, s.Time)
		}
	}
	return free
}

// CheckSlot probes one candidate slot for conflicts.
//
// This path fails CLOSED: if the store or the date cannot be read, the
// slot is reported as conflicted with a retry message. Over-blocking one
// booking attempt is safer than double-selling a slot, which is why this
// is the opposite policy from BookedSlots.
func (svc *DefaultBookingService) CheckSlot(ctx context.Context, providerName, date, slotTime, serviceDuration string) models.SlotCheck {
	day, ok := parseBookingDate(date)
	if !ok {
		return unverifiableSlot()
	}
	if day.Before(todayMidnight()) {
		return models.SlotCheck{
			HasConflict: true,
			Message:     "This date has already passed. Please pick an upcoming day.",
		}
	}

	booked, err := svc.listBooked(ctx, providerName, date)
	if err != nil {
		utils.GetLogger().Error("slot check could not read bookings",
			zap.String("provider", providerName), zap.String("date", date), zap.Error(err))
		return unverifiableSlot()
	}

	start := schedule.ParseClockTime(slotTime)
	duration := schedule.ParseServiceDuration(serviceDuration)
	for _, b := range booked {
		bStart := schedule.ParseClockTime(b.Time)
		bEnd := bStart + b.Duration
		if schedule.Overlaps(start, start+duration, bStart, bEnd) {
			return models.SlotCheck{
				HasConflict:          true,
				ConflictingBookingID: b.BookingID,
				Message: fmt.Sprintf("%s is already booked from %s to %s.",
					b.ServiceName, b.Time, schedule.FormatClockTime(bEnd)),
			}
		}
	}
	return models.SlotCheck{}
}

func unverifiableSlot() models.SlotCheck {
	return models.SlotCheck{
		HasConflict: true,
		Message:     "We couldn't verify this slot right now. Please try again.",
	}
}

func parseBookingDate(date string) (time.Time, bool) {
	t, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func todayMidnight() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
