package booking

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"lumea/models"
)

func TestAvailableSlots_EmptyStoreAllFree(t *testing.T) {
	svc := NewDefaultBookingService(&fakeRepo{}, nil, nil)
	slots := svc.AvailableSlots(context.Background(), "Salon Aurora", futureDate(), "1 hour")
	if len(slots) != 10 {
		t.Fatalf("expected 10 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Booked {
			t.Errorf("slot %s should be free on an empty store", s.Time)
		}
	}
}

func TestAvailableSlots_MarksOverlappingSlot(t *testing.T) {
	date := futureDate()
	repo := &fakeRepo{appts: []models.Appointment{
		upcomingAppointment("bk-1", "Salon Aurora", date, "10:00 AM", "1 hour"),
	}}
	svc := NewDefaultBookingService(repo, nil, nil)

	slots := svc.AvailableSlots(context.Background(), "Salon Aurora", date, "1 hour")
	byTime := map[string]models.SlotStatus{}
	for _, s := range slots {
		byTime[s.Time] = s
	}

	if !byTime["10:00 AM"].Booked {
		t.Error("10:00 AM should be booked")
	}
	if byTime["10:00 AM"].BookingID != "bk-1" {
		t.Errorf("booked slot should carry the booking id, got %q", byTime["10:00 AM"].BookingID)
	}
	// Half-open intervals: a 10-11 booking leaves 9 AM and 11 AM free.
	if byTime["9:00 AM"].Booked {
		t.Error("9:00 AM should be free")
	}
	if byTime["11:00 AM"].Booked {
		t.Error("11:00 AM should be free")
	}
}

func TestAvailableSlots_CancelledBookingReleasesSlot(t *testing.T) {
	date := futureDate()
	appt := upcomingAppointment("bk-1", "Salon Aurora", date, "10:00 AM", "1 hour")
	appt.Status = models.StatusCancelled
	svc := NewDefaultBookingService(&fakeRepo{appts: []models.Appointment{appt}}, nil, nil)

	for _, s := range svc.AvailableSlots(context.Background(), "Salon Aurora", date, "1 hour") {
		if s.Booked {
			t.Errorf("slot %s should be free after cancellation", s.Time)
		}
	}
}

func TestAvailableSlots_PastOrInvalidDate(t *testing.T) {
	svc := NewDefaultBookingService(&fakeRepo{}, nil, nil)
	if got := svc.AvailableSlots(context.Background(), "Salon Aurora", "2020-01-06", "1 hour"); got != nil {
		t.Errorf("past date should yield no slots, got %v", got)
	}
	if got := svc.AvailableSlots(context.Background(), "Salon Aurora", "06/01/2030", "1 hour"); got != nil {
		t.Errorf("invalid date should yield no slots, got %v", got)
	}
}

func TestAvailableSlots_ReadIsIdempotent(t *testing.T) {
	date := futureDate()
	repo := &fakeRepo{appts: []models.Appointment{
		upcomingAppointment("bk-1", "Salon Aurora", date, "2:00 PM", "1 hour"),
	}}
	svc := NewDefaultBookingService(repo, nil, nil)

	first := svc.AvailableSlots(context.Background(), "Salon Aurora", date, "1 hour")
	second := svc.AvailableSlots(context.Background(), "Salon Aurora", date, "1 hour")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated reads diverged:\n%v\n%v", first, second)
	}
}

func TestAvailabilityFailsOpenCheckFailsClosed(t *testing.T) {
	repo := &fakeRepo{failList: true}
	svc := NewDefaultBookingService(repo, nil, nil)
	date := futureDate()

	// Calendar reads degrade to "nothing booked".
	slots := svc.AvailableSlots(context.Background(), "Salon Aurora", date, "1 hour")
	if len(slots) != 10 {
		t.Fatalf("expected full template despite store error, got %d slots", len(slots))
	}
	for _, s := range slots {
		if s.Booked {
			t.Errorf("slot %s should read as free when the store errors", s.Time)
		}
	}

	// A single-slot check blocks instead.
	check := svc.CheckSlot(context.Background(), "Salon Aurora", date, "10:00 AM", "1 hour")
	if !check.HasConflict {
		t.Error("slot check must report a conflict when the store errors")
	}
	if check.ConflictingBookingID != "" {
		t.Errorf("unverifiable slot should not name a booking, got %q", check.ConflictingBookingID)
	}
}

func TestCheckSlot_OverlapBoundaries(t *testing.T) {
	date := futureDate()
	repo := &fakeRepo{appts: []models.Appointment{
		upcomingAppointment("bk-1", "Salon Aurora", date, "10:00 AM", "1 hour"),
	}}
	svc := NewDefaultBookingService(repo, nil, nil)
	ctx := context.Background()

	if c := svc.CheckSlot(ctx, "Salon Aurora", date, "9:01 AM", "1 hour"); !c.HasConflict {
		t.Error("slot ending one minute into the booking should conflict")
	}
	if c := svc.CheckSlot(ctx, "Salon Aurora", date, "10:59 AM", "1 hour"); !c.HasConflict {
		t.Error("slot starting one minute before the booking ends should conflict")
	}
	if c := svc.CheckSlot(ctx, "Salon Aurora", date, "11:00 AM", "1 hour"); c.HasConflict {
		t.Errorf("back-to-back slot should not conflict: %s", c.Message)
	}
	if c := svc.CheckSlot(ctx, "Salon Aurora", date, "9:00 AM", "1 hour"); c.HasConflict {
		t.Errorf("slot ending exactly at the booking start should not conflict: %s", c.Message)
	}
}

func TestCheckSlot_ConflictDetails(t *testing.T) {
	date := futureDate()
	repo := &fakeRepo{appts: []models.Appointment{
		upcomingAppointment("bk-1", "Salon Aurora", date, "10:00 AM", "1 hour"),
	}}
	svc := NewDefaultBookingService(repo, nil, nil)

	check := svc.CheckSlot(context.Background(), "Salon Aurora", date, "10:30 AM", "1 hour")
	if !check.HasConflict {
		t.Fatal("expected a conflict")
	}
	if check.ConflictingBookingID != "bk-1" {
		t.Errorf("conflict should name bk-1, got %q", check.ConflictingBookingID)
	}
	if !strings.Contains(check.Message, "10:00 AM") || !strings.Contains(check.Message, "11:00 AM") {
		t.Errorf("message should state the booked window, got %q", check.Message)
	}
}

func TestCheckSlot_PastDate(t *testing.T) {
	svc := NewDefaultBookingService(&fakeRepo{}, nil, nil)
	check := svc.CheckSlot(context.Background(), "Salon Aurora", "2020-01-06", "10:00 AM", "1 hour")
	if !check.HasConflict {
		t.Error("past dates must be blocked")
	}
}

func TestCheckSlot_ProviderNameVariants(t *testing.T) {
	date := futureDate()
	repo := &fakeRepo{appts: []models.Appointment{
		upcomingAppointment("bk-1", "Kiki Beauty & Spa", date, "2:00 PM", "1 hour"),
	}}
	svc := NewDefaultBookingService(repo, nil, nil)

	if c := svc.CheckSlot(context.Background(), "Kiki Beauty", date, "2:00 PM", "1 hour"); !c.HasConflict {
		t.Error("short provider name should match the stored display name")
	}
	if c := svc.CheckSlot(context.Background(), "Zuri Hair Lounge", date, "2:00 PM", "1 hour"); c.HasConflict {
		t.Error("a different provider's booking should not conflict")
	}
}

func TestAvailableSlots_ProviderExceptionExcludesSlotEntirely(t *testing.T) {
	svc := NewDefaultBookingService(&fakeRepo{}, nil, nil)

	// KIKI never offers 1:00 PM, so the slot is absent from the grid
	// rather than marked booked.
	saturday := time.Now().AddDate(0, 0, 1)
	for saturday.Weekday() != time.Saturday {
		saturday = saturday.AddDate(0, 0, 1)
	}

	slots := svc.AvailableSlots(context.Background(), "KIKI", saturday.Format(dateLayout), "1 hour")
	if len(slots) != 9 {
		t.Fatalf("expected 9 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Time == "1:00 PM" {
			t.Error("1:00 PM should not appear in KIKI's grid at all")
		}
	}
}

func TestCalendarSlots_OmitsBooked(t *testing.T) {
	date := futureDate()
	repo := &fakeRepo{appts: []models.Appointment{
		upcomingAppointment("bk-1", "Salon Aurora", date, "9:00 AM", "1 hour"),
	}}
	svc := NewDefaultBookingService(repo, nil, nil)

	free := svc.CalendarSlots(context.Background(), "Salon Aurora", date, "1 hour")
	if len(free) != 9 {
		t.Fatalf("expected 9 free slots, got %d", len(free))
	}
	for _, slot := range free {
		if slot == "9:00 AM" {
			t.Error("booked slot leaked into the calendar view")
		}
	}
}
