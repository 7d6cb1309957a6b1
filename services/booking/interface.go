package booking

import (
	"context"

	bookingRepo "lumea/database/repository/booking"
	"lumea/models"
	"lumea/services/notification"
)

// BookingService is the in-process contract the HTTP layer talks to:
// availability resolution, cart validation and checkout confirmation.
type BookingService interface {
	AvailableSlots(ctx context.Context, providerName, date, serviceDuration string) []models.SlotStatus
	CalendarSlots(ctx context.Context, providerName, date, serviceDuration string) []string
	CheckSlot(ctx context.Context, providerName, date, slotTime, serviceDuration string) models.SlotCheck
	ValidateCart(ctx context.Context, requests []models.PendingBooking) models.CartValidation
	Checkout(ctx context.Context, items []models.CartItem, customer models.CustomerInfo) (*models.CheckoutResult, error)
	CancelAppointment(ctx context.Context, id string) error
	Appointments(ctx context.Context) ([]models.Appointment, error)
}

// DefaultBookingService implements BookingService against the external
// appointment store. All operations are synchronous; the store is the
// only side effect.
type DefaultBookingService struct {
	Repo     bookingRepo.AppointmentRepository
	Payments PaymentHandler
	Notifier notification.NotificationService

	locks providerLocks
}

func NewDefaultBookingService(
	repo bookingRepo.AppointmentRepository,
	payments PaymentHandler,
	notifier notification.NotificationService,
) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Payments: payments,
		Notifier: notifier,
	}
}
