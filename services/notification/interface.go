package notification

import (
	"context"

	"lumea/models"
)

// NotificationService informs customers of booking outcomes. Delivery is
// fire-and-forget: the booking path logs failures and moves on.
type NotificationService interface {
	NotifyBookingConfirmed(ctx context.Context, appt models.Appointment) error
	NotifyBookingCancelled(ctx context.Context, appt models.Appointment) error
}
