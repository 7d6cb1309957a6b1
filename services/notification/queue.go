package notification

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"lumea/models"
	"lumea/services/tasks"
)

// AsynqNotificationService queues booking pushes for the background
// worker instead of sending inline.
type AsynqNotificationService struct {
	client *asynq.Client
}

func NewAsynqNotificationService(client *asynq.Client) (*AsynqNotificationService, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: asynq client is nil")
	}
	return &AsynqNotificationService{client: client}, nil
}

func (s *AsynqNotificationService) NotifyBookingConfirmed(ctx context.Context, appt models.Appointment) error {
	return s.enqueue(ctx, models.BookingNotifyPayload{
		Event:     "confirmed",
		BookingID: appt.ID,
		Title:     "Booking confirmed",
		Body: fmt.Sprintf("%s with %s on %s at %s. See you there!",
			appt.ServiceName, appt.ProviderName, appt.BookingDate, appt.BookingTime),
		FCMToken: appt.Customer.FCMToken,
		Data:     map[string]string{"bookingId": appt.ID, "event": "confirmed"},
	})
}

func (s *AsynqNotificationService) NotifyBookingCancelled(ctx context.Context, appt models.Appointment) error {
	return s.enqueue(ctx, models.BookingNotifyPayload{
		Event:     "cancelled",
		BookingID: appt.ID,
		Title:     "Booking cancelled",
		Body: fmt.Sprintf("Your %s with %s on %s has been cancelled.",
			appt.ServiceName, appt.ProviderName, appt.BookingDate),
		FCMToken: appt.Customer.FCMToken,
		Data:     map[string]string{"bookingId": appt.ID, "event": "cancelled"},
	})
}

func (s *AsynqNotificationService) enqueue(ctx context.Context, payload models.BookingNotifyPayload) error {
	task, err := tasks.NewBookingNotifyTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build notify task: %w", err)
	}
	if _, err := s.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue notify task: %w", err)
	}
	return nil
}
