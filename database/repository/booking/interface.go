package bookingRepo

import (
	"context"

	"lumea/models"
)

// AppointmentRepository is the persistence contract for confirmed
// appointments. The store stays intentionally dumb: it lists everything
// and appends finalized records; the availability engine does its own
// provider/date/status filtering client-side.
type AppointmentRepository interface {
	ListAll(ctx context.Context) ([]models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Insert(ctx context.Context, appts []models.Appointment) error
	UpdateStatus(ctx context.Context, id, status string) error
}
