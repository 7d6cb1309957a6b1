package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"lumea/models"
)

const TypeBookingNotify = "booking:notify"

func NewBookingNotifyTask(payload models.BookingNotifyPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingNotify, b), nil
}
