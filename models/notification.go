package models

// BookingNotifyPayload is the payload enqueued for the notification worker.
type BookingNotifyPayload struct {
	Event     string            `json:"event"` // "confirmed", "cancelled", "rescheduled"
	BookingID string            `json:"bookingId"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	FCMToken  string            `json:"fcmToken,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
}
