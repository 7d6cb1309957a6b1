package models

import "time"

// Appointment statuses. Cancelled and no-show appointments release their
// time slot; every other status keeps it occupied.
const (
	StatusUpcoming   = "upcoming"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

// Appointment represents a confirmed booking record.
type Appointment struct {
	ID           string           `bson:"id" json:"id"`
	ProviderName string           `bson:"provider_name" json:"providerName"`
	BookingDate  string           `bson:"booking_date" json:"bookingDate"` // "YYYY-MM-DD"
	BookingTime  string           `bson:"booking_time" json:"bookingTime"` // display time, e.g. "2:00 PM"
	EndTime      string           `bson:"end_time" json:"endTime"`
	Duration     string           `bson:"duration" json:"duration"` // e.g. "1 hour", "45 mins"
	ServiceName  string           `bson:"service_name" json:"serviceName"`
	Status       string           `bson:"status" json:"status"`
	Customer     CustomerInfo     `bson:"customer" json:"customer"`
	Payment      PaymentBreakdown `bson:"payment" json:"payment"`
	CreatedAt    time.Time        `bson:"created_at" json:"createdAt"`
}

// HoldsSlot reports whether the appointment still occupies its time slot.
func (a Appointment) HoldsSlot() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// CustomerInfo is the customer record supplied by the checkout flow.
type CustomerInfo struct {
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	FCMToken string `bson:"fcm_token,omitempty" json:"fcmToken,omitempty"`
}
