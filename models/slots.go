package models

// BookedSlot is the scheduling-relevant projection of a confirmed
// appointment, as returned by the booked-slots query layer.
type BookedSlot struct {
	Time        string `json:"time"`
	EndTime     string `json:"endTime"`
	BookingID   string `json:"bookingId"`
	ServiceName string `json:"serviceName"`
	Duration    int    `json:"duration"` // minutes
}

// SlotStatus marks one base-schedule slot as booked or free.
type SlotStatus struct {
	Time      string `json:"time"`
	Booked    bool   `json:"isBooked"`
	BookingID string `json:"bookingId,omitempty"`
}

// SlotCheck is the result of probing a single candidate slot.
type SlotCheck struct {
	HasConflict          bool   `json:"hasConflict"`
	ConflictingBookingID string `json:"conflictingBookingId,omitempty"`
	Message              string `json:"message,omitempty"`
}
