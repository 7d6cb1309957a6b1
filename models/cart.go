package models

// PendingBooking is one cart item's scheduling request, validated at
// checkout and discarded afterwards.
type PendingBooking struct {
	CartItemID   string `json:"cartItemId"`
	ProviderName string `json:"providerName"`
	Date         string `json:"date"` // "YYYY-MM-DD"
	Time         string `json:"time"` // display time
	Duration     string `json:"duration"`
}

// CartItem carries everything checkout needs for one service in the cart.
type CartItem struct {
	PendingBooking
	ServiceName string    `json:"serviceName"`
	BasePrice   float64   `json:"basePrice"`
	AddOnPrices []float64 `json:"addOnPrices,omitempty"`
	PaymentType string    `json:"paymentType"` // "full" or "deposit"
}

// CartConflict points at the cart item that needs rescheduling.
type CartConflict struct {
	CartItemID string `json:"cartItemId"`
	Message    string `json:"message"`
}

// CartValidation aggregates all per-item conflicts for one checkout attempt.
type CartValidation struct {
	IsValid   bool           `json:"isValid"`
	Conflicts []CartConflict `json:"conflicts,omitempty"`
}

// CheckoutResult is returned to the checkout flow. Appointments and
// Invoices are only populated when Validation.IsValid is true.
type CheckoutResult struct {
	Validation   CartValidation `json:"validation"`
	Appointments []Appointment  `json:"appointments,omitempty"`
	Invoices     []Invoice      `json:"invoices,omitempty"`
}
