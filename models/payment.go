package models

import "time"

// Per-item payment modes.
const (
	PaymentFull    = "full"
	PaymentDeposit = "deposit"
)

// PaymentBreakdown is the computed charge for one finalized appointment.
// Invariant: AmountPaid + RemainingBalance == TotalWithServiceCharge
// (to 2 decimal places), and DepositAmount is 0 for full payments.
type PaymentBreakdown struct {
	ItemSubtotal     float64 `bson:"item_subtotal" json:"itemSubtotal"`
	ServiceCharge    float64 `bson:"service_charge" json:"proportionalServiceCharge"`
	Total            float64 `bson:"total" json:"totalWithServiceCharge"`
	PaymentType      string  `bson:"payment_type" json:"paymentType"`
	AmountPaid       float64 `bson:"amount_paid" json:"amountPaid"`
	DepositAmount    float64 `bson:"deposit_amount" json:"depositAmount"`
	RemainingBalance float64 `bson:"remaining_balance" json:"remainingBalance"`
}

// PaymentRequest is handed to the payment handler for the upfront amount.
type PaymentRequest struct {
	CustomerName string            `json:"customerName"`
	Amount       float64           `json:"amount"`
	Currency     string            `json:"currency"`
	Method       string            `json:"method"` // "card" or "cash"
	Description  string            `json:"description,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Invoice records the outcome of processing one payment.
type Invoice struct {
	InvoiceID string    `bson:"invoice_id" json:"invoiceId"`
	BookingID string    `bson:"booking_id" json:"bookingId"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Status    string    `bson:"status" json:"status"` // "paid" or "pending"
	Method    string    `bson:"method" json:"method"`
	PaymentID string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
