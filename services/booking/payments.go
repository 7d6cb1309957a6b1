package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/refund"
	"go.uber.org/zap"

	"lumea/models"
)

// PaymentHandler collects the upfront amount for a finalized booking and
// reverses it when the checkout that charged it cannot complete.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
	RefundPayment(ctx context.Context, inv models.Invoice) error
}

// StripePaymentHandler charges cards through Stripe PaymentIntents; cash
// payments are recorded as pending and settled at the appointment.
type StripePaymentHandler struct {
	logger *zap.Logger
}

func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	now := time.Now()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch req.Method {
	case "card":
		params := &stripe.PaymentIntentParams{
			Amount:      stripe.Int64(int64(math.Round(req.Amount * 100))),
			Currency:    stripe.String(strings.ToLower(req.Currency)),
			Description: stripe.String(req.Description),
			Confirm:     stripe.Bool(true),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled:        stripe.Bool(true),
				AllowRedirects: stripe.String("never"),
			},
		}
		params.Context = ctx
		for k, v := range req.Metadata {
			params.AddMetadata(k, v)
		}

		pi, err := paymentintent.New(params)
		if err != nil {
			return nil, fmt.Errorf("card payment failed: %w", err)
		}
		inv.PaymentID = pi.ID
		inv.Status = "paid"
		inv.UpdatedAt = time.Now()
		h.logger.Info("card payment successful",
			zap.String("invoice", inv.InvoiceID), zap.String("paymentIntent", pi.ID))
		return inv, nil

	case "cash":
		// Settled in person; the invoice stays pending.
		inv.UpdatedAt = time.Now()
		h.logger.Info("cash payment recorded", zap.String("invoice", inv.InvoiceID))
		return inv, nil

	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

// RefundPayment reverses a captured charge. Cash invoices stay pending
// until the appointment, so there is nothing to reverse for them.
func (h *StripePaymentHandler) RefundPayment(ctx context.Context, inv models.Invoice) error {
	if inv.Method != "card" || inv.PaymentID == "" {
		return nil
	}
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(inv.PaymentID),
	}
	params.Context = ctx

	r, err := refund.New(params)
	if err != nil {
		return fmt.Errorf("refund failed for payment %s: %w", inv.PaymentID, err)
	}
	h.logger.Info("payment refunded",
		zap.String("invoice", inv.InvoiceID), zap.String("refund", r.ID))
	return nil
}

func validatePaymentRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.Currency == "" {
		return errors.New("missing currency")
	}
	if req.Method != "card" && req.Method != "cash" {
		return errors.New("unsupported method")
	}
	return nil
}
