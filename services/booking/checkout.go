package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lumea/models"
	"lumea/services/schedule"
	"lumea/utils"
)

// Checkout confirms a validated cart: it re-validates inside the
// per-(provider, date) critical section, computes the payment breakdown,
// collects the upfront amounts, and appends one finalized appointment
// record per item. A failed notification never rolls back a booking.
//
// When validation fails, the result carries the conflicts and no
// appointments; the whole checkout is blocked, there is no
// partial-success path.
func (svc *DefaultBookingService) Checkout(ctx context.Context, items []models.CartItem, customer models.CustomerInfo) (*models.CheckoutResult, error) {
	if len(items) == 0 {
		return nil, errors.New("cart is empty")
	}
	logger := utils.GetLogger()

	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = lockKey(item.ProviderName, item.Date)
	}
	release := svc.locks.acquire(keys)
	defer release()

	requests := make([]models.PendingBooking, len(items))
	for i, item := range items {
		requests[i] = item.PendingBooking
	}
	validation := svc.ValidateCart(ctx, requests)
	if !validation.IsValid {
		return &models.CheckoutResult{Validation: validation}, nil
	}

	breakdowns := BuildPaymentBreakdowns(items)

	result := &models.CheckoutResult{Validation: validation}
	now := time.Now()
	appts := make([]models.Appointment, 0, len(items))
	for i, item := range items {
		b := breakdowns[i]
		id := uuid.New().String()

		if svc.Payments != nil && b.AmountPaid > 0 {
			inv, err := svc.Payments.ProcessPayment(ctx, models.PaymentRequest{
				CustomerName: customer.Name,
				Amount:       b.AmountPaid,
				Currency:     "GBP",
				Method:       "card",
				Description:  fmt.Sprintf("%s with %s on %s", item.ServiceName, item.ProviderName, item.Date),
				Metadata:     map[string]string{"bookingId": id},
			})
			if err != nil {
				// Earlier items in the cart were already charged; give
				// that money back before surfacing the failure.
				svc.refundCollected(ctx, result.Invoices)
				return nil, fmt.Errorf("payment failed for %s: %w", item.ServiceName, err)
			}
			inv.BookingID = id
			result.Invoices = append(result.Invoices, *inv)
		}

		start := schedule.ParseClockTime(item.Time)
		duration := schedule.ParseServiceDuration(item.Duration)
		appts = append(appts, models.Appointment{
			ID:           id,
			ProviderName: item.ProviderName,
			BookingDate:  item.Date,
			BookingTime:  item.Time,
			EndTime:      schedule.FormatClockTime(start + duration),
			Duration:     item.Duration,
			ServiceName:  item.ServiceName,
			Status:       models.StatusUpcoming,
			Customer:     customer,
			Payment:      b,
			CreatedAt:    now,
		})
	}

	if err := svc.Repo.Insert(ctx, appts); err != nil {
		svc.refundCollected(ctx, result.Invoices)
		return nil, fmt.Errorf("failed to persist appointments: %w", err)
	}
	result.Appointments = appts

	if svc.Notifier != nil {
		for _, a := range appts {
			if err := svc.Notifier.NotifyBookingConfirmed(ctx, a); err != nil {
				logger.Warn("confirmation notification failed",
					zap.String("bookingId", a.ID), zap.Error(err))
			}
		}
	}
	return result, nil
}

// refundCollected reverses every charge collected before an aborted
// checkout. Best effort: a failed refund is logged for manual follow-up
// and the original checkout error still reaches the caller.
func (svc *DefaultBookingService) refundCollected(ctx context.Context, invoices []models.Invoice) {
	for _, inv := range invoices {
		if err := svc.Payments.RefundPayment(ctx, inv); err != nil {
			utils.GetLogger().Error("refund failed after aborted checkout",
				zap.String("invoice", inv.InvoiceID),
				zap.String("payment", inv.PaymentID),
				zap.Error(err))
		}
	}
}

// CancelAppointment marks an appointment cancelled, which releases its
// slot in every subsequent availability read.
func (svc *DefaultBookingService) CancelAppointment(ctx context.Context, id string) error {
	appt, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load appointment: %w", err)
	}
	if !appt.HoldsSlot() {
		return fmt.Errorf("appointment %s is already %s", id, appt.Status)
	}
	if err := svc.Repo.UpdateStatus(ctx, id, models.StatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	if svc.Notifier != nil {
		appt.Status = models.StatusCancelled
		if err := svc.Notifier.NotifyBookingCancelled(ctx, *appt); err != nil {
			utils.GetLogger().Warn("cancellation notification failed",
				zap.String("bookingId", id), zap.Error(err))
		}
	}
	return nil
}

// Appointments lists every stored appointment record.
func (svc *DefaultBookingService) Appointments(ctx context.Context) ([]models.Appointment, error) {
	return svc.Repo.ListAll(ctx)
}
