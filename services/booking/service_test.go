package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lumea/models"
)

// fakeRepo is an in-memory AppointmentRepository with switchable failure
// for exercising the fail-open/fail-closed read paths.
type fakeRepo struct {
	appts      []models.Appointment
	failList   bool
	failInsert bool
	inserted   [][]models.Appointment
	statuses   map[string]string
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	if r.failList {
		return nil, errors.New("store unavailable")
	}
	return append([]models.Appointment(nil), r.appts...), nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for i := range r.appts {
		if r.appts[i].ID == id {
			a := r.appts[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (r *fakeRepo) Insert(ctx context.Context, appts []models.Appointment) error {
	if r.failInsert {
		return errors.New("store unavailable")
	}
	r.inserted = append(r.inserted, appts)
	r.appts = append(r.appts, appts...)
	return nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if r.statuses == nil {
		r.statuses = map[string]string{}
	}
	r.statuses[id] = status
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("appointment %s not found", id)
}

type fakePayments struct {
	requests []models.PaymentRequest
	refunds  []models.Invoice
	err      error
	failOn   int // 1-based charge attempt that fails; 0 fails every attempt when err is set
}

func (p *fakePayments) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	p.requests = append(p.requests, req)
	if p.err != nil && (p.failOn == 0 || p.failOn == len(p.requests)) {
		return nil, p.err
	}
	now := time.Now()
	return &models.Invoice{
		InvoiceID: fmt.Sprintf("inv-%d", len(p.requests)),
		PaymentID: fmt.Sprintf("pi-%d", len(p.requests)),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "paid",
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (p *fakePayments) RefundPayment(ctx context.Context, inv models.Invoice) error {
	p.refunds = append(p.refunds, inv)
	return nil
}

type fakeNotifier struct {
	confirmed []string
	cancelled []string
	err       error
}

func (n *fakeNotifier) NotifyBookingConfirmed(ctx context.Context, appt models.Appointment) error {
	n.confirmed = append(n.confirmed, appt.ID)
	return n.err
}

func (n *fakeNotifier) NotifyBookingCancelled(ctx context.Context, appt models.Appointment) error {
	n.cancelled = append(n.cancelled, appt.ID)
	return n.err
}

// futureDate keeps test carts bookable regardless of when the suite runs.
func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format(dateLayout)
}

func upcomingAppointment(id, provider, date, slot, duration string) models.Appointment {
	return models.Appointment{
		ID:           id,
		ProviderName: provider,
		BookingDate:  date,
		BookingTime:  slot,
		Duration:     duration,
		ServiceName:  "Gel Manicure",
		Status:       models.StatusUpcoming,
	}
}
