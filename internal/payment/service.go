package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SJ-Slasher/FMS/internal/booking"
	"github.com/SJ-Slasher/FMS/internal/logger"
	"github.com/SJ-Slasher/FMS/internal/metrics"
)

var ErrInvalidPayment = errors.New("invalid payment")

// BookingLookup loads the booking a payment belongs to.
type BookingLookup interface {
	GetBookingDetail(ctx context.Context, id int) (*booking.BookingWithDetails, error)
}

type Service interface {
	ListPayments(ctx context.Context, f ListFilter) ([]PaymentWithDetails, error)
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error)
}

type service struct {
	repo     Repository
	bookings BookingLookup
	notifier booking.Notifier
	now      func() time.Time
}

// NewService wires the payments ledger. notifier may be nil.
func NewService(repo Repository, bookings BookingLookup, notifier booking.Notifier) Service {
	return &service{
		repo:     repo,
		bookings: bookings,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *service) ListPayments(ctx context.Context, f ListFilter) ([]PaymentWithDetails, error) {
	return s.repo.ListPayments(ctx, f)
}

func (s *service) validate(req CreatePaymentRequest) (CreateParams, error) {
	if req.BookingID == nil || *req.BookingID == 0 ||
		req.Amount == nil || req.Amount.IsZero() ||
		strings.TrimSpace(req.PaymentMethod) == "" {
		return CreateParams{}, fmt.Errorf("%w: missing required fields", ErrInvalidPayment)
	}
	if req.Amount.IsNegative() {
		return CreateParams{}, fmt.Errorf("%w: amount must be positive", ErrInvalidPayment)
	}

	p := CreateParams{
		BookingID:     *req.BookingID,
		Amount:        *req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: StatusPending,
	}
	if req.PaymentStatus != "" {
		p.PaymentStatus = Status(req.PaymentStatus)
	}
	if !p.PaymentStatus.Valid() {
		return CreateParams{}, fmt.Errorf("%w: unknown payment status %q", ErrInvalidPayment, req.PaymentStatus)
	}
	if req.TransactionID != "" {
		txID := req.TransactionID
		p.TransactionID = &txID
	}
	if p.PaymentStatus == StatusCompleted {
		paidAt := s.now()
		p.PaidAt = &paidAt
	}
	return p, nil
}

func (s *service) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	params, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	payment, confirmed, err := s.repo.CreatePayment(ctx, params)
	if err != nil {
		return nil, err
	}

	metrics.RecordPayment(payment.PaymentMethod, string(payment.PaymentStatus))
	logger.Info("Payment recorded", "payment_id", payment.ID, "booking_id", payment.BookingID,
		"status", payment.PaymentStatus, "booking_confirmed", confirmed)

	if confirmed {
		metrics.RecordStatusChange(string(booking.StatusPending), string(booking.StatusConfirmed))
		s.notifyConfirmed(ctx, payment.BookingID)
	}

	return payment, nil
}

func (s *service) notifyConfirmed(ctx context.Context, bookingID int) {
	if s.notifier == nil {
		return
	}

	detail, err := s.bookings.GetBookingDetail(ctx, bookingID)
	if err != nil {
		logger.Warn("Could not load booking for notification", "booking_id", bookingID, "error", err)
		return
	}

	if err := s.notifier.SendBookingConfirmation(ctx, booking.NoticeFor(detail)); err != nil {
		logger.Warn("Could not queue booking email", "booking_id", bookingID, "error", err)
	}
}
