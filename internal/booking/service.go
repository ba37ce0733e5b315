package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SJ-Slasher/FMS/internal/db"
	"github.com/SJ-Slasher/FMS/internal/email"
	"github.com/SJ-Slasher/FMS/internal/logger"
	"github.com/SJ-Slasher/FMS/internal/metrics"
	"github.com/SJ-Slasher/FMS/internal/patch"
	"github.com/SJ-Slasher/FMS/internal/timeslot"
)

var (
	ErrInvalidRequest     = errors.New("invalid booking request")
	ErrSlotAlreadyBooked  = errors.New("this time slot is already booked")
	ErrStorageUnavailable = errors.New("booking storage unavailable")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrNoFieldsToUpdate   = patch.ErrNoFields
)

// SlotCatalog is the read side of the time slot store.
type SlotCatalog interface {
	ListTimeSlots(ctx context.Context, active *bool) ([]timeslot.TimeSlot, error)
}

type Notifier interface {
	SendBookingConfirmation(ctx context.Context, n email.BookingNotice) error
	SendBookingCancellation(ctx context.Context, n email.BookingNotice) error
}

type Service interface {
	GetAvailability(ctx context.Context, courtID int, date string) ([]SlotAvailability, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	ListBookings(ctx context.Context, f ListFilter) ([]BookingWithDetails, error)
	GetBooking(ctx context.Context, id int) (*BookingWithDetails, error)
	UpdateBooking(ctx context.Context, id int, req UpdateBookingRequest) (*Booking, error)
	CancelBooking(ctx context.Context, id int) (*Booking, error)
	DeleteBooking(ctx context.Context, id int) error
	CompletePastBookings(ctx context.Context, now time.Time) (int64, error)
}

type service struct {
	repo     Repository
	slots    SlotCatalog
	notifier Notifier
}

// NewService wires the booking engine. notifier may be nil.
func NewService(repo Repository, slots SlotCatalog, notifier Notifier) Service {
	return &service{
		repo:     repo,
		slots:    slots,
		notifier: notifier,
	}
}

func (s *service) GetAvailability(ctx context.Context, courtID int, date string) ([]SlotAvailability, error) {
	if courtID <= 0 || strings.TrimSpace(date) == "" {
		return nil, fmt.Errorf("%w: missing courtId or date", ErrInvalidRequest)
	}

	active := true
	slots, err := s.slots.ListTimeSlots(ctx, &active)
	if err != nil {
		return nil, s.storageError(err)
	}

	bookedIDs, err := s.repo.GetBookedSlotIDs(ctx, courtID, date)
	if err != nil {
		return nil, s.storageError(err)
	}

	booked := make(map[int]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	availability := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		_, taken := booked[slot.ID]
		availability = append(availability, SlotAvailability{
			TimeSlot:    slot,
			IsAvailable: !taken,
		})
	}

	metrics.RecordAvailabilityCheck()
	return availability, nil
}

// validate applies the creation rules. A zero amount is rejected the same
// way as a missing one.
func (req CreateBookingRequest) validate() (CreateParams, error) {
	if req.CourtID == nil || *req.CourtID == 0 ||
		req.CustomerID == nil || *req.CustomerID == 0 ||
		strings.TrimSpace(req.BookingDate) == "" ||
		req.TimeSlotID == nil || *req.TimeSlotID == 0 ||
		req.TotalAmount == nil || req.TotalAmount.IsZero() {
		return CreateParams{}, fmt.Errorf("%w: missing required fields", ErrInvalidRequest)
	}
	if req.TotalAmount.IsNegative() {
		return CreateParams{}, fmt.Errorf("%w: total_amount must not be negative", ErrInvalidRequest)
	}

	p := CreateParams{
		CourtID:     *req.CourtID,
		CustomerID:  *req.CustomerID,
		BookingDate: req.BookingDate,
		TimeSlotID:  *req.TimeSlotID,
		TotalAmount: *req.TotalAmount,
		Status:      StatusPending,
	}
	if req.Status != "" {
		p.Status = Status(req.Status)
	}
	if req.Notes != "" {
		notes := req.Notes
		p.Notes = &notes
	}
	return p, nil
}

func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	params, err := req.validate()
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindConflicting(ctx, params.CourtID, params.BookingDate, params.TimeSlotID)
	if err != nil {
		return nil, s.storageError(err)
	}
	if len(existing) > 0 {
		metrics.RecordBookingConflict(metrics.StagePrecheck)
		return nil, ErrSlotAlreadyBooked
	}

	booking, err := s.repo.CreateBooking(ctx, params)
	if err != nil {
		if errors.Is(err, ErrUniqueViolation) {
			metrics.RecordBookingConflict(metrics.StageConstraint)
			logger.Warn("Booking lost insert race",
				"court_id", params.CourtID, "date", params.BookingDate, "time_slot_id", params.TimeSlotID)
			return nil, ErrSlotAlreadyBooked
		}
		return nil, s.storageError(err)
	}

	metrics.RecordBookingCreated(string(booking.Status))
	logger.Info("Booking created", "booking_id", booking.ID, "court_id", booking.CourtID,
		"date", booking.BookingDate, "time_slot_id", booking.TimeSlotID, "status", booking.Status)

	if booking.Status == StatusConfirmed {
		s.notify(ctx, booking.ID, StatusConfirmed)
	}

	return booking, nil
}

func (s *service) ListBookings(ctx context.Context, f ListFilter) ([]BookingWithDetails, error) {
	bookings, err := s.repo.ListBookings(ctx, f)
	if err != nil {
		return nil, s.storageError(err)
	}
	return bookings, nil
}

func (s *service) GetBooking(ctx context.Context, id int) (*BookingWithDetails, error) {
	booking, err := s.repo.GetBookingDetail(ctx, id)
	if err != nil {
		return nil, s.storageError(err)
	}
	return booking, nil
}

// updatableFields lists every booking column a PUT may touch.
var updatableFields = patch.Set[UpdateBookingRequest, Booking]{
	{
		Name:    "status",
		Present: func(r *UpdateBookingRequest) bool { return r.Status != nil },
		Apply: func(r *UpdateBookingRequest, b *Booking) error {
			to := *r.Status
			if !to.Valid() {
				return fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, to)
			}
			if !CanTransition(b.Status, to) {
				return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, b.Status, to)
			}
			b.Status = to
			return nil
		},
	},
	{
		Name:    "notes",
		Present: func(r *UpdateBookingRequest) bool { return r.Notes != nil },
		Apply: func(r *UpdateBookingRequest, b *Booking) error {
			if *r.Notes == "" {
				b.Notes = nil
				return nil
			}
			notes := *r.Notes
			b.Notes = &notes
			return nil
		},
	},
	{
		Name:    "total_amount",
		Present: func(r *UpdateBookingRequest) bool { return r.TotalAmount != nil },
		Apply: func(r *UpdateBookingRequest, b *Booking) error {
			if r.TotalAmount.IsNegative() {
				return fmt.Errorf("%w: total_amount must not be negative", ErrInvalidRequest)
			}
			b.TotalAmount = *r.TotalAmount
			return nil
		},
	},
}

func (s *service) UpdateBooking(ctx context.Context, id int, req UpdateBookingRequest) (*Booking, error) {
	if len(updatableFields.Requested(&req)) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	var previous Status
	booking, err := s.repo.UpdateBooking(ctx, id, func(b *Booking) error {
		previous = b.Status
		return updatableFields.Apply(&req, b)
	})
	if err != nil {
		return nil, s.storageError(err)
	}

	if booking.Status != previous {
		metrics.RecordStatusChange(string(previous), string(booking.Status))
		logger.Info("Booking status changed", "booking_id", id, "from", previous, "to", booking.Status)
		s.notify(ctx, id, booking.Status)
	}

	return booking, nil
}

func (s *service) CancelBooking(ctx context.Context, id int) (*Booking, error) {
	cancelled := StatusCancelled
	return s.UpdateBooking(ctx, id, UpdateBookingRequest{Status: &cancelled})
}

func (s *service) DeleteBooking(ctx context.Context, id int) error {
	if err := s.repo.DeleteBooking(ctx, id); err != nil {
		return s.storageError(err)
	}
	logger.Info("Booking deleted", "booking_id", id)
	return nil
}

// CompletePastBookings closes out confirmed bookings whose day has passed.
func (s *service) CompletePastBookings(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.repo.CompletePastBookings(ctx, now.Format(time.DateOnly))
	if err != nil {
		return 0, s.storageError(err)
	}
	metrics.RecordAutoCompleted(n)
	return n, nil
}

// storageError maps repository failures onto the booking error set. Raw
// driver errors never leave the service.
func (s *service) storageError(err error) error {
	switch {
	case errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrSlotAlreadyBooked):
		return err
	case errors.Is(err, ErrUniqueViolation):
		return ErrSlotAlreadyBooked
	case db.IsInvalidInput(err):
		return fmt.Errorf("%w: invalid date", ErrInvalidRequest)
	case db.IsCheckViolation(err):
		return fmt.Errorf("%w: value rejected by %s", ErrInvalidRequest, db.ConstraintName(err))
	case db.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: unknown court, customer or time slot", ErrInvalidRequest)
	}

	logger.Error("Booking storage failure", "error", err)
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

// notify queues a customer email for a status the customer cares about.
// Failures are logged and never surface to the caller.
func (s *service) notify(ctx context.Context, id int, status Status) {
	if s.notifier == nil || (status != StatusConfirmed && status != StatusCancelled) {
		return
	}

	detail, err := s.repo.GetBookingDetail(ctx, id)
	if err != nil {
		logger.Warn("Could not load booking for notification", "booking_id", id, "error", err)
		return
	}

	notice := NoticeFor(detail)
	if status == StatusConfirmed {
		err = s.notifier.SendBookingConfirmation(ctx, notice)
	} else {
		err = s.notifier.SendBookingCancellation(ctx, notice)
	}
	if err != nil {
		logger.Warn("Could not queue booking email", "booking_id", id, "error", err)
	}
}

// NoticeFor builds the customer-facing summary of a booking.
func NoticeFor(b *BookingWithDetails) email.BookingNotice {
	return email.BookingNotice{
		BookingID:    b.ID,
		CustomerName: b.CustomerName,
		Email:        b.CustomerEmail,
		CourtName:    b.CourtName,
		Date:         b.BookingDate,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Amount:       b.TotalAmount,
	}
}
