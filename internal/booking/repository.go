package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SJ-Slasher/FMS/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	// ErrUniqueViolation means the store refused a second active booking for
	// the same court, date and slot.
	ErrUniqueViolation = errors.New("active booking already exists for slot")
)

const bookingColumns = `id, court_id, customer_id, booking_date::text AS booking_date, time_slot_id,
	total_amount, status, notes, created_at, updated_at`

const detailSelect = `
	SELECT
		b.id, b.court_id, b.customer_id, b.booking_date::text AS booking_date, b.time_slot_id,
		b.total_amount, b.status, b.notes, b.created_at, b.updated_at,
		c.name AS court_name,
		c.court_type,
		u.full_name AS customer_name,
		u.email AS customer_email,
		u.phone AS customer_phone,
		ts.start_time::text AS start_time,
		ts.end_time::text AS end_time
	FROM bookings b
	JOIN courts c ON b.court_id = c.id
	JOIN users u ON b.customer_id = u.id
	JOIN time_slots ts ON b.time_slot_id = ts.id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetBookedSlotIDs(ctx context.Context, courtID int, date string) ([]int, error) {
	query := `
		SELECT time_slot_id
		FROM bookings
		WHERE court_id = $1
		AND booking_date = $2
		AND status <> 'cancelled'
	`

	ids := []int{}
	if err := r.db.SelectContext(ctx, &ids, query, courtID, date); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *repository) FindConflicting(ctx context.Context, courtID int, date string, timeSlotID int) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE court_id = $1
		AND booking_date = $2
		AND time_slot_id = $3
		AND status <> 'cancelled'
	`

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, courtID, date, timeSlotID); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) CreateBooking(ctx context.Context, p CreateParams) (*Booking, error) {
	query := `
		INSERT INTO bookings (court_id, customer_id, booking_date, time_slot_id, total_amount, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + bookingColumns

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query,
		p.CourtID, p.CustomerID, p.BookingDate, p.TimeSlotID, p.TotalAmount, p.Status, p.Notes)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w (%s)", ErrUniqueViolation, db.ConstraintName(err))
		}
		return nil, err
	}

	return &booking, nil
}

func (r *repository) ListBookings(ctx context.Context, f ListFilter) ([]BookingWithDetails, error) {
	query := detailSelect + `
		WHERE ($1::int IS NULL OR b.court_id = $1)
		AND ($2::int IS NULL OR b.customer_id = $2)
		AND ($3::text IS NULL OR b.status = $3)
		AND ($4::date IS NULL OR b.booking_date = $4)
		AND ($5::date IS NULL OR $6::date IS NULL OR b.booking_date BETWEEN $5 AND $6)
		ORDER BY b.booking_date DESC, ts.start_time DESC
	`

	bookings := []BookingWithDetails{}
	err := r.db.SelectContext(ctx, &bookings, query,
		db.NullInt(f.CourtID),
		db.NullInt(f.CustomerID),
		db.NullString(f.Status),
		db.NullString(f.Date),
		db.NullString(f.StartDate),
		db.NullString(f.EndDate),
	)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetBookingDetail(ctx context.Context, id int) (*BookingWithDetails, error) {
	query := detailSelect + `WHERE b.id = $1`

	var booking BookingWithDetails
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

// UpdateBooking locks the row, lets mutate change the loaded record and
// writes the result back in one transaction.
func (r *repository) UpdateBooking(ctx context.Context, id int, mutate func(*Booking) error) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var booking Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := mutate(&booking); err != nil {
		return nil, err
	}

	var updated Booking
	query = `
		UPDATE bookings
		SET status = $1, notes = $2, total_amount = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + bookingColumns
	err = tx.GetContext(ctx, &updated, query, booking.Status, booking.Notes, booking.TotalAmount, id)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w (%s)", ErrUniqueViolation, db.ConstraintName(err))
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) DeleteBooking(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CompletePastBookings marks confirmed bookings dated before the given day
// as completed.
func (r *repository) CompletePastBookings(ctx context.Context, before string) (int64, error) {
	query := `
		UPDATE bookings
		SET status = 'completed', updated_at = NOW()
		WHERE status = 'confirmed'
		AND booking_date < $1::date
	`

	result, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
