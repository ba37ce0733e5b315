package payment

import (
	"context"
	"errors"

	"github.com/SJ-Slasher/FMS/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrBookingNotFound = errors.New("booking not found")

const paymentColumns = `id, booking_id, amount, payment_method, payment_status, transaction_id, paid_at, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListPayments(ctx context.Context, f ListFilter) ([]PaymentWithDetails, error) {
	query := `
		SELECT
			p.id, p.booking_id, p.amount, p.payment_method, p.payment_status,
			p.transaction_id, p.paid_at, p.created_at,
			b.booking_date::text AS booking_date,
			c.name AS court_name,
			u.full_name AS customer_name
		FROM payments p
		JOIN bookings b ON p.booking_id = b.id
		JOIN courts c ON b.court_id = c.id
		JOIN users u ON b.customer_id = u.id
		WHERE ($1::int IS NULL OR p.booking_id = $1)
		AND ($2::text IS NULL OR p.payment_status = $2)
		ORDER BY p.created_at DESC
	`

	payments := []PaymentWithDetails{}
	if err := r.db.SelectContext(ctx, &payments, query, db.NullInt(f.BookingID), db.NullString(f.Status)); err != nil {
		return nil, err
	}

	return payments, nil
}

// CreatePayment inserts the payment and, for a completed payment, confirms
// the booking if it is still pending. Both happen in one transaction.
func (r *repository) CreatePayment(ctx context.Context, p CreateParams) (*Payment, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO payments (booking_id, amount, payment_method, payment_status, transaction_id, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + paymentColumns

	var payment Payment
	err = tx.GetContext(ctx, &payment, query,
		p.BookingID, p.Amount, p.PaymentMethod, p.PaymentStatus, p.TransactionID, p.PaidAt)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, false, ErrBookingNotFound
		}
		return nil, false, err
	}

	confirmed := false
	if p.PaymentStatus == StatusCompleted {
		result, err := tx.ExecContext(ctx, `
			UPDATE bookings
			SET status = 'confirmed', updated_at = NOW()
			WHERE id = $1 AND status = 'pending'
		`, p.BookingID)
		if err != nil {
			return nil, false, err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return nil, false, err
		}
		confirmed = n > 0
	}

	if err := tx.Commit(); err != nil {
		return nil, false, err
	}

	return &payment, confirmed, nil
}
