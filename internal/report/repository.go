package report

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) BookingSummary(ctx context.Context, dr DateRange) (*BookingSummary, error) {
	query := `
		SELECT
			COUNT(*) AS total_bookings,
			COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed_bookings,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending_bookings,
			COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled_bookings,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed_bookings,
			COALESCE(SUM(total_amount), 0) AS total_revenue
		FROM bookings
		WHERE booking_date BETWEEN $1::date AND $2::date
	`

	var s BookingSummary
	if err := r.db.GetContext(ctx, &s, query, dr.Start, dr.End); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) BookingsByCourt(ctx context.Context, dr DateRange) ([]CourtBookings, error) {
	query := `
		SELECT c.name AS court_name, COUNT(*) AS booking_count, COALESCE(SUM(b.total_amount), 0) AS revenue
		FROM bookings b
		JOIN courts c ON b.court_id = c.id
		WHERE b.booking_date BETWEEN $1::date AND $2::date
		GROUP BY c.id, c.name
		ORDER BY booking_count DESC, c.name
	`

	rows := []CourtBookings{}
	if err := r.db.SelectContext(ctx, &rows, query, dr.Start, dr.End); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) BookingsByDay(ctx context.Context, dr DateRange) ([]DailyBookings, error) {
	query := `
		SELECT booking_date::text AS booking_date, COUNT(*) AS booking_count, COALESCE(SUM(total_amount), 0) AS daily_revenue
		FROM bookings
		WHERE booking_date BETWEEN $1::date AND $2::date
		GROUP BY booking_date
		ORDER BY booking_date ASC
	`

	rows := []DailyBookings{}
	if err := r.db.SelectContext(ctx, &rows, query, dr.Start, dr.End); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) TopCustomers(ctx context.Context, dr DateRange, limit int) ([]CustomerSpend, error) {
	query := `
		SELECT u.full_name, u.email, COUNT(*) AS booking_count, COALESCE(SUM(b.total_amount), 0) AS total_spent
		FROM bookings b
		JOIN users u ON b.customer_id = u.id
		WHERE b.booking_date BETWEEN $1::date AND $2::date
		GROUP BY u.id, u.full_name, u.email
		ORDER BY booking_count DESC, total_spent DESC
		LIMIT $3
	`

	rows := []CustomerSpend{}
	if err := r.db.SelectContext(ctx, &rows, query, dr.Start, dr.End, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) RevenueSummary(ctx context.Context, dr DateRange) (*RevenueSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(p.amount), 0) AS total_revenue,
			COUNT(*) AS total_payments,
			COALESCE(SUM(p.amount) FILTER (WHERE p.payment_status = 'completed'), 0) AS completed_revenue,
			COALESCE(SUM(p.amount) FILTER (WHERE p.payment_status = 'pending'), 0) AS pending_revenue,
			COALESCE(SUM(p.amount) FILTER (WHERE p.payment_status = 'refunded'), 0) AS refunded_amount,
			COALESCE(ROUND(AVG(p.amount), 2), 0) AS average_payment
		FROM payments p
		JOIN bookings b ON p.booking_id = b.id
		WHERE b.booking_date BETWEEN $1::date AND $2::date
	`

	var s RevenueSummary
	if err := r.db.GetContext(ctx, &s, query, dr.Start, dr.End); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) RevenueByMethod(ctx context.Context, dr DateRange) ([]MethodRevenue, error) {
	query := `
		SELECT p.payment_method, COUNT(*) AS payment_count, SUM(p.amount) AS total_amount
		FROM payments p
		JOIN bookings b ON p.booking_id = b.id
		WHERE b.booking_date BETWEEN $1::date AND $2::date
		AND p.payment_status = 'completed'
		GROUP BY p.payment_method
		ORDER BY total_amount DESC
	`

	rows := []MethodRevenue{}
	if err := r.db.SelectContext(ctx, &rows, query, dr.Start, dr.End); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) RevenueByDay(ctx context.Context, dr DateRange) ([]DailyRevenue, error) {
	query := `
		SELECT b.booking_date::text AS booking_date, SUM(p.amount) AS revenue, COUNT(*) AS payment_count
		FROM payments p
		JOIN bookings b ON p.booking_id = b.id
		WHERE b.booking_date BETWEEN $1::date AND $2::date
		AND p.payment_status = 'completed'
		GROUP BY b.booking_date
		ORDER BY b.booking_date ASC
	`

	rows := []DailyRevenue{}
	if err := r.db.SelectContext(ctx, &rows, query, dr.Start, dr.End); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) RevenueByCourtType(ctx context.Context, dr DateRange) ([]CourtTypeRevenue, error) {
	query := `
		SELECT c.court_type, COUNT(*) AS booking_count, SUM(p.amount) AS revenue
		FROM payments p
		JOIN bookings b ON p.booking_id = b.id
		JOIN courts c ON b.court_id = c.id
		WHERE b.booking_date BETWEEN $1::date AND $2::date
		AND p.payment_status = 'completed'
		GROUP BY c.court_type
		ORDER BY revenue DESC
	`

	rows := []CourtTypeRevenue{}
	if err := r.db.SelectContext(ctx, &rows, query, dr.Start, dr.End); err != nil {
		return nil, err
	}
	return rows, nil
}

// CourtLoads counts non-cancelled bookings per active court, including
// courts with none.
func (r *repository) CourtLoads(ctx context.Context, dr DateRange) ([]CourtLoad, error) {
	query := `
		SELECT c.id AS court_id, c.name AS court_name, COUNT(b.id) AS booked_slots
		FROM courts c
		LEFT JOIN bookings b ON b.court_id = c.id
			AND b.status <> 'cancelled'
			AND b.booking_date BETWEEN $1::date AND $2::date
		WHERE c.is_active = TRUE
		GROUP BY c.id, c.name
		ORDER BY c.name
	`

	rows := []CourtLoad{}
	if err := r.db.SelectContext(ctx, &rows, query, dr.Start, dr.End); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CountActiveSlots(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM time_slots WHERE is_active = TRUE`)
	return n, err
}
