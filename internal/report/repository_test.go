package report

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var june = DateRange{Start: "2024-06-01", End: "2024-06-30"}

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

func TestBookingSummary(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE booking_date BETWEEN $1::date AND $2::date")).
		WithArgs("2024-06-01", "2024-06-30").
		WillReturnRows(sqlmock.NewRows([]string{
			"total_bookings", "confirmed_bookings", "pending_bookings",
			"cancelled_bookings", "completed_bookings", "total_revenue",
		}).AddRow(10, 4, 3, 2, 1, "500.00"))

	s, err := repo.BookingSummary(context.Background(), june)
	require.NoError(t, err)
	assert.Equal(t, 10, s.TotalBookings)
	assert.Equal(t, 2, s.CancelledBookings)
	assert.Equal(t, "500", s.TotalRevenue.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopCustomers_PassesLimit(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $3")).
		WithArgs("2024-06-01", "2024-06-30", 10).
		WillReturnRows(sqlmock.NewRows([]string{"full_name", "email", "booking_count", "total_spent"}).
			AddRow("Alice", "alice@example.com", 5, "250.00"))

	rows, err := repo.TopCustomers(context.Background(), june, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].FullName)
}

func TestRevenueByMethod_OnlyCompleted(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("AND p.payment_status = 'completed' GROUP BY p.payment_method")).
		WithArgs("2024-06-01", "2024-06-30").
		WillReturnRows(sqlmock.NewRows([]string{"payment_method", "payment_count", "total_amount"}).
			AddRow("card", 3, "150.00").
			AddRow("cash", 1, "50.00"))

	rows, err := repo.RevenueByMethod(context.Background(), june)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestCourtLoads_IncludesIdleCourts(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN bookings b ON b.court_id = c.id AND b.status <> 'cancelled'")).
		WithArgs("2024-06-01", "2024-06-30").
		WillReturnRows(sqlmock.NewRows([]string{"court_id", "court_name", "booked_slots"}).
			AddRow(1, "Arena A", 12).
			AddRow(2, "Arena B", 0))

	rows, err := repo.CourtLoads(context.Background(), june)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[1].BookedSlots)
}

func TestCountActiveSlots(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM time_slots WHERE is_active = TRUE")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(14))

	n, err := repo.CountActiveSlots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 14, n)
}
