package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SJ-Slasher/FMS/internal/booking"
	"github.com/SJ-Slasher/FMS/internal/report"
)

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCompletedPaymentConfirmsPendingBooking(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/bookings", bookingBody(f, f.slotIDs[0], "2030-02-01"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct{ Booking booking.Booking }
	decode(t, w, &created)

	w = f.do(t, http.MethodPost, "/api/payments", map[string]interface{}{
		"booking_id":     created.Booking.ID,
		"amount":         "50.00",
		"payment_method": "card",
		"payment_status": "completed",
		"transaction_id": "tx-100",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"paid_at":"`)

	var detail struct{ Booking booking.BookingWithDetails }
	decode(t, f.do(t, http.MethodGet, fmt.Sprintf("/api/bookings/%d", created.Booking.ID), nil), &detail)
	assert.Equal(t, booking.StatusConfirmed, detail.Booking.Status)

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/payments?bookingId=%d", created.Booking.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"court_name":"Arena A"`)
}

func TestPaymentForUnknownBooking(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/payments", map[string]interface{}{
		"booking_id": 4242, "amount": "10", "payment_method": "cash",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReports(t *testing.T) {
	f := newFixture(t)

	for i, slot := range f.slotIDs[:2] {
		w := f.do(t, http.MethodPost, "/api/bookings", bookingBody(f, slot, "2030-03-01"))
		require.Equal(t, http.StatusCreated, w.Code)
		var created struct{ Booking booking.Booking }
		decode(t, w, &created)

		if i == 0 {
			w = f.do(t, http.MethodPost, "/api/payments", map[string]interface{}{
				"booking_id": created.Booking.ID, "amount": "50", "payment_method": "cash", "payment_status": "completed",
			})
			require.Equal(t, http.StatusCreated, w.Code)
		}
	}

	var bookings report.BookingReport
	decode(t, f.do(t, http.MethodGet, "/api/reports/bookings?startDate=2030-03-01&endDate=2030-03-01", nil), &bookings)
	assert.Equal(t, 2, bookings.Summary.TotalBookings)
	assert.Equal(t, 1, bookings.Summary.ConfirmedBookings)
	assert.Equal(t, "100", bookings.Summary.TotalRevenue.String())
	require.Len(t, bookings.TopCustomers, 1)
	assert.Equal(t, "Alice Doe", bookings.TopCustomers[0].FullName)

	var revenue report.RevenueReport
	decode(t, f.do(t, http.MethodGet, "/api/reports/revenue?startDate=2030-03-01&endDate=2030-03-01", nil), &revenue)
	assert.Equal(t, "50", revenue.Summary.CompletedRevenue.String())
	require.Len(t, revenue.ByPaymentMethod, 1)
	assert.Equal(t, "cash", revenue.ByPaymentMethod[0].PaymentMethod)

	var util report.UtilizationReport
	decode(t, f.do(t, http.MethodGet, "/api/reports/utilization?startDate=2030-03-01&endDate=2030-03-01", nil), &util)
	require.Len(t, util.Courts, 1)
	assert.Equal(t, 2, util.Courts[0].BookedSlots)
	assert.Equal(t, 3, util.Courts[0].CapacitySlots)
	assert.Equal(t, "66.7", util.Courts[0].UtilizationPct.String())
}
