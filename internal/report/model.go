package report

import "github.com/shopspring/decimal"

// DateRange is inclusive on both ends, formatted YYYY-MM-DD.
type DateRange struct {
	Start string `json:"start" example:"2024-06-01"`
	End   string `json:"end" example:"2024-06-30"`
}

type BookingSummary struct {
	TotalBookings     int             `db:"total_bookings" json:"total_bookings"`
	ConfirmedBookings int             `db:"confirmed_bookings" json:"confirmed_bookings"`
	PendingBookings   int             `db:"pending_bookings" json:"pending_bookings"`
	CancelledBookings int             `db:"cancelled_bookings" json:"cancelled_bookings"`
	CompletedBookings int             `db:"completed_bookings" json:"completed_bookings"`
	TotalRevenue      decimal.Decimal `db:"total_revenue" json:"total_revenue" swaggertype:"string"`
}

type CourtBookings struct {
	CourtName    string          `db:"court_name" json:"court_name"`
	BookingCount int             `db:"booking_count" json:"booking_count"`
	Revenue      decimal.Decimal `db:"revenue" json:"revenue" swaggertype:"string"`
}

type DailyBookings struct {
	BookingDate  string          `db:"booking_date" json:"booking_date"`
	BookingCount int             `db:"booking_count" json:"booking_count"`
	DailyRevenue decimal.Decimal `db:"daily_revenue" json:"daily_revenue" swaggertype:"string"`
}

type CustomerSpend struct {
	FullName     string          `db:"full_name" json:"full_name"`
	Email        string          `db:"email" json:"email"`
	BookingCount int             `db:"booking_count" json:"booking_count"`
	TotalSpent   decimal.Decimal `db:"total_spent" json:"total_spent" swaggertype:"string"`
}

type BookingReport struct {
	Summary      BookingSummary  `json:"summary"`
	ByCourt      []CourtBookings `json:"by_court"`
	ByDay        []DailyBookings `json:"by_day"`
	TopCustomers []CustomerSpend `json:"top_customers"`
	DateRange    DateRange       `json:"date_range"`
}

type RevenueSummary struct {
	TotalRevenue     decimal.Decimal `db:"total_revenue" json:"total_revenue" swaggertype:"string"`
	TotalPayments    int             `db:"total_payments" json:"total_payments"`
	CompletedRevenue decimal.Decimal `db:"completed_revenue" json:"completed_revenue" swaggertype:"string"`
	PendingRevenue   decimal.Decimal `db:"pending_revenue" json:"pending_revenue" swaggertype:"string"`
	RefundedAmount   decimal.Decimal `db:"refunded_amount" json:"refunded_amount" swaggertype:"string"`
	AveragePayment   decimal.Decimal `db:"average_payment" json:"average_payment" swaggertype:"string"`
}

type MethodRevenue struct {
	PaymentMethod string          `db:"payment_method" json:"payment_method"`
	PaymentCount  int             `db:"payment_count" json:"payment_count"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount" swaggertype:"string"`
}

type DailyRevenue struct {
	BookingDate  string          `db:"booking_date" json:"booking_date"`
	Revenue      decimal.Decimal `db:"revenue" json:"revenue" swaggertype:"string"`
	PaymentCount int             `db:"payment_count" json:"payment_count"`
}

type CourtTypeRevenue struct {
	CourtType    string          `db:"court_type" json:"court_type"`
	BookingCount int             `db:"booking_count" json:"booking_count"`
	Revenue      decimal.Decimal `db:"revenue" json:"revenue" swaggertype:"string"`
}

type RevenueReport struct {
	Summary         RevenueSummary     `json:"summary"`
	ByPaymentMethod []MethodRevenue    `json:"by_payment_method"`
	DailyRevenue    []DailyRevenue     `json:"daily_revenue"`
	ByCourtType     []CourtTypeRevenue `json:"by_court_type"`
	DateRange       DateRange          `json:"date_range"`
}

// CourtLoad is the raw booked-slot count for one active court.
type CourtLoad struct {
	CourtID     int    `db:"court_id" json:"court_id"`
	CourtName   string `db:"court_name" json:"court_name"`
	BookedSlots int    `db:"booked_slots" json:"booked_slots"`
}

type CourtUtilization struct {
	CourtLoad
	CapacitySlots  int             `json:"capacity_slots"`
	UtilizationPct decimal.Decimal `json:"utilization_pct" swaggertype:"string" example:"42.5"`
}

type UtilizationReport struct {
	Courts      []CourtUtilization `json:"courts"`
	ActiveSlots int                `json:"active_slots"`
	Days        int                `json:"days"`
	DateRange   DateRange          `json:"date_range"`
}
