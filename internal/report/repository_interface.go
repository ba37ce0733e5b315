package report

import "context"

// Repository runs the aggregate queries behind each report section. Every
// query is bounded by booking_date within the range.
type Repository interface {
	BookingSummary(ctx context.Context, r DateRange) (*BookingSummary, error)
	BookingsByCourt(ctx context.Context, r DateRange) ([]CourtBookings, error)
	BookingsByDay(ctx context.Context, r DateRange) ([]DailyBookings, error)
	TopCustomers(ctx context.Context, r DateRange, limit int) ([]CustomerSpend, error)

	RevenueSummary(ctx context.Context, r DateRange) (*RevenueSummary, error)
	RevenueByMethod(ctx context.Context, r DateRange) ([]MethodRevenue, error)
	RevenueByDay(ctx context.Context, r DateRange) ([]DailyRevenue, error)
	RevenueByCourtType(ctx context.Context, r DateRange) ([]CourtTypeRevenue, error)

	CourtLoads(ctx context.Context, r DateRange) ([]CourtLoad, error)
	CountActiveSlots(ctx context.Context) (int, error)
}
