package booking

import "context"

type Repository interface {
	GetBookedSlotIDs(ctx context.Context, courtID int, date string) ([]int, error)
	FindConflicting(ctx context.Context, courtID int, date string, timeSlotID int) ([]Booking, error)
	CreateBooking(ctx context.Context, p CreateParams) (*Booking, error)
	ListBookings(ctx context.Context, f ListFilter) ([]BookingWithDetails, error)
	GetBookingDetail(ctx context.Context, id int) (*BookingWithDetails, error)
	UpdateBooking(ctx context.Context, id int, mutate func(*Booking) error) (*Booking, error)
	DeleteBooking(ctx context.Context, id int) error
	CompletePastBookings(ctx context.Context, before string) (int64, error)
}
