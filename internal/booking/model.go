package booking

import (
	"time"

	"github.com/SJ-Slasher/FMS/internal/timeslot"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Booking struct {
	ID          int             `db:"id" json:"id"`
	CourtID     int             `db:"court_id" json:"court_id"`
	CustomerID  int             `db:"customer_id" json:"customer_id"`
	BookingDate string          `db:"booking_date" json:"booking_date" example:"2024-06-01"`
	TimeSlotID  int             `db:"time_slot_id" json:"time_slot_id"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount" swaggertype:"string" example:"50.00"`
	Status      Status          `db:"status" json:"status" example:"pending"`
	Notes       *string         `db:"notes" json:"notes"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// BookingWithDetails is a booking joined with its court, customer and slot.
type BookingWithDetails struct {
	Booking
	CourtName     string  `db:"court_name" json:"court_name"`
	CourtType     string  `db:"court_type" json:"court_type,omitempty"`
	CustomerName  string  `db:"customer_name" json:"customer_name"`
	CustomerEmail string  `db:"customer_email" json:"customer_email"`
	CustomerPhone *string `db:"customer_phone" json:"customer_phone,omitempty"`
	StartTime     string  `db:"start_time" json:"start_time"`
	EndTime       string  `db:"end_time" json:"end_time"`
}

type SlotAvailability struct {
	timeslot.TimeSlot
	IsAvailable bool `json:"is_available"`
}

// CreateBookingRequest uses pointers so that absent and zero can both be
// rejected.
type CreateBookingRequest struct {
	CourtID     *int             `json:"court_id"`
	CustomerID  *int             `json:"customer_id"`
	BookingDate string           `json:"booking_date" example:"2024-06-01"`
	TimeSlotID  *int             `json:"time_slot_id"`
	TotalAmount *decimal.Decimal `json:"total_amount" swaggertype:"number"`
	Status      string           `json:"status,omitempty" example:"pending"`
	Notes       string           `json:"notes,omitempty"`
}

type UpdateBookingRequest struct {
	Status      *Status          `json:"status"`
	Notes       *string          `json:"notes"`
	TotalAmount *decimal.Decimal `json:"total_amount" swaggertype:"number"`
}

// CreateParams is a validated booking ready for insertion.
type CreateParams struct {
	CourtID     int
	CustomerID  int
	BookingDate string
	TimeSlotID  int
	TotalAmount decimal.Decimal
	Status      Status
	Notes       *string
}

// ListFilter narrows ListBookings. Zero values mean "any".
type ListFilter struct {
	CourtID    int
	CustomerID int
	Status     string
	Date       string
	StartDate  string
	EndDate    string
}
