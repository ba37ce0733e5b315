package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

type Payment struct {
	ID            int             `db:"id" json:"id"`
	BookingID     int             `db:"booking_id" json:"booking_id"`
	Amount        decimal.Decimal `db:"amount" json:"amount" swaggertype:"string" example:"50.00"`
	PaymentMethod string          `db:"payment_method" json:"payment_method" example:"cash"`
	PaymentStatus Status          `db:"payment_status" json:"payment_status" example:"completed"`
	TransactionID *string         `db:"transaction_id" json:"transaction_id"`
	PaidAt        *time.Time      `db:"paid_at" json:"paid_at"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

type PaymentWithDetails struct {
	Payment
	BookingDate  string `db:"booking_date" json:"booking_date"`
	CourtName    string `db:"court_name" json:"court_name"`
	CustomerName string `db:"customer_name" json:"customer_name"`
}

type CreatePaymentRequest struct {
	BookingID     *int             `json:"booking_id"`
	Amount        *decimal.Decimal `json:"amount" swaggertype:"number"`
	PaymentMethod string           `json:"payment_method" example:"card"`
	PaymentStatus string           `json:"payment_status,omitempty" example:"completed"`
	TransactionID string           `json:"transaction_id,omitempty"`
}

// CreateParams is a validated payment ready for insertion.
type CreateParams struct {
	BookingID     int
	Amount        decimal.Decimal
	PaymentMethod string
	PaymentStatus Status
	TransactionID *string
	PaidAt        *time.Time
}

type ListFilter struct {
	BookingID int
	Status    string
}
