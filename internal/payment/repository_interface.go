package payment

import "context"

type Repository interface {
	ListPayments(ctx context.Context, f ListFilter) ([]PaymentWithDetails, error)
	// CreatePayment reports whether recording the payment confirmed a pending
	// booking.
	CreatePayment(ctx context.Context, p CreateParams) (*Payment, bool, error)
}
