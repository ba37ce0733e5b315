package server

import (
	"github.com/jmoiron/sqlx"

	"github.com/SJ-Slasher/FMS/internal/booking"
	"github.com/SJ-Slasher/FMS/internal/court"
	"github.com/SJ-Slasher/FMS/internal/customer"
	"github.com/SJ-Slasher/FMS/internal/email"
	"github.com/SJ-Slasher/FMS/internal/payment"
	"github.com/SJ-Slasher/FMS/internal/report"
	"github.com/SJ-Slasher/FMS/internal/timeslot"
)

// Services holds every domain service the HTTP layer and background jobs use.
type Services struct {
	DB        *sqlx.DB
	Email     *email.Service
	Courts    court.Service
	Slots     timeslot.Service
	Customers customer.Service
	Bookings  booking.Service
	Payments  payment.Service
	Reports   report.Service
}

// NewServices wires repositories and services over one database handle.
// mailer may be nil, in which case no notifications are sent.
func NewServices(db *sqlx.DB, mailer *email.Service) *Services {
	var notifier booking.Notifier
	if mailer != nil {
		notifier = mailer
	}

	slotRepo := timeslot.NewRepository(db)
	bookingRepo := booking.NewRepository(db)

	return &Services{
		DB:        db,
		Email:     mailer,
		Courts:    court.NewService(court.NewRepository(db)),
		Slots:     timeslot.NewService(slotRepo),
		Customers: customer.NewService(customer.NewRepository(db)),
		Bookings:  booking.NewService(bookingRepo, slotRepo, notifier),
		Payments:  payment.NewService(payment.NewRepository(db), bookingRepo, notifier),
		Reports:   report.NewService(report.NewRepository(db)),
	}
}
