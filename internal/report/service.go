package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/SJ-Slasher/FMS/internal/logger"
)

const (
	defaultWindowDays = 30
	topCustomerLimit  = 10
)

var ErrInvalidRange = errors.New("invalid date range")

type Service interface {
	BookingReport(ctx context.Context, startDate, endDate string) (*BookingReport, error)
	RevenueReport(ctx context.Context, startDate, endDate string) (*RevenueReport, error)
	UtilizationReport(ctx context.Context, startDate, endDate string) (*UtilizationReport, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// resolveRange fills in missing bounds: end defaults to today and start to
// 30 days before today.
func (s *service) resolveRange(startDate, endDate string) (DateRange, int, error) {
	today := s.now()

	end := today
	if endDate != "" {
		t, err := time.Parse(time.DateOnly, endDate)
		if err != nil {
			return DateRange{}, 0, fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrInvalidRange)
		}
		end = t
	}

	start := today.AddDate(0, 0, -defaultWindowDays)
	if startDate != "" {
		t, err := time.Parse(time.DateOnly, startDate)
		if err != nil {
			return DateRange{}, 0, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidRange)
		}
		start = t
	}

	dr := DateRange{Start: start.Format(time.DateOnly), End: end.Format(time.DateOnly)}

	// Re-parse so both bounds are midnight UTC before counting days.
	s0, _ := time.Parse(time.DateOnly, dr.Start)
	e0, _ := time.Parse(time.DateOnly, dr.End)
	if e0.Before(s0) {
		return DateRange{}, 0, fmt.Errorf("%w: startDate is after endDate", ErrInvalidRange)
	}
	days := int(e0.Sub(s0).Hours()/24) + 1

	return dr, days, nil
}

func (s *service) BookingReport(ctx context.Context, startDate, endDate string) (*BookingReport, error) {
	dr, _, err := s.resolveRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	report := &BookingReport{DateRange: dr}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.repo.BookingSummary(gctx, dr)
		if err != nil {
			return fmt.Errorf("booking summary: %w", err)
		}
		report.Summary = *summary
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.BookingsByCourt(gctx, dr)
		if err != nil {
			return fmt.Errorf("bookings by court: %w", err)
		}
		report.ByCourt = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.BookingsByDay(gctx, dr)
		if err != nil {
			return fmt.Errorf("bookings by day: %w", err)
		}
		report.ByDay = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.TopCustomers(gctx, dr, topCustomerLimit)
		if err != nil {
			return fmt.Errorf("top customers: %w", err)
		}
		report.TopCustomers = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Failed to generate booking report", "start", dr.Start, "end", dr.End, "error", err)
		return nil, err
	}

	return report, nil
}

func (s *service) RevenueReport(ctx context.Context, startDate, endDate string) (*RevenueReport, error) {
	dr, _, err := s.resolveRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	report := &RevenueReport{DateRange: dr}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.repo.RevenueSummary(gctx, dr)
		if err != nil {
			return fmt.Errorf("revenue summary: %w", err)
		}
		report.Summary = *summary
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.RevenueByMethod(gctx, dr)
		if err != nil {
			return fmt.Errorf("revenue by method: %w", err)
		}
		report.ByPaymentMethod = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.RevenueByDay(gctx, dr)
		if err != nil {
			return fmt.Errorf("revenue by day: %w", err)
		}
		report.DailyRevenue = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.RevenueByCourtType(gctx, dr)
		if err != nil {
			return fmt.Errorf("revenue by court type: %w", err)
		}
		report.ByCourtType = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Failed to generate revenue report", "start", dr.Start, "end", dr.End, "error", err)
		return nil, err
	}

	return report, nil
}

// UtilizationReport compares each active court's booked slots with its
// capacity, which is the active slot count times the days in range.
func (s *service) UtilizationReport(ctx context.Context, startDate, endDate string) (*UtilizationReport, error) {
	dr, days, err := s.resolveRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	var (
		loads       []CourtLoad
		activeSlots int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		loads, err = s.repo.CourtLoads(gctx, dr)
		return err
	})
	g.Go(func() error {
		var err error
		activeSlots, err = s.repo.CountActiveSlots(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to generate utilization report", "start", dr.Start, "end", dr.End, "error", err)
		return nil, err
	}

	capacity := activeSlots * days
	courts := make([]CourtUtilization, 0, len(loads))
	for _, l := range loads {
		pct := decimal.Zero
		if capacity > 0 {
			pct = decimal.NewFromInt(int64(l.BookedSlots)).
				Mul(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(int64(capacity))).
				Round(1)
		}
		courts = append(courts, CourtUtilization{
			CourtLoad:      l,
			CapacitySlots:  capacity,
			UtilizationPct: pct,
		})
	}

	return &UtilizationReport{
		Courts:      courts,
		ActiveSlots: activeSlots,
		Days:        days,
		DateRange:   dr,
	}, nil
}
