package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/SJ-Slasher/FMS/internal/api"
	"github.com/SJ-Slasher/FMS/internal/court"
	"github.com/SJ-Slasher/FMS/internal/customer"
	"github.com/SJ-Slasher/FMS/internal/db"
	"github.com/SJ-Slasher/FMS/internal/logger"
	"github.com/SJ-Slasher/FMS/internal/timeslot"
)

// Catalog is the YAML layout of a seed file.
type Catalog struct {
	Courts    []Court    `yaml:"courts" validate:"dive"`
	TimeSlots []Slot     `yaml:"time_slots" validate:"dive"`
	Customers []Customer `yaml:"customers" validate:"dive"`
}

type Court struct {
	Name         string `yaml:"name" validate:"required"`
	Description  string `yaml:"description"`
	CourtType    string `yaml:"court_type" validate:"required"`
	PricePerHour string `yaml:"price_per_hour" validate:"required"`
	Active       *bool  `yaml:"active"`
}

type Slot struct {
	Start string `yaml:"start" validate:"required,datetime=15:04"`
	End   string `yaml:"end" validate:"required,datetime=15:04"`
}

type Customer struct {
	FullName string `yaml:"full_name" validate:"required"`
	Email    string `yaml:"email" validate:"required,email"`
	Phone    string `yaml:"phone"`
}

type CourtCreator interface {
	CreateCourt(ctx context.Context, req court.CreateCourtRequest) (*court.Court, error)
}

type SlotCreator interface {
	CreateTimeSlot(ctx context.Context, req timeslot.CreateTimeSlotRequest) (*timeslot.TimeSlot, error)
}

type CustomerCreator interface {
	CreateCustomer(ctx context.Context, req customer.CreateCustomerRequest) (*customer.Customer, error)
}

// Load reads, decodes and validates a seed file. Unknown keys are rejected.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error parsing seed file: %w", err)
	}
	if errs := api.ValidateStruct(&c); len(errs) > 0 {
		return nil, fmt.Errorf("invalid seed file: %s", errs[0].Message)
	}
	return &c, nil
}

type Seeder struct {
	db        sqlx.QueryerContext
	courts    CourtCreator
	slots     SlotCreator
	customers CustomerCreator
}

func NewSeeder(q sqlx.QueryerContext, courts CourtCreator, slots SlotCreator, customers CustomerCreator) *Seeder {
	return &Seeder{db: q, courts: courts, slots: slots, customers: customers}
}

// Run seeds the catalog from path when no time slots exist yet. An empty path
// is a no-op.
func (s *Seeder) Run(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	seeded, err := db.Exists(ctx, s.db, "SELECT EXISTS(SELECT 1 FROM time_slots)")
	if err != nil {
		return fmt.Errorf("failed to check catalog: %w", err)
	}
	if seeded {
		logger.Info("Catalog already populated, skipping seed", "file", path)
		return nil
	}

	catalog, err := Load(path)
	if err != nil {
		return err
	}
	return s.Apply(ctx, catalog)
}

// Apply creates every entry through the regular services so seed data obeys
// the same validation as API input. Duplicate customer emails are skipped.
func (s *Seeder) Apply(ctx context.Context, c *Catalog) error {
	for _, sc := range c.Courts {
		price, err := decimal.NewFromString(strings.TrimSpace(sc.PricePerHour))
		if err != nil {
			return fmt.Errorf("court %q: invalid price_per_hour %q", sc.Name, sc.PricePerHour)
		}
		req := court.CreateCourtRequest{
			Name:         sc.Name,
			CourtType:    sc.CourtType,
			PricePerHour: &price,
			IsActive:     sc.Active,
		}
		if sc.Description != "" {
			desc := sc.Description
			req.Description = &desc
		}
		if _, err := s.courts.CreateCourt(ctx, req); err != nil {
			return fmt.Errorf("court %q: %w", sc.Name, err)
		}
	}

	for _, sl := range c.TimeSlots {
		req := timeslot.CreateTimeSlotRequest{StartTime: sl.Start, EndTime: sl.End}
		if _, err := s.slots.CreateTimeSlot(ctx, req); err != nil {
			return fmt.Errorf("time slot %s-%s: %w", sl.Start, sl.End, err)
		}
	}

	for _, cu := range c.Customers {
		req := customer.CreateCustomerRequest{FullName: cu.FullName, Email: cu.Email}
		if cu.Phone != "" {
			phone := cu.Phone
			req.Phone = &phone
		}
		if _, err := s.customers.CreateCustomer(ctx, req); err != nil {
			if errors.Is(err, customer.ErrEmailExists) {
				logger.Warn("Seed customer already exists", "email", cu.Email)
				continue
			}
			return fmt.Errorf("customer %q: %w", cu.Email, err)
		}
	}

	logger.Info("Catalog seeded",
		"courts", len(c.Courts), "time_slots", len(c.TimeSlots), "customers", len(c.Customers))
	return nil
}
