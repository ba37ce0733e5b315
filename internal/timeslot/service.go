package timeslot

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SJ-Slasher/FMS/internal/db"
)

var (
	ErrTimeSlotNotFound = errors.New("time slot not found")
	ErrTimeSlotInvalid  = errors.New("invalid time slot")
	ErrTimeSlotExists   = errors.New("time slot already exists")
)

const clockLayout = "15:04"

type Service interface {
	ListTimeSlots(ctx context.Context, active *bool) ([]TimeSlot, error)
	GetTimeSlot(ctx context.Context, id int) (*TimeSlot, error)
	CreateTimeSlot(ctx context.Context, req CreateTimeSlotRequest) (*TimeSlot, error)
	SetActive(ctx context.Context, id int, active bool) (*TimeSlot, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListTimeSlots(ctx context.Context, active *bool) ([]TimeSlot, error) {
	return s.repo.ListTimeSlots(ctx, active)
}

func (s *service) GetTimeSlot(ctx context.Context, id int) (*TimeSlot, error) {
	slot, err := s.repo.GetTimeSlotByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTimeSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}

func (s *service) CreateTimeSlot(ctx context.Context, req CreateTimeSlotRequest) (*TimeSlot, error) {
	start, err := time.Parse(clockLayout, req.StartTime)
	if err != nil {
		return nil, ErrTimeSlotInvalid
	}

	end, err := time.Parse(clockLayout, req.EndTime)
	if err != nil {
		return nil, ErrTimeSlotInvalid
	}

	if !end.After(start) {
		return nil, ErrTimeSlotInvalid
	}

	slot, err := s.repo.CreateTimeSlot(ctx, start.Format(clockLayout), end.Format(clockLayout))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrTimeSlotExists
		}
		return nil, err
	}

	return slot, nil
}

func (s *service) SetActive(ctx context.Context, id int, active bool) (*TimeSlot, error) {
	slot, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTimeSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}
