package court

import (
	"context"
	"errors"
	"strings"

	"github.com/SJ-Slasher/FMS/internal/patch"
)

var (
	ErrInvalidCourt     = errors.New("invalid court data")
	ErrNoFieldsToUpdate = patch.ErrNoFields
)

type Service interface {
	ListCourts(ctx context.Context, active *bool) ([]Court, error)
	GetCourt(ctx context.Context, id int) (*Court, error)
	CreateCourt(ctx context.Context, req CreateCourtRequest) (*Court, error)
	UpdateCourt(ctx context.Context, id int, req UpdateCourtRequest) (*Court, error)
	DeleteCourt(ctx context.Context, id int) error
}

// updatableFields lists every court column a PUT may touch.
var updatableFields = patch.Set[UpdateCourtRequest, Court]{
	{
		Name:    "name",
		Present: func(r *UpdateCourtRequest) bool { return r.Name != nil },
		Apply: func(r *UpdateCourtRequest, c *Court) error {
			if strings.TrimSpace(*r.Name) == "" {
				return ErrInvalidCourt
			}
			c.Name = *r.Name
			return nil
		},
	},
	{
		Name:    "description",
		Present: func(r *UpdateCourtRequest) bool { return r.Description != nil },
		Apply: func(r *UpdateCourtRequest, c *Court) error {
			c.Description = r.Description
			return nil
		},
	},
	{
		Name:    "court_type",
		Present: func(r *UpdateCourtRequest) bool { return r.CourtType != nil },
		Apply: func(r *UpdateCourtRequest, c *Court) error {
			if strings.TrimSpace(*r.CourtType) == "" {
				return ErrInvalidCourt
			}
			c.CourtType = *r.CourtType
			return nil
		},
	},
	{
		Name:    "price_per_hour",
		Present: func(r *UpdateCourtRequest) bool { return r.PricePerHour != nil },
		Apply: func(r *UpdateCourtRequest, c *Court) error {
			if r.PricePerHour.IsNegative() {
				return ErrInvalidCourt
			}
			c.PricePerHour = *r.PricePerHour
			return nil
		},
	},
	{
		Name:    "is_active",
		Present: func(r *UpdateCourtRequest) bool { return r.IsActive != nil },
		Apply: func(r *UpdateCourtRequest, c *Court) error {
			c.IsActive = *r.IsActive
			return nil
		},
	},
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCourts(ctx context.Context, active *bool) ([]Court, error) {
	return s.repo.ListCourts(ctx, active)
}

func (s *service) GetCourt(ctx context.Context, id int) (*Court, error) {
	return s.repo.GetCourtByID(ctx, id)
}

func (s *service) CreateCourt(ctx context.Context, req CreateCourtRequest) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.CourtType) == "" {
		return nil, ErrInvalidCourt
	}
	// A zero price counts as missing.
	if req.PricePerHour == nil || !req.PricePerHour.IsPositive() {
		return nil, ErrInvalidCourt
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return s.repo.CreateCourt(ctx, &Court{
		Name:         req.Name,
		Description:  req.Description,
		CourtType:    req.CourtType,
		PricePerHour: *req.PricePerHour,
		IsActive:     isActive,
	})
}

func (s *service) UpdateCourt(ctx context.Context, id int, req UpdateCourtRequest) (*Court, error) {
	if len(updatableFields.Requested(&req)) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	return s.repo.UpdateCourt(ctx, id, func(c *Court) error {
		return updatableFields.Apply(&req, c)
	})
}

func (s *service) DeleteCourt(ctx context.Context, id int) error {
	return s.repo.DeleteCourt(ctx, id)
}
