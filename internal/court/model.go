package court

import (
	"time"

	"github.com/shopspring/decimal"
)

type Court struct {
	ID           int             `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"`
	Description  *string         `db:"description" json:"description"`
	CourtType    string          `db:"court_type" json:"court_type" example:"indoor"`
	PricePerHour decimal.Decimal `db:"price_per_hour" json:"price_per_hour" swaggertype:"string" example:"45.00"`
	IsActive     bool            `db:"is_active" json:"is_active"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

type CreateCourtRequest struct {
	Name         string           `json:"name" binding:"required"`
	Description  *string          `json:"description"`
	CourtType    string           `json:"court_type" binding:"required"`
	PricePerHour *decimal.Decimal `json:"price_per_hour" binding:"required"`
	IsActive     *bool            `json:"is_active"`
}

// UpdateCourtRequest carries only the fields the caller wants to change.
type UpdateCourtRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	CourtType    *string          `json:"court_type"`
	PricePerHour *decimal.Decimal `json:"price_per_hour"`
	IsActive     *bool            `json:"is_active"`
}
