package timeslot

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

const slotColumns = `id, start_time::text AS start_time, end_time::text AS end_time, is_active, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListTimeSlots(ctx context.Context, active *bool) ([]TimeSlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM time_slots
		WHERE ($1::boolean IS NULL OR is_active = $1)
		ORDER BY start_time ASC
	`

	var filter sql.NullBool
	if active != nil {
		filter = sql.NullBool{Bool: *active, Valid: true}
	}

	slots := []TimeSlot{}
	if err := r.db.SelectContext(ctx, &slots, query, filter); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) GetTimeSlotByID(ctx context.Context, id int) (*TimeSlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM time_slots
		WHERE id = $1
	`

	var slot TimeSlot
	if err := r.db.GetContext(ctx, &slot, query, id); err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) CreateTimeSlot(ctx context.Context, startTime, endTime string) (*TimeSlot, error) {
	query := `
		INSERT INTO time_slots (start_time, end_time)
		VALUES ($1, $2)
		RETURNING ` + slotColumns

	var slot TimeSlot
	if err := r.db.GetContext(ctx, &slot, query, startTime, endTime); err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) SetActive(ctx context.Context, id int, active bool) (*TimeSlot, error) {
	query := `
		UPDATE time_slots
		SET is_active = $1
		WHERE id = $2
		RETURNING ` + slotColumns

	var slot TimeSlot
	if err := r.db.GetContext(ctx, &slot, query, active, id); err != nil {
		return nil, err
	}

	return &slot, nil
}
