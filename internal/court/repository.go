package court

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrCourtNotFound = errors.New("court not found")

const courtColumns = `id, name, description, court_type, price_per_hour, is_active, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListCourts(ctx context.Context, active *bool) ([]Court, error) {
	query := `
		SELECT ` + courtColumns + `
		FROM courts
		WHERE ($1::boolean IS NULL OR is_active = $1)
		ORDER BY name ASC
	`

	var filter sql.NullBool
	if active != nil {
		filter = sql.NullBool{Bool: *active, Valid: true}
	}

	courts := []Court{}
	if err := r.db.SelectContext(ctx, &courts, query, filter); err != nil {
		return nil, err
	}

	return courts, nil
}

func (r *repository) GetCourtByID(ctx context.Context, id int) (*Court, error) {
	query := `
		SELECT ` + courtColumns + `
		FROM courts
		WHERE id = $1
	`

	var court Court
	if err := r.db.GetContext(ctx, &court, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	return &court, nil
}

func (r *repository) CreateCourt(ctx context.Context, c *Court) (*Court, error) {
	query := `
		INSERT INTO courts (name, description, court_type, price_per_hour, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + courtColumns

	var court Court
	err := r.db.GetContext(ctx, &court, query, c.Name, c.Description, c.CourtType, c.PricePerHour, c.IsActive)
	if err != nil {
		return nil, err
	}

	return &court, nil
}

func (r *repository) UpdateCourt(ctx context.Context, id int, mutate func(*Court) error) (*Court, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var court Court
	err = tx.GetContext(ctx, &court, `
		SELECT `+courtColumns+`
		FROM courts
		WHERE id = $1
		FOR UPDATE`,
		id,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	if err := mutate(&court); err != nil {
		return nil, err
	}

	var updated Court
	err = tx.GetContext(ctx, &updated, `
		UPDATE courts
		SET name = $1, description = $2, court_type = $3, price_per_hour = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+courtColumns,
		court.Name, court.Description, court.CourtType, court.PricePerHour, court.IsActive, id,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) DeleteCourt(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrCourtNotFound
	}

	return nil
}
