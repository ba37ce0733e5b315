package court

import "context"

type Repository interface {
	ListCourts(ctx context.Context, active *bool) ([]Court, error)
	GetCourtByID(ctx context.Context, id int) (*Court, error)
	CreateCourt(ctx context.Context, c *Court) (*Court, error)
	// UpdateCourt loads the row under lock, lets mutate change it and writes
	// the whole row back in the same transaction.
	UpdateCourt(ctx context.Context, id int, mutate func(*Court) error) (*Court, error)
	DeleteCourt(ctx context.Context, id int) error
}
