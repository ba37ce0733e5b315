package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SJ-Slasher/FMS/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrCustomerNotFound = errors.New("customer not found")

const customerColumns = `id, full_name, email, phone, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListCustomers(ctx context.Context) ([]Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM users
		ORDER BY full_name ASC
	`

	customers := []Customer{}
	if err := r.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, err
	}

	return customers, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM users
		WHERE id = $1
	`

	var customer Customer
	if err := r.db.GetContext(ctx, &customer, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	return &customer, nil
}

func (r *repository) Create(ctx context.Context, fullName, email string, phone *string) (*Customer, error) {
	query := `
		INSERT INTO users (full_name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING ` + customerColumns

	var customer Customer
	if err := r.db.GetContext(ctx, &customer, query, fullName, email, phone); err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`, email)
}
