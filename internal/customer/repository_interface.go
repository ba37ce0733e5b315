package customer

import "context"

type Repository interface {
	ListCustomers(ctx context.Context) ([]Customer, error)
	FindByID(ctx context.Context, id int) (*Customer, error)
	Create(ctx context.Context, fullName, email string, phone *string) (*Customer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
