package customer

import (
	"context"
	"errors"
	"strings"

	"github.com/SJ-Slasher/FMS/internal/db"
)

var (
	ErrEmailExists     = errors.New("email already exists")
	ErrInvalidCustomer = errors.New("invalid customer data")
)

type Service interface {
	ListCustomers(ctx context.Context) ([]Customer, error)
	GetCustomer(ctx context.Context, id int) (*Customer, error)
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCustomers(ctx context.Context) ([]Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *service) GetCustomer(ctx context.Context, id int) (*Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	name := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, ErrInvalidCustomer
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	customer, err := s.repo.Create(ctx, name, email, req.Phone)
	if err != nil {
		// Lost a race with a concurrent registration of the same address.
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return customer, nil
}
