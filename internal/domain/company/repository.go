package company

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("company not found")

type Repository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id int64) (Company, error)
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]Company, error)
	ListAll(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, id int64, p Patch) error
}
