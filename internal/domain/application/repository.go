package application

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("application not found")

	// ErrDuplicate maps the (job, seeker) unique constraint, so concurrent
	// duplicate submissions cannot both win.
	ErrDuplicate = errors.New("application already exists")
)

type Repository interface {
	Create(ctx context.Context, a Application) (Application, error)
	GetByID(ctx context.Context, id int64) (Application, error)
	ListBySeeker(ctx context.Context, jobSeekerID int64) ([]Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status Status, notes *string) error
}
