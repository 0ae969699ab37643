package job

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]Job, error)
	ListAll(ctx context.Context) ([]Job, error)

	// ListActive returns active postings matching the filter, featured
	// first, then newest first.
	ListActive(ctx context.Context, f Filter) ([]Job, error)

	Update(ctx context.Context, id int64, p Patch) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
}
