package resume

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("resume not found")

	// ErrAlreadyExists maps the one-resume-per-user unique constraint.
	ErrAlreadyExists = errors.New("resume already exists")
)

type Repository interface {
	Create(ctx context.Context, r Resume) (Resume, error)
	GetByID(ctx context.Context, id int64) (Resume, error)
	GetByUserID(ctx context.Context, userID int64) (Resume, error)
	ListAll(ctx context.Context) ([]Resume, error)

	// ListPublic returns active, non-private resumes matching the filter,
	// premium first, then most recently updated.
	ListPublic(ctx context.Context, f Filter) ([]Resume, error)

	Update(ctx context.Context, id int64, p Patch) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
}
