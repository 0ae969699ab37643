package saved

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("saved item not found")

type Repository interface {
	SaveJob(ctx context.Context, userID, jobID int64) error
	UnsaveJob(ctx context.Context, userID, jobID int64) error
	ListJobsByUser(ctx context.Context, userID int64) ([]Job, error)
	IsJobSaved(ctx context.Context, userID, jobID int64) (bool, error)

	CreateSearch(ctx context.Context, s Search) (Search, error)
	GetSearchByID(ctx context.Context, id int64) (Search, error)
	ListSearchesByUser(ctx context.Context, userID int64) ([]Search, error)
	DeleteSearch(ctx context.Context, id int64) error

	SaveCandidate(ctx context.Context, c Candidate) error
	UnsaveCandidate(ctx context.Context, recruiterID, candidateID int64) error
	ListCandidatesByRecruiter(ctx context.Context, recruiterID int64) ([]Candidate, error)
	IsCandidateSaved(ctx context.Context, recruiterID, candidateID int64) (bool, error)
}
