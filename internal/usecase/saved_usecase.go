package usecase

import (
	"context"
	"errors"
	"strings"

	"hireboard/internal/domain/authz"
	"hireboard/internal/domain/saved"
	"hireboard/internal/domain/user"
)

type SavedUsecase interface {
	SaveJob(ctx context.Context, caller authz.Caller, jobID int64) error
	UnsaveJob(ctx context.Context, caller authz.Caller, jobID int64) error
	ListSavedJobs(ctx context.Context, caller authz.Caller) ([]saved.Job, error)
	IsJobSaved(ctx context.Context, caller authz.Caller, jobID int64) (bool, error)

	CreateSearch(ctx context.Context, caller authz.Caller, name, searchParams string) (saved.Search, error)
	ListSearches(ctx context.Context, caller authz.Caller) ([]saved.Search, error)
	DeleteSearch(ctx context.Context, caller authz.Caller, id int64) error

	SaveCandidate(ctx context.Context, caller authz.Caller, candidateID int64, notes string) error
	UnsaveCandidate(ctx context.Context, caller authz.Caller, candidateID int64) error
	ListSavedCandidates(ctx context.Context, caller authz.Caller) ([]saved.Candidate, error)
	IsCandidateSaved(ctx context.Context, caller authz.Caller, candidateID int64) (bool, error)
}

type Saved struct {
	saved saved.Repository
}

func NewSavedUsecase(repo saved.Repository) *Saved {
	return &Saved{saved: repo}
}

func (u *Saved) SaveJob(ctx context.Context, caller authz.Caller, jobID int64) error {
	if err := authz.RequireRole(caller, user.RoleJobSeeker); err != nil {
		return err
	}
	if err := u.saved.SaveJob(ctx, caller.ID, jobID); err != nil {
		if errors.Is(err, saved.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}
	return nil
}

func (u *Saved) UnsaveJob(ctx context.Context, caller authz.Caller, jobID int64) error {
	if err := authz.RequireRole(caller, user.RoleJobSeeker); err != nil {
		return err
	}
	if err := u.saved.UnsaveJob(ctx, caller.ID, jobID); err != nil {
		return storageErr(err)
	}
	return nil
}

func (u *Saved) ListSavedJobs(ctx context.Context, caller authz.Caller) ([]saved.Job, error) {
	if err := authz.RequireRole(caller, user.RoleJobSeeker); err != nil {
		return nil, err
	}
	out, err := u.saved.ListJobsByUser(ctx, caller.ID)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (u *Saved) IsJobSaved(ctx context.Context, caller authz.Caller, jobID int64) (bool, error) {
	if err := authz.RequireRole(caller, user.RoleJobSeeker); err != nil {
		return false, err
	}
	ok, err := u.saved.IsJobSaved(ctx, caller.ID, jobID)
	if err != nil {
		return false, storageErr(err)
	}
	return ok, nil
}

func (u *Saved) CreateSearch(ctx context.Context, caller authz.Caller, name, searchParams string) (saved.Search, error) {
	if err := authz.RequireRole(caller, user.RoleJobSeeker); err != nil {
		return saved.Search{}, err
	}
	if strings.TrimSpace(name) == "" {
		return saved.Search{}, invalidInput("search name is required")
	}
	if strings.TrimSpace(searchParams) == "" {
		return saved.Search{}, invalidInput("search params are required")
	}

	out, err := u.saved.CreateSearch(ctx, saved.Search{
		UserID:       caller.ID,
		Name:         strings.TrimSpace(name),
		SearchParams: searchParams,
	})
	if err != nil {
		return saved.Search{}, storageErr(err)
	}
	return out, nil
}

func (u *Saved) ListSearches(ctx context.Context, caller authz.Caller) ([]saved.Search, error) {
	if err := authz.RequireRole(caller, user.RoleJobSeeker); err != nil {
		return nil, err
	}
	out, err := u.saved.ListSearchesByUser(ctx, caller.ID)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

// DeleteSearch loads the search first so a foreign search is distinguishable
// from a missing one only for its owner.
func (u *Saved) DeleteSearch(ctx context.Context, caller authz.Caller, id int64) error {
	if err := authz.RequireRole(caller, user.RoleJobSeeker); err != nil {
		return err
	}

	s, err := u.saved.GetSearchByID(ctx, id)
	if err != nil {
		if errors.Is(err, saved.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}
	if err := authz.RequireOwner(caller, s.UserID); err != nil {
		return err
	}

	if err := u.saved.DeleteSearch(ctx, id); err != nil {
		if errors.Is(err, saved.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}
	return nil
}

func (u *Saved) SaveCandidate(ctx context.Context, caller authz.Caller, candidateID int64, notes string) error {
	if err := authz.RequireRole(caller, user.RoleRecruiter); err != nil {
		return err
	}
	if err := u.saved.SaveCandidate(ctx, saved.Candidate{
		RecruiterID: caller.ID,
		CandidateID: candidateID,
		Notes:       notes,
	}); err != nil {
		if errors.Is(err, saved.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}
	return nil
}

func (u *Saved) UnsaveCandidate(ctx context.Context, caller authz.Caller, candidateID int64) error {
	if err := authz.RequireRole(caller, user.RoleRecruiter); err != nil {
		return err
	}
	if err := u.saved.UnsaveCandidate(ctx, caller.ID, candidateID); err != nil {
		return storageErr(err)
	}
	return nil
}

func (u *Saved) ListSavedCandidates(ctx context.Context, caller authz.Caller) ([]saved.Candidate, error) {
	if err := authz.RequireRole(caller, user.RoleRecruiter); err != nil {
		return nil, err
	}
	out, err := u.saved.ListCandidatesByRecruiter(ctx, caller.ID)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (u *Saved) IsCandidateSaved(ctx context.Context, caller authz.Caller, candidateID int64) (bool, error) {
	if err := authz.RequireRole(caller, user.RoleRecruiter); err != nil {
		return false, err
	}
	ok, err := u.saved.IsCandidateSaved(ctx, caller.ID, candidateID)
	if err != nil {
		return false, storageErr(err)
	}
	return ok, nil
}
