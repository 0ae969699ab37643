package usecase

import (
	"context"
	"errors"

	"hireboard/internal/domain/application"
	"hireboard/internal/domain/authz"
	"hireboard/internal/domain/job"
	"hireboard/internal/domain/resume"
	"hireboard/internal/domain/user"
)

type ApplicationUsecase interface {
	Create(ctx context.Context, caller authz.Caller, jobID int64, coverLetter string) (application.Application, error)
	UpdateStatus(ctx context.Context, caller authz.Caller, id int64, status string, notes *string) error
	ListMine(ctx context.Context, caller authz.Caller) ([]application.Application, error)
	ListByJob(ctx context.Context, caller authz.Caller, jobID int64) ([]application.Application, error)
}

type Applications struct {
	applications application.Repository
	jobs         job.Repository
	resumes      resume.Repository
}

func NewApplicationUsecase(applications application.Repository, jobs job.Repository, resumes resume.Repository) *Applications {
	return &Applications{applications: applications, jobs: jobs, resumes: resumes}
}

// Create submits the caller's resume for a job. The resume requirement is
// checked before anything about the job, and the initial status is always
// submitted. Duplicates lose to the (job, seeker) unique constraint.
func (u *Applications) Create(ctx context.Context, caller authz.Caller, jobID int64, coverLetter string) (application.Application, error) {
	if err := authz.RequireRole(caller, user.RoleJobSeeker); err != nil {
		return application.Application{}, err
	}

	rs, err := u.resumes.GetByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return application.Application{}, ErrResumeRequired
		}
		return application.Application{}, storageErr(err)
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, storageErr(err)
	}

	created, err := u.applications.Create(ctx, application.Application{
		JobID:       jobID,
		JobSeekerID: caller.ID,
		ResumeID:    rs.ID,
		CoverLetter: coverLetter,
		Status:      application.StatusSubmitted,
	})
	if err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, ErrAlreadyApplied
		}
		return application.Application{}, storageErr(err)
	}
	return created, nil
}

// UpdateStatus moves an application through review. Ownership is derived
// through the job: only the recruiter behind the posting, or an admin, may
// review its applications.
func (u *Applications) UpdateStatus(ctx context.Context, caller authz.Caller, id int64, status string, notes *string) error {
	if err := authz.RequireRole(caller, user.RoleRecruiter); err != nil {
		return err
	}

	st, err := application.ParseStatus(status)
	if err != nil {
		return invalidInput("%v", err)
	}

	a, err := u.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}

	j, err := u.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}

	if err := authz.RequireOwner(caller, j.RecruiterID); err != nil {
		return err
	}

	if err := u.applications.UpdateStatus(ctx, id, st, notes); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}
	return nil
}

func (u *Applications) ListMine(ctx context.Context, caller authz.Caller) ([]application.Application, error) {
	if err := authz.RequireRole(caller, user.RoleJobSeeker); err != nil {
		return nil, err
	}

	out, err := u.applications.ListBySeeker(ctx, caller.ID)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (u *Applications) ListByJob(ctx context.Context, caller authz.Caller, jobID int64) ([]application.Application, error) {
	if err := authz.RequireRole(caller, user.RoleRecruiter); err != nil {
		return nil, err
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr(err)
	}

	if err := authz.RequireOwner(caller, j.RecruiterID); err != nil {
		return nil, err
	}

	out, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}
