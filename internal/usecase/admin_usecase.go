package usecase

import (
	"context"
	"errors"

	"hireboard/internal/domain/authz"
	"hireboard/internal/domain/job"
	"hireboard/internal/domain/moderation"
	"hireboard/internal/domain/resume"
	"hireboard/internal/domain/user"
)

// AdminUsecase holds the moderation console: user role management and the
// admin-only job/resume lifecycle decisions.
type AdminUsecase interface {
	ListUsers(ctx context.Context, caller authz.Caller) ([]user.User, error)
	UpdateUserRole(ctx context.Context, caller authz.Caller, userID int64, role string) error

	ApproveJob(ctx context.Context, caller authz.Caller, id int64) error
	RejectJob(ctx context.Context, caller authz.Caller, id int64) error
	UpdateJob(ctx context.Context, caller authz.Caller, id int64, in JobPatchInput) error

	ApproveResume(ctx context.Context, caller authz.Caller, id int64) error
	RejectResume(ctx context.Context, caller authz.Caller, id int64) error
	UpdateResume(ctx context.Context, caller authz.Caller, id int64, in ResumePatchInput) error
}

type Admin struct {
	users   user.Repository
	jobs    *Jobs
	resumes *Resumes
}

func NewAdminUsecase(users user.Repository, jobs *Jobs, resumes *Resumes) *Admin {
	return &Admin{users: users, jobs: jobs, resumes: resumes}
}

func (u *Admin) ListUsers(ctx context.Context, caller authz.Caller) ([]user.User, error) {
	if err := authz.RequireRole(caller); err != nil {
		return nil, err
	}

	out, err := u.users.List(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

// UpdateUserRole is idempotent: setting the role a user already holds
// succeeds without complaint.
func (u *Admin) UpdateUserRole(ctx context.Context, caller authz.Caller, userID int64, role string) error {
	if err := authz.RequireRole(caller); err != nil {
		return err
	}

	r, err := user.ParseRole(role)
	if err != nil {
		return invalidInput("%v", err)
	}

	if err := u.users.UpdateRole(ctx, userID, r); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}
	return nil
}

func (u *Admin) ApproveJob(ctx context.Context, caller authz.Caller, id int64) error {
	return u.moderateJob(ctx, caller, id, job.StatusActive)
}

func (u *Admin) RejectJob(ctx context.Context, caller authz.Caller, id int64) error {
	return u.moderateJob(ctx, caller, id, job.StatusRejected)
}

func (u *Admin) moderateJob(ctx context.Context, caller authz.Caller, id int64, to job.Status) error {
	if err := authz.RequireRole(caller); err != nil {
		return err
	}

	j, err := u.jobs.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}

	if err := moderation.JobTransition(moderation.ActorAdmin, j.Status, to); err != nil {
		return err
	}

	if err := u.jobs.jobs.UpdateStatus(ctx, id, to); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}

	u.jobs.invalidateListing(ctx)
	return nil
}

// UpdateJob is the admin content override. Status edges still run through
// the state machine, with admin privileges.
func (u *Admin) UpdateJob(ctx context.Context, caller authz.Caller, id int64, in JobPatchInput) error {
	if err := authz.RequireRole(caller); err != nil {
		return err
	}

	j, err := u.jobs.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}

	p, err := u.jobs.buildPatch(j, in, moderation.ActorAdmin)
	if err != nil {
		return err
	}

	if err := u.jobs.jobs.Update(ctx, id, p); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}

	u.jobs.invalidateListing(ctx)
	return nil
}

func (u *Admin) ApproveResume(ctx context.Context, caller authz.Caller, id int64) error {
	return u.moderateResume(ctx, caller, id, resume.StatusActive)
}

func (u *Admin) RejectResume(ctx context.Context, caller authz.Caller, id int64) error {
	return u.moderateResume(ctx, caller, id, resume.StatusRejected)
}

func (u *Admin) moderateResume(ctx context.Context, caller authz.Caller, id int64, to resume.Status) error {
	if err := authz.RequireRole(caller); err != nil {
		return err
	}

	rs, err := u.resumes.resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}

	if err := moderation.ResumeTransition(moderation.ActorAdmin, rs.Status, to); err != nil {
		return err
	}

	if err := u.resumes.resumes.UpdateStatus(ctx, id, to); err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}
	return nil
}

func (u *Admin) UpdateResume(ctx context.Context, caller authz.Caller, id int64, in ResumePatchInput) error {
	if err := authz.RequireRole(caller); err != nil {
		return err
	}

	rs, err := u.resumes.resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}

	p := resume.Patch{
		Headline:       in.Headline,
		Summary:        in.Summary,
		Experience:     in.Experience,
		Education:      in.Education,
		Skills:         in.Skills,
		Certifications: in.Certifications,
		Location:       in.Location,
		PhoneNumber:    in.PhoneNumber,
		LinkedinURL:    in.LinkedinURL,
		PortfolioURL:   in.PortfolioURL,
		PhotoURL:       in.PhotoURL,
	}
	if in.Visibility != nil {
		v, err := resume.ParseVisibility(*in.Visibility)
		if err != nil {
			return invalidInput("%v", err)
		}
		p.Visibility = &v
	}
	if in.Status != nil {
		to, err := resume.ParseStatus(*in.Status)
		if err != nil {
			return invalidInput("%v", err)
		}
		if err := moderation.ResumeTransition(moderation.ActorAdmin, rs.Status, to); err != nil {
			return err
		}
		p.Status = &to
	}

	if err := u.resumes.resumes.Update(ctx, id, p); err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}
	return nil
}
