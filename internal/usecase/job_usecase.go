package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"hireboard/internal/domain/authz"
	"hireboard/internal/domain/company"
	"hireboard/internal/domain/job"
	"hireboard/internal/domain/moderation"
	"hireboard/internal/domain/user"
)

type CreateJobInput struct {
	CompanyID       int64
	Title           string
	Description     string
	Location        string
	JobType         string
	ExperienceLevel string
	SalaryMin       *int64
	SalaryMax       *int64
	SalaryCurrency  string
	Skills          string
	ExpiresAt       *time.Time
}

// JobPatchInput carries raw caller-supplied fields; enum values are parsed
// and validated before they become a job.Patch.
type JobPatchInput struct {
	Title           *string
	Description     *string
	Location        *string
	JobType         *string
	ExperienceLevel *string
	SalaryMin       *int64
	SalaryMax       *int64
	SalaryCurrency  *string
	Skills          *string
	Status          *string
	IsFeatured      *bool
	ExpiresAt       *time.Time
}

type JobUsecase interface {
	Create(ctx context.Context, caller authz.Caller, in CreateJobInput) (job.Job, error)
	Update(ctx context.Context, caller authz.Caller, id int64, in JobPatchInput) error
	GetByID(ctx context.Context, id int64) (job.Job, error)
	ListMine(ctx context.Context, caller authz.Caller) ([]job.Job, error)
	ListActive(ctx context.Context, f job.Filter) ([]job.Job, error)
	ListAll(ctx context.Context, caller authz.Caller) ([]job.Job, error)
}

type Jobs struct {
	jobs      job.Repository
	companies company.Repository
	cache     ListingCache
	logger    *log.Logger
}

func NewJobUsecase(jobs job.Repository, companies company.Repository, cache ListingCache, logger *log.Logger) *Jobs {
	if logger == nil {
		logger = log.Default()
	}
	return &Jobs{jobs: jobs, companies: companies, cache: cache, logger: logger}
}

// Create posts a job under a company the caller owns. Every new posting
// starts in pending_approval; the initial status is never caller-supplied.
func (u *Jobs) Create(ctx context.Context, caller authz.Caller, in CreateJobInput) (job.Job, error) {
	if err := authz.RequireRole(caller, user.RoleRecruiter); err != nil {
		return job.Job{}, err
	}

	if strings.TrimSpace(in.Title) == "" {
		return job.Job{}, invalidInput("job title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return job.Job{}, invalidInput("job description is required")
	}

	jobType, err := job.ParseType(in.JobType)
	if err != nil {
		return job.Job{}, invalidInput("%v", err)
	}

	var level job.ExperienceLevel
	if in.ExperienceLevel != "" {
		level, err = job.ParseExperienceLevel(in.ExperienceLevel)
		if err != nil {
			return job.Job{}, invalidInput("%v", err)
		}
	}

	if err := validateSalaryRange(in.SalaryMin, in.SalaryMax); err != nil {
		return job.Job{}, err
	}

	c, err := u.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, storageErr(err)
	}
	if err := authz.RequireOwner(caller, c.RecruiterID); err != nil {
		return job.Job{}, err
	}

	recruiterID := caller.ID
	if caller.IsAdmin() {
		// An admin posting on behalf of a company attributes the job to
		// the company's owner.
		recruiterID = c.RecruiterID
	}

	created, err := u.jobs.Create(ctx, job.Job{
		CompanyID:       in.CompanyID,
		RecruiterID:     recruiterID,
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		Location:        in.Location,
		JobType:         jobType,
		ExperienceLevel: level,
		SalaryMin:       in.SalaryMin,
		SalaryMax:       in.SalaryMax,
		SalaryCurrency:  in.SalaryCurrency,
		Skills:          in.Skills,
		Status:          job.StatusPendingApproval,
		ExpiresAt:       in.ExpiresAt,
	})
	if err != nil {
		return job.Job{}, storageErr(err)
	}

	u.invalidateListing(ctx)
	return created, nil
}

func (u *Jobs) Update(ctx context.Context, caller authz.Caller, id int64, in JobPatchInput) error {
	if err := authz.RequireRole(caller, user.RoleRecruiter); err != nil {
		return err
	}

	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}

	if err := authz.RequireOwner(caller, j.RecruiterID); err != nil {
		return err
	}

	p, err := u.buildPatch(j, in, actorFor(caller))
	if err != nil {
		return err
	}

	if err := u.jobs.Update(ctx, id, p); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}

	u.invalidateListing(ctx)
	return nil
}

// buildPatch validates a raw patch against the loaded record: enum domains,
// the merged salary range, and the moderation machine for status edges.
func (u *Jobs) buildPatch(j job.Job, in JobPatchInput, actor moderation.Actor) (job.Patch, error) {
	p := job.Patch{
		Title:          in.Title,
		Description:    in.Description,
		Location:       in.Location,
		SalaryMin:      in.SalaryMin,
		SalaryMax:      in.SalaryMax,
		SalaryCurrency: in.SalaryCurrency,
		Skills:         in.Skills,
		ExpiresAt:      in.ExpiresAt,
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return job.Patch{}, invalidInput("job title cannot be empty")
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		return job.Patch{}, invalidInput("job description cannot be empty")
	}

	if in.JobType != nil {
		t, err := job.ParseType(*in.JobType)
		if err != nil {
			return job.Patch{}, invalidInput("%v", err)
		}
		p.JobType = &t
	}
	if in.ExperienceLevel != nil {
		l, err := job.ParseExperienceLevel(*in.ExperienceLevel)
		if err != nil {
			return job.Patch{}, invalidInput("%v", err)
		}
		p.ExperienceLevel = &l
	}

	min, max := j.SalaryMin, j.SalaryMax
	if in.SalaryMin != nil {
		min = in.SalaryMin
	}
	if in.SalaryMax != nil {
		max = in.SalaryMax
	}
	if err := validateSalaryRange(min, max); err != nil {
		return job.Patch{}, err
	}

	if in.Status != nil {
		to, err := job.ParseStatus(*in.Status)
		if err != nil {
			return job.Patch{}, invalidInput("%v", err)
		}
		if err := moderation.JobTransition(actor, j.Status, to); err != nil {
			return job.Patch{}, err
		}
		p.Status = &to
	}

	// Featured placement drives the listing order and is an admin call;
	// owner patches never carry it through.
	if actor == moderation.ActorAdmin {
		p.IsFeatured = in.IsFeatured
	}

	return p, nil
}

func (u *Jobs) GetByID(ctx context.Context, id int64) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, storageErr(err)
	}
	return j, nil
}

func (u *Jobs) ListMine(ctx context.Context, caller authz.Caller) ([]job.Job, error) {
	if err := authz.RequireRole(caller, user.RoleRecruiter); err != nil {
		return nil, err
	}

	out, err := u.jobs.ListByRecruiter(ctx, caller.ID)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

// ListActive is the public board listing: best-effort, cached, and degrading
// to an empty sequence when storage is down.
func (u *Jobs) ListActive(ctx context.Context, f job.Filter) ([]job.Job, error) {
	key := activeJobsCacheKey(f)

	if u.cache != nil {
		var cached []job.Job
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	out, err := u.jobs.ListActive(ctx, f)
	if err != nil {
		u.logger.Printf("active job listing degraded, storage error: %v", err)
		return []job.Job{}, nil
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out); err != nil {
			u.logger.Printf("active job listing cache write failed: %v", err)
		}
	}
	return out, nil
}

func (u *Jobs) ListAll(ctx context.Context, caller authz.Caller) ([]job.Job, error) {
	if err := authz.RequireRole(caller); err != nil {
		return nil, err
	}

	out, err := u.jobs.ListAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (u *Jobs) invalidateListing(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, activeJobsKeyPrefix+"*"); err != nil {
		u.logger.Printf("active job listing cache invalidation failed: %v", err)
	}
}

func actorFor(caller authz.Caller) moderation.Actor {
	if caller.IsAdmin() {
		return moderation.ActorAdmin
	}
	return moderation.ActorOwner
}

func validateSalaryRange(min, max *int64) error {
	if min != nil && *min < 0 {
		return invalidInput("salary minimum cannot be negative")
	}
	if max != nil && *max < 0 {
		return invalidInput("salary maximum cannot be negative")
	}
	if min != nil && max != nil && *min > *max {
		return ErrSalaryRange
	}
	return nil
}
