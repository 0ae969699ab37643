package usecase

import (
	"context"
	"errors"
	"log"

	"hireboard/internal/domain/authz"
	"hireboard/internal/domain/moderation"
	"hireboard/internal/domain/resume"
	"hireboard/internal/domain/user"
)

type CreateResumeInput struct {
	Headline       string
	Summary        string
	Experience     string
	Education      string
	Skills         string
	Certifications string
	Location       string
	PhoneNumber    string
	LinkedinURL    string
	PortfolioURL   string
	PhotoURL       string
	Visibility     string
}

type ResumePatchInput struct {
	Headline       *string
	Summary        *string
	Experience     *string
	Education      *string
	Skills         *string
	Certifications *string
	Location       *string
	PhoneNumber    *string
	LinkedinURL    *string
	PortfolioURL   *string
	PhotoURL       *string
	Visibility     *string
	Status         *string
}

type ResumeUsecase interface {
	Create(ctx context.Context, caller authz.Caller, in CreateResumeInput) (resume.Resume, error)
	Update(ctx context.Context, caller authz.Caller, id int64, in ResumePatchInput) error
	GetMine(ctx context.Context, caller authz.Caller) (resume.Resume, error)
	GetByID(ctx context.Context, caller authz.Caller, id int64) (resume.Resume, error)
	ListPublic(ctx context.Context, f resume.Filter) ([]resume.Resume, error)
	ListAll(ctx context.Context, caller authz.Caller) ([]resume.Resume, error)
}

type Resumes struct {
	resumes resume.Repository
	logger  *log.Logger
}

func NewResumeUsecase(resumes resume.Repository, logger *log.Logger) *Resumes {
	if logger == nil {
		logger = log.Default()
	}
	return &Resumes{resumes: resumes, logger: logger}
}

// Create makes the caller's single resume. The unique constraint on user_id
// backs the existence check, so two concurrent creates cannot both succeed.
func (u *Resumes) Create(ctx context.Context, caller authz.Caller, in CreateResumeInput) (resume.Resume, error) {
	if err := authz.RequireRole(caller, user.RoleJobSeeker); err != nil {
		return resume.Resume{}, err
	}

	visibility := resume.VisibilityPublic
	if in.Visibility != "" {
		v, err := resume.ParseVisibility(in.Visibility)
		if err != nil {
			return resume.Resume{}, invalidInput("%v", err)
		}
		visibility = v
	}

	if _, err := u.resumes.GetByUserID(ctx, caller.ID); err == nil {
		return resume.Resume{}, ErrResumeExists
	} else if !errors.Is(err, resume.ErrNotFound) {
		return resume.Resume{}, storageErr(err)
	}

	created, err := u.resumes.Create(ctx, resume.Resume{
		UserID:         caller.ID,
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
		Visibility:     visibility,
		Status:         resume.StatusPendingApproval,
	})
	if err != nil {
		if errors.Is(err, resume.ErrAlreadyExists) {
			return resume.Resume{}, ErrResumeExists
		}
		return resume.Resume{}, storageErr(err)
	}
	return created, nil
}

func (u *Resumes) Update(ctx context.Context, caller authz.Caller, id int64, in ResumePatchInput) error {
	if err := authz.RequireRole(caller, user.RoleJobSeeker); err != nil {
		return err
	}

	rs, err := u.resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}

	if err := authz.RequireOwner(caller, rs.UserID); err != nil {
		return err
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
		if err := moderation.ResumeTransition(actorFor(caller), rs.Status, to); err != nil {
			return err
		}
		p.Status = &to
	}

	if err := u.resumes.Update(ctx, id, p); err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}
	return nil
}

func (u *Resumes) GetMine(ctx context.Context, caller authz.Caller) (resume.Resume, error) {
	if err := authz.RequireRole(caller, user.RoleJobSeeker); err != nil {
		return resume.Resume{}, err
	}

	rs, err := u.resumes.GetByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return resume.Resume{}, ErrNotFound
		}
		return resume.Resume{}, storageErr(err)
	}
	return rs, nil
}

// GetByID hides a private resume from everyone but its owner and admins, and
// reports it as not found rather than forbidden so its existence is never
// confirmed.
func (u *Resumes) GetByID(ctx context.Context, caller authz.Caller, id int64) (resume.Resume, error) {
	rs, err := u.resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return resume.Resume{}, ErrNotFound
		}
		return resume.Resume{}, storageErr(err)
	}

	if rs.Visibility == resume.VisibilityPrivate && caller.ID != rs.UserID && !caller.IsAdmin() {
		return resume.Resume{}, ErrNotFound
	}
	return rs, nil
}

// ListPublic is the candidate-browsing listing: best-effort, degrading to an
// empty sequence when storage is down.
func (u *Resumes) ListPublic(ctx context.Context, f resume.Filter) ([]resume.Resume, error) {
	out, err := u.resumes.ListPublic(ctx, f)
	if err != nil {
		u.logger.Printf("public resume listing degraded, storage error: %v", err)
		return []resume.Resume{}, nil
	}
	return out, nil
}

func (u *Resumes) ListAll(ctx context.Context, caller authz.Caller) ([]resume.Resume, error) {
	if err := authz.RequireRole(caller); err != nil {
		return nil, err
	}

	out, err := u.resumes.ListAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}
