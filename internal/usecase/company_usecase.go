package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"hireboard/internal/domain/authz"
	"hireboard/internal/domain/company"
	"hireboard/internal/domain/user"
)

type CreateCompanyInput struct {
	Name        string
	Description string
	Website     string
	LogoURL     string
	BannerURL   string
	Location    string
	Industry    string
	CompanySize string
}

type CompanyUsecase interface {
	Create(ctx context.Context, caller authz.Caller, in CreateCompanyInput) (company.Company, error)
	Update(ctx context.Context, caller authz.Caller, id int64, p company.Patch) error
	GetByID(ctx context.Context, id int64) (company.Company, error)
	ListMine(ctx context.Context, caller authz.Caller) ([]company.Company, error)
	ListAll(ctx context.Context) ([]company.Company, error)
}

type Companies struct {
	companies company.Repository
	logger    *log.Logger
}

func NewCompanyUsecase(companies company.Repository, logger *log.Logger) *Companies {
	if logger == nil {
		logger = log.Default()
	}
	return &Companies{companies: companies, logger: logger}
}

func (u *Companies) Create(ctx context.Context, caller authz.Caller, in CreateCompanyInput) (company.Company, error) {
	if err := authz.RequireRole(caller, user.RoleRecruiter); err != nil {
		return company.Company{}, err
	}

	if strings.TrimSpace(in.Name) == "" {
		return company.Company{}, invalidInput("company name is required")
	}

	created, err := u.companies.Create(ctx, company.Company{
		RecruiterID: caller.ID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Website:     in.Website,
		LogoURL:     in.LogoURL,
		BannerURL:   in.BannerURL,
		Location:    in.Location,
		Industry:    in.Industry,
		CompanySize: in.CompanySize,
	})
	if err != nil {
		return company.Company{}, storageErr(err)
	}
	return created, nil
}

func (u *Companies) Update(ctx context.Context, caller authz.Caller, id int64, p company.Patch) error {
	if err := authz.RequireRole(caller, user.RoleRecruiter); err != nil {
		return err
	}

	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}

	if err := authz.RequireOwner(caller, c.RecruiterID); err != nil {
		return err
	}

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return invalidInput("company name cannot be empty")
	}

	if err := u.companies.Update(ctx, id, p); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}
	return nil
}

func (u *Companies) GetByID(ctx context.Context, id int64) (company.Company, error) {
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, ErrNotFound
		}
		return company.Company{}, storageErr(err)
	}
	return c, nil
}

func (u *Companies) ListMine(ctx context.Context, caller authz.Caller) ([]company.Company, error) {
	if err := authz.RequireRole(caller, user.RoleRecruiter); err != nil {
		return nil, err
	}

	out, err := u.companies.ListByRecruiter(ctx, caller.ID)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

// ListAll is a public, best-effort read: a storage failure degrades to an
// empty listing instead of surfacing an error.
func (u *Companies) ListAll(ctx context.Context) ([]company.Company, error) {
	out, err := u.companies.ListAll(ctx)
	if err != nil {
		u.logger.Printf("company list degraded, storage error: %v", err)
		return []company.Company{}, nil
	}
	return out, nil
}
