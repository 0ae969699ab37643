package repository

import (
	"context"

	"hireboard/internal/database"
	"hireboard/internal/domain/company"
)

const companyColumns = `id, recruiter_id, name, COALESCE(description, ''), COALESCE(website, ''),
	COALESCE(logo_url, ''), COALESCE(banner_url, ''), COALESCE(location, ''),
	COALESCE(industry, ''), COALESCE(company_size, ''), is_premium, created_at, updated_at`

type CompanyRepository struct {
	db database.DB
}

func NewCompanyRepository(db database.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c company.Company) (company.Company, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO companies
			(recruiter_id, name, description, website, logo_url, banner_url, location, industry, company_size)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''))
		 RETURNING `+companyColumns,
		c.RecruiterID, c.Name, c.Description, c.Website, c.LogoURL,
		c.BannerURL, c.Location, c.Industry, c.CompanySize,
	)
	return scanCompany(row)
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (company.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return scanCompany(row)
}

func (r *CompanyRepository) ListByRecruiter(ctx context.Context, recruiterID int64) ([]company.Company, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE recruiter_id = $1 ORDER BY created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCompanies(rows)
}

func (r *CompanyRepository) ListAll(ctx context.Context) ([]company.Company, error) {
	rows, err := r.db.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCompanies(rows)
}

func (r *CompanyRepository) Update(ctx context.Context, id int64, p company.Patch) error {
	set := newSetClause()
	set.addString("name", p.Name)
	set.addString("description", p.Description)
	set.addString("website", p.Website)
	set.addString("logo_url", p.LogoURL)
	set.addString("banner_url", p.BannerURL)
	set.addString("location", p.Location)
	set.addString("industry", p.Industry)
	set.addString("company_size", p.CompanySize)
	if set.empty() {
		return nil
	}

	query, args := set.build("companies", id)
	n, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return company.ErrNotFound
	}
	return nil
}

func collectCompanies(rows database.Rows) ([]company.Company, error) {
	out := make([]company.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCompany(row database.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.RecruiterID, &c.Name, &c.Description, &c.Website,
		&c.LogoURL, &c.BannerURL, &c.Location, &c.Industry, &c.CompanySize,
		&c.IsPremium, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}
