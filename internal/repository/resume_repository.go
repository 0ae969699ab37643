package repository

import (
	"context"
	"fmt"
	"strings"

	"hireboard/internal/database"
	"hireboard/internal/domain/resume"
)

const resumeColumns = `id, user_id, COALESCE(headline, ''), COALESCE(summary, ''), COALESCE(experience, ''),
	COALESCE(education, ''), COALESCE(skills, ''), COALESCE(certifications, ''), COALESCE(location, ''),
	COALESCE(phone_number, ''), COALESCE(linkedin_url, ''), COALESCE(portfolio_url, ''), COALESCE(photo_url, ''),
	visibility, status, is_premium, created_at, updated_at`

type ResumeRepository struct {
	db database.DB
}

func NewResumeRepository(db database.DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

func (r *ResumeRepository) Create(ctx context.Context, rs resume.Resume) (resume.Resume, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO resumes
			(user_id, headline, summary, experience, education, skills, certifications,
			 location, phone_number, linkedin_url, portfolio_url, photo_url, visibility, status)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''),
			 NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''),
			 NULLIF($12, ''), $13, $14)
		 RETURNING `+resumeColumns,
		rs.UserID, rs.Headline, rs.Summary, rs.Experience, rs.Education, rs.Skills,
		rs.Certifications, rs.Location, rs.PhoneNumber, rs.LinkedinURL, rs.PortfolioURL,
		rs.PhotoURL, string(rs.Visibility), string(rs.Status),
	)
	created, err := scanResume(row)
	if err != nil {
		if isUniqueViolation(err) {
			return resume.Resume{}, resume.ErrAlreadyExists
		}
		return resume.Resume{}, err
	}
	return created, nil
}

func (r *ResumeRepository) GetByID(ctx context.Context, id int64) (resume.Resume, error) {
	row := r.db.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id)
	return scanResume(row)
}

func (r *ResumeRepository) GetByUserID(ctx context.Context, userID int64) (resume.Resume, error) {
	row := r.db.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE user_id = $1`, userID)
	return scanResume(row)
}

func (r *ResumeRepository) ListAll(ctx context.Context) ([]resume.Resume, error) {
	rows, err := r.db.Query(ctx, `SELECT `+resumeColumns+` FROM resumes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResumes(rows)
}

func (r *ResumeRepository) ListPublic(ctx context.Context, f resume.Filter) ([]resume.Resume, error) {
	query, args := buildPublicResumesQuery(f)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResumes(rows)
}

// buildPublicResumesQuery assembles the candidate-browsing statement: active
// resumes that are not private, premium profiles first, then most recently
// updated.
func buildPublicResumesQuery(f resume.Filter) (string, []any) {
	conds := []string{
		"status = 'active'",
		"visibility IN ('public', 'recruiters_only')",
	}
	args := []any{}

	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(headline ILIKE $%d OR summary ILIKE $%d OR skills ILIKE $%d)", n, n, n))
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		args = append(args, "%"+l+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}

	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY is_premium DESC, updated_at DESC, id DESC`
	return query, args
}

func (r *ResumeRepository) Update(ctx context.Context, id int64, p resume.Patch) error {
	set := newSetClause()
	set.addString("headline", p.Headline)
	set.addString("summary", p.Summary)
	set.addString("experience", p.Experience)
	set.addString("education", p.Education)
	set.addString("skills", p.Skills)
	set.addString("certifications", p.Certifications)
	set.addString("location", p.Location)
	set.addString("phone_number", p.PhoneNumber)
	set.addString("linkedin_url", p.LinkedinURL)
	set.addString("portfolio_url", p.PortfolioURL)
	set.addString("photo_url", p.PhotoURL)
	if p.Visibility != nil {
		set.add("visibility", string(*p.Visibility))
	}
	if p.Status != nil {
		set.add("status", string(*p.Status))
	}
	if set.empty() {
		return nil
	}

	query, args := set.build("resumes", id)
	n, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *ResumeRepository) UpdateStatus(ctx context.Context, id int64, status resume.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE resumes SET status = $1, updated_at = now() WHERE id = $2`,
		string(status), id,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func collectResumes(rows database.Rows) ([]resume.Resume, error) {
	out := make([]resume.Resume, 0)
	for rows.Next() {
		rs, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanResume(row database.Row) (resume.Resume, error) {
	var rs resume.Resume
	var visibility, status string
	err := row.Scan(
		&rs.ID, &rs.UserID, &rs.Headline, &rs.Summary, &rs.Experience,
		&rs.Education, &rs.Skills, &rs.Certifications, &rs.Location,
		&rs.PhoneNumber, &rs.LinkedinURL, &rs.PortfolioURL, &rs.PhotoURL,
		&visibility, &status, &rs.IsPremium, &rs.CreatedAt, &rs.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return resume.Resume{}, resume.ErrNotFound
		}
		return resume.Resume{}, err
	}
	rs.Visibility = resume.Visibility(visibility)
	rs.Status = resume.Status(status)
	return rs, nil
}
