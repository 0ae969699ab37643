package repository

import (
	"context"
	"fmt"
	"strings"

	"hireboard/internal/database"
	"hireboard/internal/domain/job"
)

const jobColumns = `id, company_id, recruiter_id, title, description, COALESCE(location, ''),
	job_type, COALESCE(experience_level, ''), salary_min, salary_max, salary_currency,
	COALESCE(skills, ''), status, is_featured, expires_at, created_at, updated_at`

type JobRepository struct {
	db database.DB
}

func NewJobRepository(db database.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs
			(company_id, recruiter_id, title, description, location, job_type,
			 experience_level, salary_min, salary_max, salary_currency, skills, status, is_featured, expires_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''), $8, $9,
			 COALESCE(NULLIF($10, ''), 'USD'), NULLIF($11, ''), $12, $13, $14)
		 RETURNING `+jobColumns,
		j.CompanyID, j.RecruiterID, j.Title, j.Description, j.Location, string(j.JobType),
		string(j.ExperienceLevel), j.SalaryMin, j.SalaryMax, j.SalaryCurrency,
		j.Skills, string(j.Status), j.IsFeatured, j.ExpiresAt,
	)
	return scanJob(row)
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *JobRepository) ListByRecruiter(ctx context.Context, recruiterID int64) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE recruiter_id = $1 ORDER BY created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *JobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *JobRepository) ListActive(ctx context.Context, f job.Filter) ([]job.Job, error) {
	query, args := buildActiveJobsQuery(f)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

// buildActiveJobsQuery assembles the public listing statement. Predicates are
// conjunctive; absent filter fields impose none. Ordering is featured first,
// then newest, with the id as a final tiebreak so identical inputs always
// produce the same sequence.
func buildActiveJobsQuery(f job.Filter) (string, []any) {
	conds := []string{"status = 'active'"}
	args := []any{}

	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		args = append(args, "%"+l+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if t := strings.TrimSpace(f.JobType); t != "" {
		args = append(args, t)
		conds = append(conds, fmt.Sprintf("job_type = $%d", len(args)))
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY is_featured DESC, created_at DESC, id DESC`
	return query, args
}

func (r *JobRepository) Update(ctx context.Context, id int64, p job.Patch) error {
	set := newSetClause()
	set.addString("title", p.Title)
	set.addString("description", p.Description)
	set.addString("location", p.Location)
	if p.JobType != nil {
		set.add("job_type", string(*p.JobType))
	}
	if p.ExperienceLevel != nil {
		set.add("experience_level", string(*p.ExperienceLevel))
	}
	set.addInt64("salary_min", p.SalaryMin)
	set.addInt64("salary_max", p.SalaryMax)
	set.addString("salary_currency", p.SalaryCurrency)
	set.addString("skills", p.Skills)
	if p.Status != nil {
		set.add("status", string(*p.Status))
	}
	set.addBool("is_featured", p.IsFeatured)
	set.addTime("expires_at", p.ExpiresAt)
	if set.empty() {
		return nil
	}

	query, args := set.build("jobs", id)
	n, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id int64, status job.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = $1, updated_at = now() WHERE id = $2`,
		string(status), id,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var jobType, level, status string
	err := row.Scan(
		&j.ID, &j.CompanyID, &j.RecruiterID, &j.Title, &j.Description, &j.Location,
		&jobType, &level, &j.SalaryMin, &j.SalaryMax, &j.SalaryCurrency,
		&j.Skills, &status, &j.IsFeatured, &j.ExpiresAt, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	j.JobType = job.Type(jobType)
	j.ExperienceLevel = job.ExperienceLevel(level)
	j.Status = job.Status(status)
	return j, nil
}
