package repository

import (
	"context"

	"hireboard/internal/database"
	"hireboard/internal/domain/application"
)

const applicationColumns = `id, job_id, job_seeker_id, resume_id, COALESCE(cover_letter, ''),
	status, COALESCE(notes, ''), created_at, updated_at`

type ApplicationRepository struct {
	db database.DB
}

func NewApplicationRepository(db database.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create relies on the (job_id, job_seeker_id) unique constraint: of two
// concurrent duplicate submissions at most one wins, the other surfaces
// ErrDuplicate.
func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (job_id, job_seeker_id, resume_id, cover_letter, status)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		 RETURNING `+applicationColumns,
		a.JobID, a.JobSeekerID, a.ResumeID, a.CoverLetter, string(a.Status),
	)
	created, err := scanApplication(row)
	if err != nil {
		if isUniqueViolation(err) {
			return application.Application{}, application.ErrDuplicate
		}
		return application.Application{}, err
	}
	return created, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (application.Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListBySeeker(ctx context.Context, jobSeekerID int64) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_seeker_id = $1 ORDER BY created_at DESC`,
		jobSeekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID int64) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY created_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status application.Status, notes *string) error {
	set := newSetClause()
	set.add("status", string(status))
	set.addString("notes", notes)

	query, args := set.build("applications", id)
	n, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

func collectApplications(rows database.Rows) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var status string
	err := row.Scan(
		&a.ID, &a.JobID, &a.JobSeekerID, &a.ResumeID, &a.CoverLetter,
		&status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}
