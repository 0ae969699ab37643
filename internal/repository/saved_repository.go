package repository

import (
	"context"

	"hireboard/internal/database"
	"hireboard/internal/domain/saved"
)

type SavedRepository struct {
	db database.DB
}

func NewSavedRepository(db database.DB) *SavedRepository {
	return &SavedRepository{db: db}
}

// SaveJob is idempotent: re-saving an already saved job is a no-op.
func (r *SavedRepository) SaveJob(ctx context.Context, userID, jobID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (user_id, job_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, job_id) DO NOTHING`,
		userID, jobID,
	)
	if isFKViolation(err) {
		return saved.ErrNotFound
	}
	return err
}

func (r *SavedRepository) UnsaveJob(ctx context.Context, userID, jobID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	)
	return err
}

func (r *SavedRepository) ListJobsByUser(ctx context.Context, userID int64) ([]saved.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, job_id, created_at FROM saved_jobs
		 WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]saved.Job, 0)
	for rows.Next() {
		var sj saved.Job
		if err := rows.Scan(&sj.ID, &sj.UserID, &sj.JobID, &sj.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SavedRepository) IsJobSaved(ctx context.Context, userID, jobID int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE user_id = $1 AND job_id = $2)`,
		userID, jobID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *SavedRepository) CreateSearch(ctx context.Context, s saved.Search) (saved.Search, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO saved_searches (user_id, name, search_params)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, name, search_params, created_at`,
		s.UserID, s.Name, s.SearchParams,
	)
	var out saved.Search
	if err := row.Scan(&out.ID, &out.UserID, &out.Name, &out.SearchParams, &out.CreatedAt); err != nil {
		return saved.Search{}, err
	}
	return out, nil
}

func (r *SavedRepository) GetSearchByID(ctx context.Context, id int64) (saved.Search, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, search_params, created_at FROM saved_searches WHERE id = $1`,
		id,
	)
	var out saved.Search
	if err := row.Scan(&out.ID, &out.UserID, &out.Name, &out.SearchParams, &out.CreatedAt); err != nil {
		if isNoRows(err) {
			return saved.Search{}, saved.ErrNotFound
		}
		return saved.Search{}, err
	}
	return out, nil
}

func (r *SavedRepository) ListSearchesByUser(ctx context.Context, userID int64) ([]saved.Search, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, search_params, created_at FROM saved_searches
		 WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]saved.Search, 0)
	for rows.Next() {
		var s saved.Search
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.SearchParams, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SavedRepository) DeleteSearch(ctx context.Context, id int64) error {
	n, err := r.db.Exec(ctx, `DELETE FROM saved_searches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return saved.ErrNotFound
	}
	return nil
}

// SaveCandidate upserts so a re-save just refreshes the notes.
func (r *SavedRepository) SaveCandidate(ctx context.Context, c saved.Candidate) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_candidates (recruiter_id, candidate_id, notes)
		 VALUES ($1, $2, NULLIF($3, ''))
		 ON CONFLICT (recruiter_id, candidate_id) DO UPDATE SET notes = EXCLUDED.notes`,
		c.RecruiterID, c.CandidateID, c.Notes,
	)
	if isFKViolation(err) {
		return saved.ErrNotFound
	}
	return err
}

func (r *SavedRepository) UnsaveCandidate(ctx context.Context, recruiterID, candidateID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM saved_candidates WHERE recruiter_id = $1 AND candidate_id = $2`,
		recruiterID, candidateID,
	)
	return err
}

func (r *SavedRepository) ListCandidatesByRecruiter(ctx context.Context, recruiterID int64) ([]saved.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, recruiter_id, candidate_id, COALESCE(notes, ''), created_at FROM saved_candidates
		 WHERE recruiter_id = $1 ORDER BY created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]saved.Candidate, 0)
	for rows.Next() {
		var c saved.Candidate
		if err := rows.Scan(&c.ID, &c.RecruiterID, &c.CandidateID, &c.Notes, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SavedRepository) IsCandidateSaved(ctx context.Context, recruiterID, candidateID int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_candidates WHERE recruiter_id = $1 AND candidate_id = $2)`,
		recruiterID, candidateID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
