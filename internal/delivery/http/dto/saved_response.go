package dto

import (
	"time"

	"hireboard/internal/domain/saved"
)

type SavedJobResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	JobID     int64     `json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
}

type SavedSearchResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Name         string    `json:"name"`
	SearchParams string    `json:"search_params"`
	CreatedAt    time.Time `json:"created_at"`
}

type SavedCandidateResponse struct {
	ID          int64     `json:"id"`
	RecruiterID int64     `json:"recruiter_id"`
	CandidateID int64     `json:"candidate_id"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromSavedJobs(items []saved.Job) []SavedJobResponse {
	out := make([]SavedJobResponse, 0, len(items))
	for _, s := range items {
		out = append(out, SavedJobResponse{ID: s.ID, UserID: s.UserID, JobID: s.JobID, CreatedAt: s.CreatedAt})
	}
	return out
}

func FromSavedSearch(s saved.Search) SavedSearchResponse {
	return SavedSearchResponse{ID: s.ID, UserID: s.UserID, Name: s.Name, SearchParams: s.SearchParams, CreatedAt: s.CreatedAt}
}

func FromSavedSearches(items []saved.Search) []SavedSearchResponse {
	out := make([]SavedSearchResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSavedSearch(s))
	}
	return out
}

func FromSavedCandidates(items []saved.Candidate) []SavedCandidateResponse {
	out := make([]SavedCandidateResponse, 0, len(items))
	for _, s := range items {
		out = append(out, SavedCandidateResponse{ID: s.ID, RecruiterID: s.RecruiterID, CandidateID: s.CandidateID, Notes: s.Notes, CreatedAt: s.CreatedAt})
	}
	return out
}
