package dto

import (
	"time"

	"hireboard/internal/domain/application"
)

type ApplicationResponse struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	JobSeekerID int64     `json:"job_seeker_id"`
	ResumeID    int64     `json:"resume_id"`
	CoverLetter string    `json:"cover_letter"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromApplication(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		JobSeekerID: a.JobSeekerID,
		ResumeID:    a.ResumeID,
		CoverLetter: a.CoverLetter,
		Status:      string(a.Status),
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func FromApplications(apps []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, FromApplication(a))
	}
	return out
}
