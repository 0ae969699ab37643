package dto

import (
	"time"

	"hireboard/internal/domain/job"
)

type JobResponse struct {
	ID              int64      `json:"id"`
	CompanyID       int64      `json:"company_id"`
	RecruiterID     int64      `json:"recruiter_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	JobType         string     `json:"job_type"`
	ExperienceLevel string     `json:"experience_level"`
	SalaryMin       *int64     `json:"salary_min"`
	SalaryMax       *int64     `json:"salary_max"`
	SalaryCurrency  string     `json:"salary_currency"`
	Skills          string     `json:"skills"`
	Status          string     `json:"status"`
	IsFeatured      bool       `json:"is_featured"`
	ExpiresAt       *time.Time `json:"expires_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromJob(j job.Job) JobResponse {
	return JobResponse{
		ID:              j.ID,
		CompanyID:       j.CompanyID,
		RecruiterID:     j.RecruiterID,
		Title:           j.Title,
		Description:     j.Description,
		Location:        j.Location,
		JobType:         string(j.JobType),
		ExperienceLevel: string(j.ExperienceLevel),
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		SalaryCurrency:  j.SalaryCurrency,
		Skills:          j.Skills,
		Status:          string(j.Status),
		IsFeatured:      j.IsFeatured,
		ExpiresAt:       j.ExpiresAt,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

func FromJobs(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
