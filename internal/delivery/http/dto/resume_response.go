package dto

import (
	"time"

	"hireboard/internal/domain/resume"
)

type ResumeResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Headline       string    `json:"headline"`
	Summary        string    `json:"summary"`
	Experience     string    `json:"experience"`
	Education      string    `json:"education"`
	Skills         string    `json:"skills"`
	Certifications string    `json:"certifications"`
	Location       string    `json:"location"`
	PhoneNumber    string    `json:"phone_number"`
	LinkedinURL    string    `json:"linkedin_url"`
	PortfolioURL   string    `json:"portfolio_url"`
	PhotoURL       string    `json:"photo_url"`
	Visibility     string    `json:"visibility"`
	Status         string    `json:"status"`
	IsPremium      bool      `json:"is_premium"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromResume(r resume.Resume) ResumeResponse {
	return ResumeResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		Headline:       r.Headline,
		Summary:        r.Summary,
		Experience:     r.Experience,
		Education:      r.Education,
		Skills:         r.Skills,
		Certifications: r.Certifications,
		Location:       r.Location,
		PhoneNumber:    r.PhoneNumber,
		LinkedinURL:    r.LinkedinURL,
		PortfolioURL:   r.PortfolioURL,
		PhotoURL:       r.PhotoURL,
		Visibility:     string(r.Visibility),
		Status:         string(r.Status),
		IsPremium:      r.IsPremium,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func FromResumes(resumes []resume.Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(resumes))
	for _, r := range resumes {
		out = append(out, FromResume(r))
	}
	return out
}
