package dto

import (
	"time"

	"hireboard/internal/domain/company"
)

type CompanyResponse struct {
	ID          int64     `json:"id"`
	RecruiterID int64     `json:"recruiter_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	LogoURL     string    `json:"logo_url"`
	BannerURL   string    `json:"banner_url"`
	Location    string    `json:"location"`
	Industry    string    `json:"industry"`
	CompanySize string    `json:"company_size"`
	IsPremium   bool      `json:"is_premium"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromCompany(c company.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		RecruiterID: c.RecruiterID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		LogoURL:     c.LogoURL,
		BannerURL:   c.BannerURL,
		Location:    c.Location,
		Industry:    c.Industry,
		CompanySize: c.CompanySize,
		IsPremium:   c.IsPremium,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCompanies(companies []company.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, FromCompany(c))
	}
	return out
}
