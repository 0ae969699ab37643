package company

import "time"

type Company struct {
	ID          int64
	RecruiterID int64
	Name        string
	Description string
	Website     string
	LogoURL     string
	BannerURL   string
	Location    string
	Industry    string
	CompanySize string
	IsPremium   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Patch is a field-by-field partial update. Nil means "leave unchanged".
// RecruiterID is deliberately absent: ownership is immutable.
type Patch struct {
	Name        *string
	Description *string
	Website     *string
	LogoURL     *string
	BannerURL   *string
	Location    *string
	Industry    *string
	CompanySize *string
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Website == nil &&
		p.LogoURL == nil && p.BannerURL == nil && p.Location == nil &&
		p.Industry == nil && p.CompanySize == nil
}
