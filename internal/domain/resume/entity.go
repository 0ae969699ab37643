package resume

import (
	"fmt"
	"time"
)

type Visibility string

const (
	VisibilityPublic         Visibility = "public"
	VisibilityPrivate        Visibility = "private"
	VisibilityRecruitersOnly Visibility = "recruiters_only"
)

func ParseVisibility(s string) (Visibility, error) {
	switch Visibility(s) {
	case VisibilityPublic, VisibilityPrivate, VisibilityRecruitersOnly:
		return Visibility(s), nil
	default:
		return "", fmt.Errorf("invalid visibility %q", s)
	}
}

type Status string

const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusActive          Status = "active"
	StatusRejected        Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusPendingApproval, StatusActive, StatusRejected:
		return Status(s), nil
	default:
		return "", fmt.Errorf("invalid resume status %q", s)
	}
}

type Resume struct {
	ID             int64
	UserID         int64
	Headline       string
	Summary        string
	Experience     string
	Education      string
	Skills         string
	Certifications string
	Location       string
	PhoneNumber    string
	LinkedinURL    string
	PortfolioURL   string
	PhotoURL       string
	Visibility     Visibility
	Status         Status
	IsPremium      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Patch struct {
	Headline       *string
	Summary        *string
	Experience     *string
	Education      *string
	Skills         *string
	Certifications *string
	Location       *string
	PhoneNumber    *string
	LinkedinURL    *string
	PortfolioURL   *string
	PhotoURL       *string
	Visibility     *Visibility
	Status         *Status
}

// Filter holds the public resume-listing predicates.
type Filter struct {
	Search   string
	Location string
}
