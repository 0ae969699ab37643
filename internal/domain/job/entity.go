package job

import (
	"fmt"
	"time"
)

// Status is the moderation lifecycle state of a posting.
type Status string

const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusActive          Status = "active"
	StatusInactive        Status = "inactive"
	StatusRejected        Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusPendingApproval, StatusActive, StatusInactive, StatusRejected:
		return Status(s), nil
	default:
		return "", fmt.Errorf("invalid job status %q", s)
	}
}

type Type string

const (
	TypeFullTime   Type = "full_time"
	TypePartTime   Type = "part_time"
	TypeContract   Type = "contract"
	TypeSeasonal   Type = "seasonal"
	TypeInternship Type = "internship"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeFullTime, TypePartTime, TypeContract, TypeSeasonal, TypeInternship:
		return Type(s), nil
	default:
		return "", fmt.Errorf("invalid job type %q", s)
	}
}

type ExperienceLevel string

const (
	LevelEntry        ExperienceLevel = "entry"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelSenior       ExperienceLevel = "senior"
	LevelExpert       ExperienceLevel = "expert"
)

func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	switch ExperienceLevel(s) {
	case LevelEntry, LevelIntermediate, LevelSenior, LevelExpert:
		return ExperienceLevel(s), nil
	default:
		return "", fmt.Errorf("invalid experience level %q", s)
	}
}

type Job struct {
	ID              int64
	CompanyID       int64
	RecruiterID     int64
	Title           string
	Description     string
	Location        string
	JobType         Type
	ExperienceLevel ExperienceLevel
	SalaryMin       *int64
	SalaryMax       *int64
	SalaryCurrency  string
	Skills          string
	Status          Status
	IsFeatured      bool
	ExpiresAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Patch is a field-by-field partial update; nil leaves a field unchanged.
// Status changes are validated by the moderation state machine before the
// patch is applied.
type Patch struct {
	Title           *string
	Description     *string
	Location        *string
	JobType         *Type
	ExperienceLevel *ExperienceLevel
	SalaryMin       *int64
	SalaryMax       *int64
	SalaryCurrency  *string
	Skills          *string
	Status          *Status
	IsFeatured      *bool
	ExpiresAt       *time.Time
}

// Filter holds the public-listing predicates. Empty fields impose no
// predicate; all present predicates are conjunctive.
type Filter struct {
	Search   string
	Location string
	JobType  string
}
