package application

import (
	"fmt"
	"time"
)

// Status is the review lifecycle of an application. The initial state is
// always submitted; later states are set only by the job's recruiter or an
// admin.
type Status string

const (
	StatusSubmitted   Status = "submitted"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
	StatusAccepted    Status = "accepted"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusSubmitted, StatusReviewed, StatusShortlisted, StatusRejected, StatusAccepted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("invalid application status %q", s)
	}
}

type Application struct {
	ID          int64
	JobID       int64
	JobSeekerID int64
	ResumeID    int64
	CoverLetter string
	Status      Status
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
