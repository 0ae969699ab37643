package saved

import "time"

// Job is a seeker's bookmark on a posting. Saving twice is idempotent.
type Job struct {
	ID        int64
	UserID    int64
	JobID     int64
	CreatedAt time.Time
}

// Search is a named, serialized set of listing filters owned by a seeker.
type Search struct {
	ID           int64
	UserID       int64
	Name         string
	SearchParams string
	CreatedAt    time.Time
}

// Candidate is a recruiter's bookmark on a seeker, with optional notes.
type Candidate struct {
	ID          int64
	RecruiterID int64
	CandidateID int64
	Notes       string
	CreatedAt   time.Time
}
