package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hireboard/internal/domain/job"
	"hireboard/internal/domain/resume"
)

func TestJobTransition(t *testing.T) {
	cases := []struct {
		name  string
		actor Actor
		from  job.Status
		to    job.Status
		ok    bool
	}{
		{"owner submits draft", ActorOwner, job.StatusDraft, job.StatusPendingApproval, true},
		{"owner withdraws submission", ActorOwner, job.StatusPendingApproval, job.StatusDraft, true},
		{"owner pauses active", ActorOwner, job.StatusActive, job.StatusInactive, true},
		{"owner resumes inactive", ActorOwner, job.StatusInactive, job.StatusActive, true},
		{"owner cannot approve", ActorOwner, job.StatusPendingApproval, job.StatusActive, false},
		{"owner cannot reject", ActorOwner, job.StatusPendingApproval, job.StatusRejected, false},
		{"owner cannot activate draft", ActorOwner, job.StatusDraft, job.StatusActive, false},
		{"admin approves", ActorAdmin, job.StatusPendingApproval, job.StatusActive, true},
		{"admin rejects", ActorAdmin, job.StatusPendingApproval, job.StatusRejected, true},
		{"admin cannot activate draft", ActorAdmin, job.StatusDraft, job.StatusActive, false},
		{"rejected is terminal for owner", ActorOwner, job.StatusRejected, job.StatusDraft, false},
		{"rejected is terminal for admin", ActorAdmin, job.StatusRejected, job.StatusActive, false},
		{"same state owner", ActorOwner, job.StatusRejected, job.StatusRejected, true},
		{"same state admin", ActorAdmin, job.StatusActive, job.StatusActive, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := JobTransition(tc.actor, tc.from, tc.to)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestResumeTransition(t *testing.T) {
	cases := []struct {
		name  string
		actor Actor
		from  resume.Status
		to    resume.Status
		ok    bool
	}{
		{"owner parks in draft", ActorOwner, resume.StatusActive, resume.StatusDraft, true},
		{"owner resubmits after rejection", ActorOwner, resume.StatusRejected, resume.StatusPendingApproval, true},
		{"owner cannot approve", ActorOwner, resume.StatusPendingApproval, resume.StatusActive, false},
		{"owner cannot reject", ActorOwner, resume.StatusPendingApproval, resume.StatusRejected, false},
		{"admin approves submission", ActorAdmin, resume.StatusPendingApproval, resume.StatusActive, true},
		{"admin approves draft", ActorAdmin, resume.StatusDraft, resume.StatusActive, true},
		{"admin rejects", ActorAdmin, resume.StatusPendingApproval, resume.StatusRejected, true},
		{"admin cannot activate rejected", ActorAdmin, resume.StatusRejected, resume.StatusActive, false},
		{"same state", ActorOwner, resume.StatusActive, resume.StatusActive, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ResumeTransition(tc.actor, tc.from, tc.to)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}
