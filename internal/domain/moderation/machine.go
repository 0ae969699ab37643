// Package moderation validates publication lifecycle transitions for jobs and
// resumes. Every edge is listed explicitly; anything else is illegal. Only an
// admin may move a record into active or rejected.
package moderation

import (
	"errors"

	"hireboard/internal/domain/job"
	"hireboard/internal/domain/resume"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Actor is who is attempting the transition. Ownership is established by the
// authorization guard before the machine runs, so the only distinction left
// is owner versus admin.
type Actor int

const (
	ActorOwner Actor = iota
	ActorAdmin
)

type jobEdge struct {
	from, to job.Status
}

// Edges an owner (and therefore also an admin) may take.
var jobOwnerEdges = map[jobEdge]struct{}{
	{job.StatusDraft, job.StatusPendingApproval}: {},
	{job.StatusPendingApproval, job.StatusDraft}: {},
	{job.StatusActive, job.StatusInactive}:       {},
	{job.StatusInactive, job.StatusActive}:       {},
}

// Edges reserved for admins: moderation decisions.
var jobAdminEdges = map[jobEdge]struct{}{
	{job.StatusPendingApproval, job.StatusActive}:   {},
	{job.StatusPendingApproval, job.StatusRejected}: {},
}

// JobTransition reports whether actor may move a posting from one status to
// another. Setting the current status again is a no-op and always legal.
// Rejected is terminal.
func JobTransition(actor Actor, from, to job.Status) error {
	if from == to {
		return nil
	}
	e := jobEdge{from, to}
	if _, ok := jobOwnerEdges[e]; ok {
		return nil
	}
	if _, ok := jobAdminEdges[e]; ok {
		if actor == ActorAdmin {
			return nil
		}
		return ErrInvalidTransition
	}
	return ErrInvalidTransition
}

type resumeEdge struct {
	from, to resume.Status
}

var resumeAdminEdges = map[resumeEdge]struct{}{
	{resume.StatusDraft, resume.StatusActive}:             {},
	{resume.StatusDraft, resume.StatusRejected}:           {},
	{resume.StatusPendingApproval, resume.StatusActive}:   {},
	{resume.StatusPendingApproval, resume.StatusRejected}: {},
}

// ResumeTransition follows the same two-step shape as jobs: approval and
// rejection are admin-only; the owner may only park a resume in draft or
// resubmit it for approval, including after a rejection.
func ResumeTransition(actor Actor, from, to resume.Status) error {
	if from == to {
		return nil
	}
	switch to {
	case resume.StatusDraft, resume.StatusPendingApproval:
		return nil
	}
	if _, ok := resumeAdminEdges[resumeEdge{from, to}]; ok {
		if actor == ActorAdmin {
			return nil
		}
	}
	return ErrInvalidTransition
}
