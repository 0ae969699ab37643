package usecase

import (
	"context"
	"errors"
	"testing"

	"hireboard/internal/domain/saved"
)

func TestSavedUsecase_JobBookmarks_SeekerOnly(t *testing.T) {
	repo := &mockSavedRepo{}
	uc := NewSavedUsecase(repo)

	if err := uc.SaveJob(context.Background(), recruiterCaller(1), 3); !errors.Is(err, ErrForbidden) {
		t.Fatalf("recruiter save: expected ErrForbidden, got %v", err)
	}

	if err := uc.SaveJob(context.Background(), seekerCaller(5), 3); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Saving twice is idempotent at the store; the usecase just passes through.
	if err := uc.SaveJob(context.Background(), seekerCaller(5), 3); err != nil {
		t.Fatalf("repeat save: unexpected err %v", err)
	}

	ok, err := uc.IsJobSaved(context.Background(), seekerCaller(5), 3)
	if err != nil || !ok {
		t.Fatalf("expected saved=true, got %v err=%v", ok, err)
	}

	if err := uc.UnsaveJob(context.Background(), seekerCaller(5), 3); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ok, _ = uc.IsJobSaved(context.Background(), seekerCaller(5), 3)
	if ok {
		t.Fatalf("expected saved=false after unsave")
	}
}

func TestSavedUsecase_CreateSearch_Validation(t *testing.T) {
	uc := NewSavedUsecase(&mockSavedRepo{})

	if _, err := uc.CreateSearch(context.Background(), seekerCaller(5), " ", `{"q":"go"}`); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.CreateSearch(context.Background(), seekerCaller(5), "go jobs", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank params: expected ErrInvalidInput, got %v", err)
	}

	s, err := uc.CreateSearch(context.Background(), seekerCaller(5), " go jobs ", `{"q":"go"}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Name != "go jobs" {
		t.Fatalf("expected trimmed name, got %q", s.Name)
	}
	if s.UserID != 5 {
		t.Fatalf("expected owner 5, got %d", s.UserID)
	}
}

func TestSavedUsecase_DeleteSearch_OwnerOnly(t *testing.T) {
	repo := &mockSavedRepo{}
	uc := NewSavedUsecase(repo)

	s, err := uc.CreateSearch(context.Background(), seekerCaller(5), "go jobs", `{"q":"go"}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.DeleteSearch(context.Background(), seekerCaller(6), s.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger delete: expected ErrForbidden, got %v", err)
	}
	if err := uc.DeleteSearch(context.Background(), seekerCaller(5), s.ID); err != nil {
		t.Fatalf("owner delete: unexpected err %v", err)
	}
	if err := uc.DeleteSearch(context.Background(), seekerCaller(5), s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete: expected ErrNotFound, got %v", err)
	}
}

func TestSavedUsecase_Candidates_RecruiterOnly(t *testing.T) {
	repo := &mockSavedRepo{}
	uc := NewSavedUsecase(repo)

	if err := uc.SaveCandidate(context.Background(), seekerCaller(5), 9, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("seeker save candidate: expected ErrForbidden, got %v", err)
	}

	if err := uc.SaveCandidate(context.Background(), recruiterCaller(42), 9, "strong Go"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ok, err := uc.IsCandidateSaved(context.Background(), recruiterCaller(42), 9)
	if err != nil || !ok {
		t.Fatalf("expected saved=true, got %v err=%v", ok, err)
	}

	if err := uc.UnsaveCandidate(context.Background(), recruiterCaller(42), 9); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestSavedUsecase_SaveJob_MissingJob(t *testing.T) {
	uc := NewSavedUsecase(&mockSavedRepo{err: saved.ErrNotFound})

	if err := uc.SaveJob(context.Background(), seekerCaller(5), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing job: expected ErrNotFound, got %v", err)
	}
}

func TestSavedUsecase_SaveCandidate_MissingCandidate(t *testing.T) {
	uc := NewSavedUsecase(&mockSavedRepo{err: saved.ErrNotFound})

	if err := uc.SaveCandidate(context.Background(), recruiterCaller(42), 404, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing candidate: expected ErrNotFound, got %v", err)
	}
}

func TestSavedUsecase_Anonymous(t *testing.T) {
	uc := NewSavedUsecase(&mockSavedRepo{})

	if _, err := uc.ListSavedJobs(context.Background(), seekerCaller(0)); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
