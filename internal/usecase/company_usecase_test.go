package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"hireboard/internal/domain/company"
)

func TestCompanyUsecase_Create_RequiresRecruiter(t *testing.T) {
	uc := NewCompanyUsecase(&mockCompanyRepo{}, discardLogger())

	if _, err := uc.Create(context.Background(), seekerCaller(1), CreateCompanyInput{Name: "Acme"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.Create(context.Background(), recruiterCaller(42), CreateCompanyInput{Name: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name: expected ErrInvalidInput, got %v", err)
	}
}

func TestCompanyUsecase_Create_OwnedByCaller(t *testing.T) {
	repo := &mockCompanyRepo{}
	uc := NewCompanyUsecase(repo, discardLogger())

	created, err := uc.Create(context.Background(), recruiterCaller(42), CreateCompanyInput{Name: " Acme "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.RecruiterID != 42 {
		t.Fatalf("expected recruiter 42, got %d", created.RecruiterID)
	}
	if created.Name != "Acme" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
}

func TestCompanyUsecase_Update_OwnerOnly(t *testing.T) {
	repo := &mockCompanyRepo{byID: map[int64]company.Company{
		7: {ID: 7, RecruiterID: 42, Name: "Acme"},
	}}
	uc := NewCompanyUsecase(repo, discardLogger())

	if err := uc.Update(context.Background(), recruiterCaller(7), 7, company.Patch{Name: strPtr("Evil")}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger: expected ErrForbidden, got %v", err)
	}
	if err := uc.Update(context.Background(), recruiterCaller(42), 7, company.Patch{Name: strPtr("")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name: expected ErrInvalidInput, got %v", err)
	}
	if err := uc.Update(context.Background(), recruiterCaller(42), 7, company.Patch{Name: strPtr("Acme Corp")}); err != nil {
		t.Fatalf("owner: unexpected err %v", err)
	}
	if err := uc.Update(context.Background(), adminCaller(9), 7, company.Patch{Name: strPtr("Acme Inc")}); err != nil {
		t.Fatalf("admin: unexpected err %v", err)
	}

	if err := uc.Update(context.Background(), recruiterCaller(42), 404, company.Patch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing company: expected ErrNotFound, got %v", err)
	}
}

func TestCompanyUsecase_GetByID_WrappedNotFound(t *testing.T) {
	repo := &mockCompanyRepo{getErr: fmt.Errorf("company 9: %w", company.ErrNotFound)}
	uc := NewCompanyUsecase(repo, discardLogger())

	if _, err := uc.GetByID(context.Background(), 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("wrapped sentinel: expected ErrNotFound, got %v", err)
	}
}

func TestCompanyUsecase_ListAll_DegradesToEmpty(t *testing.T) {
	repo := &mockCompanyRepo{listErr: errors.New("connection refused")}
	uc := NewCompanyUsecase(repo, discardLogger())

	out, err := uc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("public listing must not surface storage errors, got %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", out)
	}
}
