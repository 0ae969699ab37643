package repository

import (
	"reflect"
	"strings"
	"testing"

	"hireboard/internal/domain/resume"
)

func TestBuildPublicResumesQuery_NoFilter(t *testing.T) {
	query, args := buildPublicResumesQuery(resume.Filter{})

	if !strings.Contains(query, "status = 'active'") {
		t.Fatalf("missing active predicate: %q", query)
	}
	if !strings.Contains(query, "visibility IN ('public', 'recruiters_only')") {
		t.Fatalf("missing visibility predicate: %q", query)
	}
	if !strings.HasSuffix(query, "ORDER BY is_premium DESC, updated_at DESC, id DESC") {
		t.Fatalf("wrong ordering: %q", query)
	}
	if len(args) != 0 {
		t.Fatalf("args = %#v, want none", args)
	}
}

func TestBuildPublicResumesQuery_SearchSpansProfileColumns(t *testing.T) {
	query, args := buildPublicResumesQuery(resume.Filter{Search: "kubernetes"})

	if !strings.Contains(query, "(headline ILIKE $1 OR summary ILIKE $1 OR skills ILIKE $1)") {
		t.Fatalf("search predicate should reuse a single placeholder: %q", query)
	}
	if !reflect.DeepEqual(args, []any{"%kubernetes%"}) {
		t.Fatalf("args = %#v", args)
	}
}

func TestBuildPublicResumesQuery_LocationAfterSearch(t *testing.T) {
	query, args := buildPublicResumesQuery(resume.Filter{Search: "sre", Location: "Bandung"})

	if !strings.Contains(query, "location ILIKE $2") {
		t.Fatalf("location should take the second placeholder: %q", query)
	}
	if !reflect.DeepEqual(args, []any{"%sre%", "%Bandung%"}) {
		t.Fatalf("args = %#v", args)
	}
}
