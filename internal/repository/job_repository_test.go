package repository

import (
	"reflect"
	"strings"
	"testing"

	"hireboard/internal/domain/job"
)

func TestBuildActiveJobsQuery_NoFilter(t *testing.T) {
	query, args := buildActiveJobsQuery(job.Filter{})

	if !strings.Contains(query, "WHERE status = 'active'") {
		t.Fatalf("missing active predicate: %q", query)
	}
	if !strings.HasSuffix(query, "ORDER BY is_featured DESC, created_at DESC, id DESC") {
		t.Fatalf("wrong ordering: %q", query)
	}
	if len(args) != 0 {
		t.Fatalf("args = %#v, want none", args)
	}
}

func TestBuildActiveJobsQuery_SearchSharesOneArg(t *testing.T) {
	query, args := buildActiveJobsQuery(job.Filter{Search: "  golang  "})

	if !strings.Contains(query, "(title ILIKE $1 OR description ILIKE $1)") {
		t.Fatalf("search predicate should reuse a single placeholder: %q", query)
	}
	if !reflect.DeepEqual(args, []any{"%golang%"}) {
		t.Fatalf("args = %#v", args)
	}
}

func TestBuildActiveJobsQuery_AllFilters(t *testing.T) {
	query, args := buildActiveJobsQuery(job.Filter{
		Search:   "engineer",
		Location: "Jakarta",
		JobType:  "full_time",
	})

	for _, cond := range []string{
		"status = 'active'",
		"(title ILIKE $1 OR description ILIKE $1)",
		"location ILIKE $2",
		"job_type = $3",
	} {
		if !strings.Contains(query, cond) {
			t.Fatalf("query %q missing %q", query, cond)
		}
	}
	if !reflect.DeepEqual(args, []any{"%engineer%", "%Jakarta%", "full_time"}) {
		t.Fatalf("args = %#v", args)
	}
}

func TestBuildActiveJobsQuery_BlankFiltersIgnored(t *testing.T) {
	query, args := buildActiveJobsQuery(job.Filter{Search: "   ", Location: "\t", JobType: ""})

	// The SELECT list names the job_type column, so only the WHERE clause
	// may be inspected for leaked predicates.
	_, where, found := strings.Cut(query, " WHERE ")
	if !found {
		t.Fatalf("no WHERE clause in %q", query)
	}
	if strings.Contains(where, "ILIKE") || strings.Contains(where, "job_type = $") {
		t.Fatalf("blank filters leaked into query: %q", where)
	}
	if len(args) != 0 {
		t.Fatalf("args = %#v, want none", args)
	}
}
