package usecase

import (
	"strings"
	"testing"

	"hireboard/internal/domain/job"
)

func TestActiveJobsCacheKey_NormalizesFilter(t *testing.T) {
	a := activeJobsCacheKey(job.Filter{Search: "Go Engineer", Location: "Berlin"})
	b := activeJobsCacheKey(job.Filter{Search: "  go engineer ", Location: "BERLIN"})
	if a != b {
		t.Fatalf("equivalent filters must share a key: %q vs %q", a, b)
	}
}

func TestActiveJobsCacheKey_DistinguishesFilters(t *testing.T) {
	a := activeJobsCacheKey(job.Filter{Search: "go"})
	b := activeJobsCacheKey(job.Filter{Location: "go"})
	if a == b {
		t.Fatalf("field position must matter, both got %q", a)
	}
}

func TestActiveJobsCacheKey_Prefix(t *testing.T) {
	key := activeJobsCacheKey(job.Filter{})
	if !strings.HasPrefix(key, activeJobsKeyPrefix) {
		t.Fatalf("key %q lacks listing prefix", key)
	}
}
