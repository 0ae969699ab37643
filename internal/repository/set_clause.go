package repository

import (
	"fmt"
	"strings"
	"time"
)

// setClause assembles the SET list for explicit per-field patches. Only
// columns whose patch pointer is non-nil make it into the statement, so a
// patch can never clear a field it did not name.
type setClause struct {
	cols []string
	args []any
}

func newSetClause() *setClause {
	return &setClause{}
}

func (s *setClause) add(col string, v any) {
	s.args = append(s.args, v)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", col, len(s.args)))
}

func (s *setClause) addString(col string, v *string) {
	if v != nil {
		s.add(col, *v)
	}
}

func (s *setClause) addInt64(col string, v *int64) {
	if v != nil {
		s.add(col, *v)
	}
}

func (s *setClause) addBool(col string, v *bool) {
	if v != nil {
		s.add(col, *v)
	}
}

func (s *setClause) addTime(col string, v *time.Time) {
	if v != nil {
		s.add(col, *v)
	}
}

func (s *setClause) empty() bool {
	return len(s.cols) == 0
}

func (s *setClause) build(table string, id int64) (string, []any) {
	s.args = append(s.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = now() WHERE id = $%d",
		table, strings.Join(s.cols, ", "), len(s.args),
	)
	return query, s.args
}
