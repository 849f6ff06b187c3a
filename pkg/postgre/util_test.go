package postgre

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUUID(t *testing.T) {
	assert.NoError(t, IsUUID(NewUUID()))
	assert.ErrorIs(t, IsUUID(""), ErrInvalidUUID)
	assert.ErrorIs(t, IsUUID("123"), ErrInvalidUUID)
	assert.False(t, IsValidUUID("x"))
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: "users_username_key"}

	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", dup), "users_username_key"))
	assert.False(t, IsUniqueViolation(dup, "other_key"))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestIsExclusionViolation(t *testing.T) {
	overlap := &pq.Error{Code: "23P01", Constraint: "vacations_no_overlap"}

	assert.True(t, IsExclusionViolation(overlap))
	assert.True(t, IsExclusionViolation(fmt.Errorf("insert: %w", overlap), "vacations_no_overlap"))
	assert.False(t, IsExclusionViolation(overlap, "other"))
	assert.False(t, IsExclusionViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(overlap))
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "pump", want: "%pump%"},
		{name: "percent", in: "%", want: "%!%%"},
		{name: "underscore", in: "a_b", want: "%a!_b%"},
		{name: "escape char", in: "hi!", want: "%hi!!%"},
		{name: "backslash untouched", in: `a\b`, want: `%a\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsPattern(tt.in))
		})
	}
}

func TestNewQuery(t *testing.T) {
	q := NewQuery(
		qm.Select("id"),
		qm.From("projects"),
		qm.Where("owner_id = ?", "u1"),
		qm.Limit(10),
	)
	sql, args := queries.BuildQuery(q)

	assert.Equal(t, `SELECT "id" FROM "projects" WHERE (owner_id = $1) LIMIT 10;`, sql)
	assert.Equal(t, []interface{}{"u1"}, args)
}
