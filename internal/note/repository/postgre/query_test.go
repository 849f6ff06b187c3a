package postgre

import (
	"testing"

	"tracker-api/internal/note/repository"
	"tracker-api/pkg/paginator"
	postgrePkg "tracker-api/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/stretchr/testify/assert"
)

func TestBuildGetQuery(t *testing.T) {
	pinned := true
	sql, args := queries.BuildQuery(postgrePkg.NewQuery(buildGetQuery(repository.GetOptions{
		Filter:        repository.Filter{UserID: "u1", Pinned: &pinned, Search: "pump"},
		PaginateQuery: paginator.PaginateQuery{Page: 2, Limit: 5},
	})...))

	assert.Contains(t, sql, `FROM "notes"`)
	assert.Contains(t, sql, "user_id = $1")
	assert.Contains(t, sql, "pinned = $2")
	assert.Contains(t, sql, "title ILIKE $3 ESCAPE '!' OR content ILIKE $4 ESCAPE '!'")
	assert.Contains(t, sql, "ORDER BY pinned DESC, updated_at DESC, id ASC")
	assert.Contains(t, sql, "LIMIT 5 OFFSET 5")
	assert.Equal(t, []interface{}{"u1", true, "%pump%", "%pump%"}, args)
}

func TestBuildFilterQuery_Everyone(t *testing.T) {
	sql, args := queries.BuildQuery(postgrePkg.NewQuery(buildGetQuery(repository.GetOptions{
		PaginateQuery: paginator.PaginateQuery{Page: 1, Limit: 10},
	})...))
	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}
