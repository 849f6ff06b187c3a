package postgre

import (
	"testing"
	"time"

	"tracker-api/internal/model"
	"tracker-api/internal/vacation/repository"
	"tracker-api/pkg/paginator"
	postgrePkg "tracker-api/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/stretchr/testify/assert"
)

func TestBuildGetQuery_Month(t *testing.T) {
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	sql, args := queries.BuildQuery(postgrePkg.NewQuery(buildGetQuery(repository.GetOptions{
		Filter:        repository.Filter{Status: model.VacationStatusApproved, From: from, To: to},
		PaginateQuery: paginator.PaginateQuery{Page: 1, Limit: 20},
	})...))

	assert.Contains(t, sql, `FROM "vacations"`)
	assert.NotContains(t, sql, "user_id = ")
	assert.Contains(t, sql, "status = $1")
	assert.Contains(t, sql, "end_date >= $2")
	assert.Contains(t, sql, "start_date <= $3")
	assert.Contains(t, sql, "ORDER BY start_date DESC, id ASC")
	assert.Equal(t, []interface{}{"approved", from, to}, args)
}

func TestBuildOverlapQuery(t *testing.T) {
	from := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		opts     repository.OverlapOptions
		wantArgs []interface{}
		exclude  bool
	}{
		{
			name:     "new request",
			opts:     repository.OverlapOptions{UserID: "u1", From: from, To: to},
			wantArgs: []interface{}{"u1", "pending", "approved", to, from},
		},
		{
			name:     "re-approval skips itself",
			opts:     repository.OverlapOptions{UserID: "u1", From: from, To: to, ExcludeID: "v1"},
			wantArgs: []interface{}{"u1", "pending", "approved", to, from, "v1"},
			exclude:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := queries.BuildQuery(postgrePkg.NewQuery(buildOverlapQuery(tt.opts)...))
			assert.Contains(t, sql, `"status" IN ($2,$3)`)
			assert.Contains(t, sql, "start_date <= $4")
			assert.Contains(t, sql, "end_date >= $5")
			if tt.exclude {
				assert.Contains(t, sql, "id <> $6")
			}
			assert.Equal(t, tt.exclude, len(args) == 6)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
