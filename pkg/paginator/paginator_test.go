package paginator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjust(t *testing.T) {
	tests := []struct {
		name      string
		in        PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{name: "defaults", in: PaginateQuery{}, wantPage: 1, wantLimit: DefaultLimit},
		{name: "capped", in: PaginateQuery{Page: 3, Limit: 500}, wantPage: 3, wantLimit: MaxLimit},
		{name: "kept", in: PaginateQuery{Page: 2, Limit: 20}, wantPage: 2, wantLimit: 20},
		{name: "huge page capped", in: PaginateQuery{Page: math.MaxInt, Limit: 50}, wantPage: MaxPage, wantLimit: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Adjust()
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantLimit, q.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name string
		in   PaginateQuery
		want int64
	}{
		{name: "first page", in: PaginateQuery{Page: 1, Limit: 20}, want: 0},
		{name: "third page", in: PaginateQuery{Page: 3, Limit: 10}, want: 20},
		{name: "zero page", in: PaginateQuery{Page: 0, Limit: 10}, want: 0},
		{name: "huge page stays positive", in: PaginateQuery{Page: math.MaxInt, Limit: math.MaxInt64}, want: int64(MaxPage-1) * MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Offset())
		})
	}
}

func TestToResponse(t *testing.T) {
	r := New(PaginateQuery{Page: 2, Limit: 10}, 25, 10).ToResponse()
	assert.Equal(t, 3, r.TotalPages)
	assert.True(t, r.HasNext)
	assert.True(t, r.HasPrev)
	assert.Equal(t, 0, Paginator{}.TotalPages())
}

func TestPaginateSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, p := PaginateSlice(items, PaginateQuery{Page: 2, Limit: 2})
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, int64(5), p.Total)

	page, p = PaginateSlice(items, PaginateQuery{Page: 9, Limit: 2})
	assert.Empty(t, page)
	assert.Equal(t, int64(0), p.Count)
}

func TestSortQuery_Resolve(t *testing.T) {
	allowed := map[string]string{"name": "name", "created_at": "created_at"}

	col, dir := SortQuery{Field: "Name", Order: "DESC"}.Resolve(allowed, "created_at", Asc)
	assert.Equal(t, "name", col)
	assert.Equal(t, Desc, dir)

	col, dir = SortQuery{Field: "password_hash; drop", Order: "sideways"}.Resolve(allowed, "created_at", Desc)
	assert.Equal(t, "created_at", col)
	assert.Equal(t, Desc, dir)

	assert.Equal(t, "name DESC", OrderBy("name", Desc))
	assert.Equal(t, "name ASC", OrderBy("name", Asc))
}
