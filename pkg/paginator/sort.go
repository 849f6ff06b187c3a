package paginator

import "strings"

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortQuery is a client supplied ordering, e.g. ?sort=name&order=desc.
type SortQuery struct {
	Field string `json:"sort" form:"sort"`
	Order string `json:"order" form:"order"`
}

// Resolve maps the requested field through allowed (client name -> column).
// Unknown fields fall back to def; the direction defaults to dir.
func (s SortQuery) Resolve(allowed map[string]string, def string, dir Direction) (string, Direction) {
	col, ok := allowed[strings.ToLower(strings.TrimSpace(s.Field))]
	if !ok {
		col = def
	}
	switch Direction(strings.ToLower(strings.TrimSpace(s.Order))) {
	case Asc:
		dir = Asc
	case Desc:
		dir = Desc
	}
	return col, dir
}

// OrderBy renders a column and direction for an ORDER BY clause.
func OrderBy(col string, dir Direction) string {
	if dir == Desc {
		return col + " DESC"
	}
	return col + " ASC"
}
