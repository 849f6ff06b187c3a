package postgre

import (
	"time"

	"tracker-api/internal/model"
)

const (
	tableNotes = "notes"
	noteCols   = "id, user_id, title, content, pinned, created_at, updated_at"
)

type noteRow struct {
	ID        string    `boil:"id"`
	UserID    string    `boil:"user_id"`
	Title     string    `boil:"title"`
	Content   string    `boil:"content"`
	Pinned    bool      `boil:"pinned"`
	CreatedAt time.Time `boil:"created_at"`
	UpdatedAt time.Time `boil:"updated_at"`
}

func (r noteRow) toModel() model.Note {
	return model.Note{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		Pinned:    r.Pinned,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toModels(rows []noteRow) []model.Note {
	res := make([]model.Note, len(rows))
	for i, r := range rows {
		res[i] = r.toModel()
	}
	return res
}
