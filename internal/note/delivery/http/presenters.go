package http

import (
	"tracker-api/internal/model"
	"tracker-api/internal/note"
	"tracker-api/pkg/paginator"
	"tracker-api/pkg/response"
)

type getReq struct {
	paginator.PaginateQuery
	All    bool   `form:"all"`
	UserID string `form:"user_id"`
	Search string `form:"search"`
	Pinned *bool  `form:"pinned"`
}

func (r getReq) toInput() note.GetInput {
	pq := r.PaginateQuery
	pq.Adjust()
	return note.GetInput{
		Filter: note.Filter{
			All:    r.All,
			UserID: r.UserID,
			Search: r.Search,
			Pinned: r.Pinned,
		},
		PaginateQuery: pq,
	}
}

type createReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	Pinned  bool   `json:"pinned"`
}

func (r createReq) toInput() note.CreateInput {
	return note.CreateInput{
		Title:   r.Title,
		Content: r.Content,
		Pinned:  r.Pinned,
	}
}

type updateReq struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Pinned  *bool   `json:"pinned"`
}

func (r updateReq) toInput(id string) note.UpdateInput {
	return note.UpdateInput{
		ID:      id,
		Title:   r.Title,
		Content: r.Content,
		Pinned:  r.Pinned,
	}
}

type noteResp struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Pinned    bool              `json:"pinned"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func (h *Handler) newNoteResp(n model.Note) noteResp {
	return noteResp{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		Pinned:    n.Pinned,
		CreatedAt: response.DateTime(n.CreatedAt),
		UpdatedAt: response.DateTime(n.UpdatedAt),
	}
}

type getResp struct {
	Items []noteResp                  `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func (h *Handler) newGetResp(o note.GetNoteOutput) getResp {
	items := make([]noteResp, 0, len(o.Notes))
	for _, n := range o.Notes {
		items = append(items, h.newNoteResp(n))
	}
	return getResp{Items: items, Meta: o.Paginator.ToResponse()}
}
