package http

import (
	"strings"
	"time"

	"tracker-api/internal/model"
	"tracker-api/internal/project"
	"tracker-api/pkg/paginator"
	"tracker-api/pkg/response"
)

func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(*s))
	if err != nil {
		return nil, errInvalidDate
	}
	return &t, nil
}

type getReq struct {
	paginator.PaginateQuery
	paginator.SortQuery
	Status string `form:"status"`
	Search string `form:"search"`
}

func (r getReq) filter() project.Filter {
	return project.Filter{
		Status: model.ProjectStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		Search: r.Search,
	}
}

func (r getReq) toInput() project.GetInput {
	pq := r.PaginateQuery
	pq.Adjust()
	return project.GetInput{
		Filter:        r.filter(),
		Sort:          r.SortQuery,
		PaginateQuery: pq,
	}
}

func (r getReq) toExportInput() project.ExportInput {
	return project.ExportInput{
		Filter: r.filter(),
		Sort:   r.SortQuery,
	}
}

type createReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

func (r createReq) toInput() (project.CreateInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return project.CreateInput{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return project.CreateInput{}, err
	}
	return project.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		Status:      model.ProjectStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		StartDate:   start,
		EndDate:     end,
	}, nil
}

type updateReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

func (r updateReq) toInput(id string) (project.UpdateInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return project.UpdateInput{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return project.UpdateInput{}, err
	}
	ip := project.UpdateInput{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		StartDate:   start,
		EndDate:     end,
	}
	if r.Status != nil {
		s := model.ProjectStatus(strings.ToLower(strings.TrimSpace(*r.Status)))
		ip.Status = &s
	}
	return ip, nil
}

type projectResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Status      string            `json:"status"`
	OwnerID     string            `json:"owner_id"`
	StartDate   *response.Date    `json:"start_date,omitempty"`
	EndDate     *response.Date    `json:"end_date,omitempty"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func (h *Handler) newProjectResp(p model.Project) projectResp {
	resp := projectResp{
		ID:        p.ID,
		Name:      p.Name,
		Status:    p.Status.String(),
		OwnerID:   p.OwnerID,
		CreatedAt: response.DateTime(p.CreatedAt),
		UpdatedAt: response.DateTime(p.UpdatedAt),
	}
	if p.Description != nil {
		resp.Description = *p.Description
	}
	if p.StartDate != nil {
		d := response.Date(*p.StartDate)
		resp.StartDate = &d
	}
	if p.EndDate != nil {
		d := response.Date(*p.EndDate)
		resp.EndDate = &d
	}
	return resp
}

type getResp struct {
	Items []projectResp               `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func (h *Handler) newGetResp(o project.GetProjectOutput) getResp {
	items := make([]projectResp, 0, len(o.Projects))
	for _, p := range o.Projects {
		items = append(items, h.newProjectResp(p))
	}
	return getResp{
		Items: items,
		Meta:  o.Paginator.ToResponse(),
	}
}
