package http

import (
	"strings"
	"time"

	"tracker-api/internal/model"
	"tracker-api/internal/vacation"
	"tracker-api/pkg/paginator"
	"tracker-api/pkg/response"
)

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

type getReq struct {
	paginator.PaginateQuery
	All    bool   `form:"all"`
	UserID string `form:"user_id"`
	Status string `form:"status"`
	Month  string `form:"month"`
}

func (r getReq) toInput() vacation.GetInput {
	pq := r.PaginateQuery
	pq.Adjust()
	return vacation.GetInput{
		Filter: vacation.Filter{
			All:    r.All,
			UserID: r.UserID,
			Status: model.VacationStatus(strings.ToLower(strings.TrimSpace(r.Status))),
			Month:  strings.TrimSpace(r.Month),
		},
		PaginateQuery: pq,
	}
}

type createReq struct {
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	Reason    *string `json:"reason"`
}

func (r createReq) toInput() (vacation.CreateInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return vacation.CreateInput{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return vacation.CreateInput{}, err
	}
	return vacation.CreateInput{StartDate: start, EndDate: end, Reason: r.Reason}, nil
}

type decideReq struct {
	Status string `json:"status" binding:"required"`
}

func (r decideReq) toInput(id string) vacation.DecideInput {
	return vacation.DecideInput{
		ID:     id,
		Status: model.VacationStatus(strings.ToLower(strings.TrimSpace(r.Status))),
	}
}

type vacationResp struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	StartDate  response.Date     `json:"start_date"`
	EndDate    response.Date     `json:"end_date"`
	Days       int               `json:"days"`
	Reason     *string           `json:"reason,omitempty"`
	Status     string            `json:"status"`
	ReviewedBy *string           `json:"reviewed_by,omitempty"`
	CreatedAt  response.DateTime `json:"created_at"`
	UpdatedAt  response.DateTime `json:"updated_at"`
}

func (h *Handler) newVacationResp(v model.Vacation) vacationResp {
	return vacationResp{
		ID:         v.ID,
		UserID:     v.UserID,
		StartDate:  response.Date(v.StartDate),
		EndDate:    response.Date(v.EndDate),
		Days:       v.Days(),
		Reason:     v.Reason,
		Status:     string(v.Status),
		ReviewedBy: v.ReviewedBy,
		CreatedAt:  response.DateTime(v.CreatedAt),
		UpdatedAt:  response.DateTime(v.UpdatedAt),
	}
}

type getResp struct {
	Items []vacationResp              `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func (h *Handler) newGetResp(o vacation.GetVacationOutput) getResp {
	items := make([]vacationResp, 0, len(o.Vacations))
	for _, v := range o.Vacations {
		items = append(items, h.newVacationResp(v))
	}
	return getResp{Items: items, Meta: o.Paginator.ToResponse()}
}
