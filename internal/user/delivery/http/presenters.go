package http

import (
	"strings"

	"tracker-api/internal/model"
	"tracker-api/internal/user"
	"tracker-api/pkg/paginator"
	"tracker-api/pkg/permission"
	"tracker-api/pkg/response"
)

type getReq struct {
	paginator.PaginateQuery
	Role     string `form:"role"`
	Search   string `form:"search"`
	IsActive *bool  `form:"is_active"`
}

func (r getReq) toInput() user.GetInput {
	pq := r.PaginateQuery
	pq.Adjust()
	return user.GetInput{
		Filter: user.Filter{
			Role:     r.Role,
			Search:   r.Search,
			IsActive: r.IsActive,
		},
		PaginateQuery: pq,
	}
}

type createReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return user.ErrFieldRequired
	}
	if len(r.Password) < user.MinPasswordLen {
		return user.ErrWeakPassword
	}
	return nil
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{
		Username: r.Username,
		Password: r.Password,
		FullName: r.FullName,
		Role:     r.Role,
	}
}

type updateReq struct {
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"is_active"`
}

func (r updateReq) validate() error {
	if r.Role != nil {
		if _, ok := permission.ParseKnownRole(*r.Role); !ok {
			return user.ErrInvalidRole
		}
	}
	return nil
}

func (r updateReq) toInput(id string) user.UpdateInput {
	return user.UpdateInput{
		ID:        id,
		FullName:  r.FullName,
		AvatarURL: r.AvatarURL,
		Role:      r.Role,
		IsActive:  r.IsActive,
	}
}

type updateProfileReq struct {
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

func (r updateProfileReq) toInput() user.UpdateProfileInput {
	return user.UpdateProfileInput{
		FullName:  r.FullName,
		AvatarURL: r.AvatarURL,
	}
}

type userResp struct {
	ID          string            `json:"id"`
	Username    string            `json:"username"`
	FullName    string            `json:"full_name,omitempty"`
	DisplayName string            `json:"display_name"`
	AvatarURL   string            `json:"avatar_url,omitempty"`
	Role        string            `json:"role"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func (h *Handler) newUserResp(u model.User) userResp {
	resp := userResp{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName(),
		Role:        u.Role,
		IsActive:    u.Active(),
		CreatedAt:   response.DateTime(u.CreatedAt),
		UpdatedAt:   response.DateTime(u.UpdatedAt),
	}
	if u.FullName != nil {
		resp.FullName = *u.FullName
	}
	if u.AvatarURL != nil {
		resp.AvatarURL = *u.AvatarURL
	}
	return resp
}

// meResp adds the caller's capability set to the profile.
type meResp struct {
	userResp
	Permissions permission.Set `json:"permissions"`
}

func (h *Handler) newMeResp(u model.User) meResp {
	return meResp{
		userResp:    h.newUserResp(u),
		Permissions: permission.DeriveFromString(u.Role),
	}
}

type getResp struct {
	Items []userResp                  `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func (h *Handler) newGetResp(o user.GetUserOutput) getResp {
	items := make([]userResp, 0, len(o.Users))
	for _, u := range o.Users {
		items = append(items, h.newUserResp(u))
	}
	return getResp{
		Items: items,
		Meta:  o.Paginator.ToResponse(),
	}
}
