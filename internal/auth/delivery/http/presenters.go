package http

import (
	"strings"

	"tracker-api/internal/auth"
	"tracker-api/internal/model"
	"tracker-api/pkg/permission"
	"tracker-api/pkg/response"
)

type registerReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

func (r registerReq) validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return auth.ErrFieldRequired
	}
	return nil
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Username: r.Username,
		Password: r.Password,
		FullName: r.FullName,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}

type userResp struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName(),
		Role:        u.Role,
	}
}

type loginResp struct {
	Token       string            `json:"token"`
	ExpiresAt   response.DateTime `json:"expires_at"`
	User        userResp          `json:"user"`
	Role        string            `json:"role"`
	Permissions permission.Set    `json:"permissions"`
}

func (h *Handler) newLoginResp(o auth.LoginOutput) loginResp {
	return loginResp{
		Token:       o.Token,
		ExpiresAt:   response.DateTime(o.ExpiresAt),
		User:        newUserResp(o.User),
		Role:        o.User.Role,
		Permissions: o.Permissions,
	}
}

type meResp struct {
	User        userResp                `json:"user"`
	Role        string                  `json:"role"`
	Permissions permission.Set          `json:"permissions"`
	Granted     []permission.Permission `json:"granted"`
}

func (h *Handler) newMeResp(o auth.MeOutput) meResp {
	return meResp{
		User:        newUserResp(o.User),
		Role:        o.Principal.RawRole,
		Permissions: o.Permissions,
		Granted:     o.Permissions.Granted(),
	}
}
