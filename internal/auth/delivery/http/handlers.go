package http

import (
	"tracker-api/internal/auth"
	"tracker-api/pkg/response"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Register
// @Description Creates an account with the base role.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body registerReq true "Account"
// @Success 201 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.Register.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}
	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	u, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.Created(c, newUserResp(u))
}

// @Summary Login
// @Description Returns a bearer token with the caller's role and capability set, and sets the auth cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginReq true "Credentials"
// @Success 200 {object} loginResp
// @Failure 401 {object} response.Resp
// @Router /auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.Login.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}

	o, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	h.setAuthCookie(c, o.Token)
	response.OK(c, h.newLoginResp(o))
}

// @Summary Logout
// @Description Revokes the current token and clears the auth cookie.
// @Tags Auth
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Resp
// @Router /auth/logout [POST]
func (h *Handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}
	payload, _ := scope.GetPayloadFromContext(ctx)

	ip := auth.LogoutInput{JTI: sc.JTI}
	if payload.ExpiresAt != nil {
		ip.ExpiresAt = payload.ExpiresAt.Time
	}
	if err := h.uc.Logout(ctx, sc, ip); err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	h.clearAuthCookie(c)
	response.OK(c, nil)
}

// @Summary Current session
// @Description Principal and derived capability set of the token holder.
// @Tags Auth
// @Produce json
// @Security Bearer
// @Success 200 {object} meResp
// @Failure 401 {object} response.Resp
// @Router /auth/me [GET]
func (h *Handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	o, err := h.uc.Me(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newMeResp(o))
}
