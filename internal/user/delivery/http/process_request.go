package http

import (
	"tracker-api/internal/model"
	"tracker-api/pkg/response"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processGetRequest(c *gin.Context) (getReq, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		h.l.Warnf(ctx, "internal.user.delivery.http.processGetRequest: missing scope")
		return getReq{}, model.Scope{}, errUnauthorized
	}

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.processGetRequest.ShouldBindQuery: %v", err)
		return getReq{}, model.Scope{}, errWrongQuery
	}

	return req, sc, nil
}

func (h *Handler) processCreateRequest(c *gin.Context) (createReq, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return createReq{}, model.Scope{}, errUnauthorized
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.processCreateRequest.ShouldBindJSON: %v", err)
		return createReq{}, model.Scope{}, errWrongBody
	}
	if err := req.validate(); err != nil {
		return createReq{}, model.Scope{}, err
	}

	return req, sc, nil
}

func (h *Handler) processUpdateRequest(c *gin.Context) (updateReq, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return updateReq{}, model.Scope{}, errUnauthorized
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.processUpdateRequest.ShouldBindJSON: %v", err)
		return updateReq{}, model.Scope{}, errWrongBody
	}
	if err := req.validate(); err != nil {
		return updateReq{}, model.Scope{}, err
	}

	return req, sc, nil
}

func (h *Handler) processUpdateProfileRequest(c *gin.Context) (updateProfileReq, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return updateProfileReq{}, model.Scope{}, errUnauthorized
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.processUpdateProfileRequest.ShouldBindJSON: %v", err)
		return updateProfileReq{}, model.Scope{}, errWrongBody
	}

	return req, sc, nil
}

func (h *Handler) processScope(c *gin.Context) (model.Scope, bool) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
	}
	return sc, ok
}
