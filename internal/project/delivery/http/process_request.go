package http

import (
	"tracker-api/internal/model"
	"tracker-api/internal/project"
	pkgErrors "tracker-api/pkg/errors"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

var errUnauthorized = pkgErrors.NewUnauthorizedHTTPError()

func (h *Handler) processGetRequest(c *gin.Context) (getReq, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return getReq{}, model.Scope{}, errUnauthorized
	}

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.project.delivery.http.processGetRequest.ShouldBindQuery: %v", err)
		return getReq{}, model.Scope{}, errWrongQuery
	}

	return req, sc, nil
}

func (h *Handler) processCreateRequest(c *gin.Context) (project.CreateInput, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return project.CreateInput{}, model.Scope{}, errUnauthorized
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.project.delivery.http.processCreateRequest.ShouldBindJSON: %v", err)
		return project.CreateInput{}, model.Scope{}, errWrongBody
	}
	ip, err := req.toInput()
	if err != nil {
		return project.CreateInput{}, model.Scope{}, err
	}

	return ip, sc, nil
}

func (h *Handler) processUpdateRequest(c *gin.Context) (project.UpdateInput, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return project.UpdateInput{}, model.Scope{}, errUnauthorized
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.project.delivery.http.processUpdateRequest.ShouldBindJSON: %v", err)
		return project.UpdateInput{}, model.Scope{}, errWrongBody
	}
	ip, err := req.toInput(c.Param("id"))
	if err != nil {
		return project.UpdateInput{}, model.Scope{}, err
	}

	return ip, sc, nil
}
