package http

import (
	"tracker-api/internal/model"
	"tracker-api/internal/reading"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processFilterRequest(c *gin.Context) (reading.Filter, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return reading.Filter{}, model.Scope{}, errUnauthorized
	}

	var req filterReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.reading.delivery.http.processFilterRequest.ShouldBindQuery: %v", err)
		return reading.Filter{}, model.Scope{}, errWrongQuery
	}
	f, err := req.toFilter()
	if err != nil {
		return reading.Filter{}, model.Scope{}, err
	}

	return f, sc, nil
}
