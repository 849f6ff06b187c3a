package http

import (
	"tracker-api/pkg/response"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary List vacations
// @Description The caller's requests; all=true or user_id need viewReports.
// @Tags Vacations
// @Produce json
// @Security Bearer
// @Param all query bool false "Every requester"
// @Param user_id query string false "Requester"
// @Param status query string false "pending, approved or rejected"
// @Param month query string false "YYYY-MM"
// @Success 200 {object} getResp
// @Router /vacations [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}
	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.vacation.delivery.http.Get.ShouldBindQuery: %v", err)
		response.Error(c, errWrongQuery, nil)
		return
	}

	o, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newGetResp(o))
}

// @Summary Get vacation
// @Tags Vacations
// @Produce json
// @Security Bearer
// @Param id path string true "Vacation ID"
// @Success 200 {object} vacationResp
// @Router /vacations/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}

	v, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newVacationResp(v))
}

// @Summary Request vacation
// @Tags Vacations
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body createReq true "Inclusive YYYY-MM-DD range"
// @Success 201 {object} vacationResp
// @Router /vacations [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.vacation.delivery.http.Create.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}
	ip, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	v, err := h.uc.Create(ctx, sc, ip)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.Created(c, h.newVacationResp(v))
}

// @Summary Approve or reject vacation
// @Tags Vacations
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Vacation ID"
// @Param body body decideReq true "approved or rejected"
// @Success 200 {object} vacationResp
// @Router /vacations/{id}/status [PUT]
func (h *Handler) Decide(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}
	var req decideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.vacation.delivery.http.Decide.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}

	v, err := h.uc.Decide(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newVacationResp(v))
}

// @Summary Delete vacation
// @Description Requesters withdraw pending requests; admins delete any.
// @Tags Vacations
// @Produce json
// @Security Bearer
// @Param id path string true "Vacation ID"
// @Success 200 {object} response.Resp
// @Router /vacations/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, nil)
}
