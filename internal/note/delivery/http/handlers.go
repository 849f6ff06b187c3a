package http

import (
	"tracker-api/pkg/response"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary List notes
// @Description The caller's notes; all=true or user_id need viewAllProjects.
// @Tags Notes
// @Produce json
// @Security Bearer
// @Param all query bool false "Every author"
// @Param user_id query string false "Author"
// @Param search query string false "Title or content"
// @Param pinned query bool false "Pinned only"
// @Success 200 {object} getResp
// @Router /notes [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}
	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.note.delivery.http.Get.ShouldBindQuery: %v", err)
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

// @Summary Get note
// @Tags Notes
// @Produce json
// @Security Bearer
// @Param id path string true "Note ID"
// @Success 200 {object} noteResp
// @Router /notes/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}

	n, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newNoteResp(n))
}

// @Summary Create note
// @Tags Notes
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body createReq true "Note"
// @Success 201 {object} noteResp
// @Router /notes [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.note.delivery.http.Create.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}

	n, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.Created(c, h.newNoteResp(n))
}

// @Summary Update note
// @Tags Notes
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Note ID"
// @Param body body updateReq true "Changes"
// @Success 200 {object} noteResp
// @Router /notes/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.note.delivery.http.Update.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}

	n, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newNoteResp(n))
}

// @Summary Delete note
// @Tags Notes
// @Produce json
// @Security Bearer
// @Param id path string true "Note ID"
// @Success 200 {object} response.Resp
// @Router /notes/{id} [DELETE]
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
