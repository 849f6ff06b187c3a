package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"tracker-api/pkg/response"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary List projects
// @Description Without viewAllProjects only the caller's own projects are returned.
// @Tags Projects
// @Produce json
// @Security Bearer
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param status query string false "planned, active, paused or completed"
// @Param search query string false "Name or description"
// @Param sort query string false "name, created_at, status or start_date"
// @Param order query string false "asc or desc"
// @Success 200 {object} getResp
// @Router /projects [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	o, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newGetResp(o))
}

// @Summary Get project
// @Tags Projects
// @Produce json
// @Security Bearer
// @Param id path string true "Project ID"
// @Success 200 {object} projectResp
// @Failure 404 {object} response.Resp
// @Router /projects/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	p, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newProjectResp(p))
}

// @Summary Create project
// @Description Requires createProjects.
// @Tags Projects
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body createReq true "Project"
// @Success 201 {object} projectResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /projects [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	ip, sc, err := h.processCreateRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	p, err := h.uc.Create(ctx, sc, ip)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.Created(c, h.newProjectResp(p))
}

// @Summary Update project
// @Description Requires editProjects.
// @Tags Projects
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Project ID"
// @Param body body updateReq true "Changes"
// @Success 200 {object} projectResp
// @Router /projects/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	ip, sc, err := h.processUpdateRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	p, err := h.uc.Update(ctx, sc, ip)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newProjectResp(p))
}

// @Summary Delete project
// @Description Soft delete; stored files are removed. Requires deleteProjects.
// @Tags Projects
// @Produce json
// @Security Bearer
// @Param id path string true "Project ID"
// @Success 200 {object} response.Resp
// @Router /projects/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, nil)
}

// @Summary Export projects
// @Description CSV of every project visible to the caller. Requires exportData.
// @Tags Projects
// @Produce text/csv
// @Security Bearer
// @Success 200 {file} file
// @Router /projects/export [GET]
func (h *Handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	var buf bytes.Buffer
	if err := h.uc.Export(ctx, sc, req.toExportInput(), &buf); err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	name := fmt.Sprintf("projects-%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
