package http

import (
	"tracker-api/internal/attachment"
	"tracker-api/pkg/response"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Upload file
// @Description Stores a file for the project. Requires editProjects.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param id path string true "Project ID"
// @Param file formData file true "File"
// @Success 201 {object} attachmentResp
// @Failure 413 {object} response.Resp
// @Failure 415 {object} response.Resp
// @Router /projects/{id}/files [POST]
func (h *Handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		h.l.Warnf(ctx, "internal.attachment.delivery.http.Upload.FormFile: %v", err)
		response.Error(c, errMissingFile, nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.l.Errorf(ctx, "internal.attachment.delivery.http.Upload.Open: %v", err)
		response.Error(c, err, h.d)
		return
	}
	defer f.Close()

	a, err := h.uc.Upload(ctx, sc, attachment.UploadInput{
		ProjectID: c.Param("id"),
		FileName:  fh.Filename,
		Size:      fh.Size,
		Reader:    f,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.Created(c, h.newAttachmentResp(a))
}

// @Summary List files
// @Tags Files
// @Produce json
// @Security Bearer
// @Param id path string true "Project ID"
// @Success 200 {object} listResp
// @Router /projects/{id}/files [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}

	as, err := h.uc.List(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newListResp(as))
}

// @Summary Download file
// @Description Returns a short-lived presigned URL.
// @Tags Files
// @Produce json
// @Security Bearer
// @Param id path string true "Project ID"
// @Param fileID path string true "File ID"
// @Success 200 {object} downloadResp
// @Router /projects/{id}/files/{fileID}/download [GET]
func (h *Handler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}

	o, err := h.uc.Download(ctx, sc, c.Param("id"), c.Param("fileID"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newDownloadResp(o))
}

// @Summary Delete file
// @Description Requires editProjects.
// @Tags Files
// @Produce json
// @Security Bearer
// @Param id path string true "Project ID"
// @Param fileID path string true "File ID"
// @Success 200 {object} response.Resp
// @Router /projects/{id}/files/{fileID} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id"), c.Param("fileID")); err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, nil)
}
