package http

import (
	"tracker-api/internal/middleware"
	"tracker-api/pkg/permission"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the files of a project under /projects/:id/files.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	files := r.Group("/projects/:id/files", mw.Auth())
	{
		files.GET("", h.List)
		files.POST("", mw.RequirePermission(permission.EditProjects), h.Upload)
		files.GET("/:fileID/download", h.Download)
		files.DELETE("/:fileID", mw.RequirePermission(permission.EditProjects), h.Delete)
	}
}
