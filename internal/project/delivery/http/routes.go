package http

import (
	"tracker-api/internal/middleware"
	"tracker-api/pkg/permission"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	projects := r.Group("/projects", mw.Auth())
	{
		projects.GET("", h.Get)
		projects.GET("/export", mw.RequirePermission(permission.ExportData), h.Export)
		projects.POST("", mw.RequirePermission(permission.CreateProjects), h.Create)
		projects.GET("/:id", h.Detail)
		projects.PUT("/:id", mw.RequirePermission(permission.EditProjects), h.Update)
		projects.DELETE("/:id", mw.RequirePermission(permission.DeleteProjects), h.Delete)
	}
}
