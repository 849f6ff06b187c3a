package http

import (
	"tracker-api/internal/middleware"
	"tracker-api/pkg/permission"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	vacations := r.Group("/vacations", mw.Auth())
	{
		vacations.GET("", h.Get)
		vacations.POST("", h.Create)
		vacations.GET("/:id", h.Detail)
		vacations.PUT("/:id/status", mw.RequirePermission(permission.EditProjects), h.Decide)
		vacations.DELETE("/:id", h.Delete)
	}
}
