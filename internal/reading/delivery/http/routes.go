package http

import (
	"tracker-api/internal/middleware"
	"tracker-api/pkg/permission"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	readings := r.Group("/readings")
	{
		readings.POST("", h.Ingest)
		readings.GET("/ws", mw.StreamAuth(), h.Stream)

		authed := readings.Group("", mw.Auth())
		authed.GET("", h.Get)
		authed.GET("/summary", mw.RequirePermission(permission.ViewReports), h.Summary)
		authed.GET("/export", mw.RequirePermission(permission.ExportData), h.Export)
		authed.POST("/ws/ticket", h.Ticket)
	}
}
