package http

import (
	"tracker-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	notes := r.Group("/notes", mw.Auth())
	{
		notes.GET("", h.Get)
		notes.POST("", h.Create)
		notes.GET("/:id", h.Detail)
		notes.PUT("/:id", h.Update)
		notes.DELETE("/:id", h.Delete)
	}
}
