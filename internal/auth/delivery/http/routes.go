package http

import (
	"tracker-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	a := r.Group("/auth")
	{
		a.POST("/register", h.Register)
		a.POST("/login", h.Login)
		a.POST("/logout", mw.Auth(), h.Logout)
		a.GET("/me", mw.Auth(), h.Me)
	}
}
