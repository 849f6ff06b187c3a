package http

import (
	"tracker-api/internal/middleware"
	"tracker-api/pkg/permission"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /users. Profile routes need only a session; the rest
// need manageUsers.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	users := r.Group("/users", mw.Auth())
	{
		users.GET("/me", h.DetailMe)
		users.PUT("/me", h.UpdateProfile)

		admin := users.Group("", mw.RequirePermission(permission.ManageUsers))
		admin.GET("", h.Get)
		admin.POST("", h.Create)
		admin.GET("/:id", h.Detail)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}
