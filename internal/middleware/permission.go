package middleware

import (
	"net/http"

	"tracker-api/pkg/errors"
	"tracker-api/pkg/permission"
	"tracker-api/pkg/response"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

const missingPermissionMsg = "missing permission"

// RequirePermission aborts with 403 unless the caller holds every perm.
// It must run after Auth.
func (m Middleware) RequirePermission(perms ...permission.Permission) gin.HandlerFunc {
	return m.require(perms, true)
}

// RequireAnyPermission aborts with 403 unless the caller holds at least one perm.
func (m Middleware) RequireAnyPermission(perms ...permission.Permission) gin.HandlerFunc {
	return m.require(perms, false)
}

func (m Middleware) require(perms []permission.Permission, all bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sc, ok := scope.GetScopeFromContext(ctx)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		set := sc.Permissions()
		granted := set.HasAny(perms...)
		if all {
			granted = set.HasAll(perms...)
		}
		if granted {
			c.Next()
			return
		}

		collector := errors.NewPermissionErrorCollector()
		missing := make([]string, 0, len(perms))
		for _, p := range perms {
			if set.Has(p) {
				continue
			}
			missing = append(missing, string(p))
			collector.Add(errors.NewPermissionError(http.StatusForbidden, string(p), missingPermissionMsg))
		}
		m.security.LogPermissionDenied(ctx, sc.UserID, sc.RawRole, c.Request.Method, c.FullPath(), missing)

		response.Error(c, collector, nil)
		c.Abort()
	}
}
