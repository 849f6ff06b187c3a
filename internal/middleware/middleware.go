package middleware

import (
	"encoding/json"
	"strings"

	"tracker-api/internal/model"
	"tracker-api/pkg/response"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

const (
	bearerPrefix = "Bearer "
	ticketQuery  = "ticket"
)

// Auth verifies the access token from the Authorization header or the auth
// cookie and stores the caller's scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := m.extractToken(c)
		if token == "" {
			m.l.Warnf(ctx, "internal.middleware.Auth: missing token | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.security.LogAuthenticationFailure(ctx, "", err.Error())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := scope.NewScope(payload)
		if !m.accept(c, sc) {
			return
		}

		ctx = scope.SetPayloadToContext(ctx, payload)
		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

// StreamAuth accepts a sealed ticket in the query string, which browsers can
// pass to a websocket handshake, and otherwise behaves like Auth.
func (m Middleware) StreamAuth() gin.HandlerFunc {
	fallback := m.Auth()
	return func(c *gin.Context) {
		ticket := c.Query(ticketQuery)
		if ticket == "" {
			fallback(c)
			return
		}
		ctx := c.Request.Context()

		raw, err := m.encrypter.OpenTicket(ticket)
		if err != nil {
			m.security.LogAuthenticationFailure(ctx, "ticket", err.Error())
			response.Unauthorized(c)
			c.Abort()
			return
		}
		var sc model.Scope
		if err := json.Unmarshal([]byte(raw), &sc); err != nil || sc.UserID == "" {
			m.security.LogAuthenticationFailure(ctx, "ticket", "malformed scope")
			response.Unauthorized(c)
			c.Abort()
			return
		}
		sc = scope.RestoreScope(sc)
		if !m.accept(c, sc) {
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

// accept rejects scopes whose token was revoked. It aborts c on failure.
func (m Middleware) accept(c *gin.Context, sc model.Scope) bool {
	ctx := c.Request.Context()
	if m.revocations == nil {
		return true
	}
	revoked, err := m.revocations.IsRevoked(ctx, sc.JTI)
	if err != nil {
		m.l.Errorf(ctx, "internal.middleware.accept.IsRevoked: %v", err)
		response.Unauthorized(c)
		c.Abort()
		return false
	}
	if revoked {
		m.security.LogAuthenticationFailure(ctx, sc.UserID, "revoked token")
		response.Unauthorized(c)
		c.Abort()
		return false
	}
	return true
}

func (m Middleware) extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if !strings.HasPrefix(h, bearerPrefix) {
			return ""
		}
		return strings.TrimSpace(h[len(bearerPrefix):])
	}
	if cookie, err := c.Cookie(m.cookieConfig.Name); err == nil {
		return cookie
	}
	return ""
}
