package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) sameSite() http.SameSite {
	switch strings.ToLower(h.cookieCfg.SameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func (h *Handler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(h.cookieCfg.Name, token, h.cookieCfg.MaxAge, "/", h.cookieCfg.Domain, h.cookieCfg.Secure, true)
}

func (h *Handler) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(h.cookieCfg.Name, "", -1, "/", h.cookieCfg.Domain, h.cookieCfg.Secure, true)
}
