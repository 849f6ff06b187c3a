package http

import (
	"net/http"
	"slices"
	"time"

	"tracker-api/internal/reading"
	"tracker-api/pkg/auth"
	"tracker-api/pkg/discord"
	pkgLog "tracker-api/pkg/log"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

type Handler struct {
	l        pkgLog.Logger
	uc       reading.UseCase
	d        discord.IDiscord
	tracker  *auth.ConnectionTracker
	security *auth.SecurityLogger
	upgrader websocket.Upgrader
}

// New builds the reading handler. Stream handshakes are accepted from
// allowedOrigins, or from any origin when the list is empty.
func New(l pkgLog.Logger, uc reading.UseCase, d discord.IDiscord, tracker *auth.ConnectionTracker, allowedOrigins []string) *Handler {
	return &Handler{
		l:        l,
		uc:       uc,
		d:        d,
		tracker:  tracker,
		security: auth.NewSecurityLogger(l),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}
