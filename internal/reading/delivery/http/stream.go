package http

import (
	"context"
	"errors"
	"strings"
	"time"

	"tracker-api/internal/reading"
	"tracker-api/pkg/auth"
	"tracker-api/pkg/response"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// @Summary Live readings
// @Description Websocket stream of one device's readings. Authenticate with ?ticket=, a bearer token or the auth cookie.
// @Tags Readings
// @Param device_id query string true "Device"
// @Param ticket query string false "Ticket from /readings/ws/ticket"
// @Success 101 {string} string "Switching Protocols"
// @Router /readings/ws [GET]
func (h *Handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}
	deviceID := strings.TrimSpace(c.Query("device_id"))
	if deviceID == "" {
		response.Error(c, errDeviceIDRequired, nil)
		return
	}

	if err := h.tracker.Acquire(sc.UserID, deviceID); err != nil {
		var rl *auth.RateLimitError
		if errors.As(err, &rl) {
			h.security.LogRateLimitExceeded(ctx, rl)
		}
		response.Error(c, errTooManyStreams, nil)
		return
	}
	defer h.tracker.Release(sc.UserID, deviceID)

	s, err := h.uc.Subscribe(ctx, sc, deviceID)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}
	defer s.Close()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "internal.reading.delivery.http.Stream.Upgrade: %v", err)
		return
	}
	defer conn.Close()

	h.pump(ctx, conn, s)
}

// pump writes readings and pings until the client goes away or the stream
// ends. Inbound frames are discarded; reading them keeps pong handling alive.
func (h *Handler) pump(ctx context.Context, conn *websocket.Conn, s reading.Stream) {
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		conn.SetReadLimit(maxMessageSize)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.l.Warnf(ctx, "internal.reading.delivery.http.pump.ReadMessage: %v", err)
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case r, ok := <-s.Readings():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := conn.WriteJSON(newReadingResp(r)); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-gone:
			return
		case <-ctx.Done():
			return
		}
	}
}
