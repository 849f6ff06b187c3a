package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"tracker-api/pkg/response"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Ingest reading
// @Description Device endpoint authenticated by the X-Device-Key header.
// @Tags Readings
// @Accept json
// @Produce json
// @Param X-Device-Key header string true "Device key"
// @Param body body ingestReq true "Reading"
// @Success 201 {object} readingResp
// @Router /readings [POST]
func (h *Handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	var req ingestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.reading.delivery.http.Ingest.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}

	r, err := h.uc.Ingest(ctx, req.toInput(c.GetHeader(deviceKeyHeader)))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.Created(c, newReadingResp(r))
}

// @Summary List readings
// @Description Newest first.
// @Tags Readings
// @Produce json
// @Security Bearer
// @Param device_id query string false "Device"
// @Param device_type query string false "esp32 or raspberry_pi"
// @Param from query string false "RFC 3339 or YYYY-MM-DD"
// @Param to query string false "RFC 3339 or YYYY-MM-DD"
// @Success 200 {object} getResp
// @Router /readings [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}
	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.reading.delivery.http.Get.ShouldBindQuery: %v", err)
		response.Error(c, errWrongQuery, nil)
		return
	}
	ip, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.Get(ctx, sc, ip)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, newGetResp(o))
}

// @Summary Reading summary
// @Description Per-device min, max, average and count. Requires viewReports.
// @Tags Readings
// @Produce json
// @Security Bearer
// @Param device_type query string false "esp32 or raspberry_pi"
// @Param from query string false "RFC 3339 or YYYY-MM-DD"
// @Param to query string false "RFC 3339 or YYYY-MM-DD"
// @Success 200 {array} summaryResp
// @Router /readings/summary [GET]
func (h *Handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	f, sc, err := h.processFilterRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	ss, err := h.uc.Summary(ctx, sc, f)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, newSummaryResp(ss))
}

// @Summary Export readings
// @Description CSV of matching readings. Requires exportData.
// @Tags Readings
// @Produce text/csv
// @Security Bearer
// @Success 200 {file} file
// @Router /readings/export [GET]
func (h *Handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	f, sc, err := h.processFilterRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	var buf bytes.Buffer
	if err := h.uc.Export(ctx, sc, f, &buf); err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	name := fmt.Sprintf("readings-%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// @Summary Live stream ticket
// @Description Short-lived ticket for the websocket handshake (?ticket=).
// @Tags Readings
// @Produce json
// @Security Bearer
// @Success 200 {object} ticketResp
// @Router /readings/ws/ticket [POST]
func (h *Handler) Ticket(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errUnauthorized, nil)
		return
	}

	o, err := h.uc.Ticket(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, ticketResp{Ticket: o.Ticket, ExpiresAt: response.DateTime(o.ExpiresAt)})
}
