package httpserver

import (
	"context"
	"net/http"
	"time"

	"tracker-api/pkg/auth"
	"tracker-api/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName  = "tracker-api"
	version      = "1.0.0"
	probeTimeout = 3 * time.Second
)

// @Summary Health Check
// @Description Process is up and its stores answer.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	checks := srv.probe(c.Request.Context())
	status := "healthy"
	for _, v := range checks {
		if v != "ok" {
			status = "degraded"
		}
	}

	response.OK(c, gin.H{
		"status":  status,
		"service": serviceName,
		"version": version,
		"checks":  checks,
		"streams": srv.streamStats(),
	})
}

// @Summary Readiness Check
// @Description Ready once PostgreSQL, Redis and MinIO all answer.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	checks := srv.probe(c.Request.Context())
	for _, v := range checks {
		if v != "ok" {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not_ready",
				"service": serviceName,
				"checks":  checks,
			})
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
		"version": version,
		"checks":  checks,
	})
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
		"version": version,
	})
}

func (srv *HTTPServer) probe(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	result := func(err error) string {
		if err != nil {
			srv.logger.Warnf(ctx, "internal.httpserver.probe: %v", err)
			return err.Error()
		}
		return "ok"
	}

	return map[string]string{
		"postgres": result(srv.postgresDB.PingContext(ctx)),
		"redis":    result(srv.redis.Ping(ctx)),
		"minio":    result(srv.minio.HealthCheck(ctx)),
	}
}

func (srv *HTTPServer) streamStats() auth.ConnectionTrackerStats {
	if srv.streams == nil {
		return auth.ConnectionTrackerStats{}
	}
	return srv.streams.Stats()
}
