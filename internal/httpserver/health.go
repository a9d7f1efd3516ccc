package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "strategy-shop/pkg/errors"
	"strategy-shop/pkg/response"
)

const (
	HealthMessage = "Your business strategist is in"
	HealthVersion = "1.0.0"
	ServiceName   = "strategy-shop"

	readyTimeout = 2 * time.Second
)

// ReadinessCheck probes one backing dependency (Redis, Postgres).
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

func statusBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusBody("healthy"))
}

// readyCheck reports ready once every configured dependency answers.
// @Summary Readiness Check
// @Description Check that the API and its storage backends can serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "A dependency is down"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	for _, rc := range srv.readiness {
		if err := rc.Check(ctx); err != nil {
			srv.l.Warnf(ctx, "readiness %s: %v", rc.Name, err)
			response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, fmt.Sprintf("%s unavailable", rc.Name)))
			return
		}
	}

	response.OK(c, statusBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusBody("alive"))
}
