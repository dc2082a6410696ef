package httpserver

import (
	"github.com/gin-gonic/gin"

	"todo-tracker/pkg/response"
)

// Service identity reported by the probes.
const (
	ServiceName    = "todo-tracker"
	ServiceVersion = "1.0.0"
)

func (srv HTTPServer) probe(status string) gin.H {
	return gin.H{
		"status":      status,
		"service":     ServiceName,
		"version":     ServiceVersion,
		"environment": srv.environment,
	}
}

// healthCheck godoc
// @Summary     Health check
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /health [GET]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.probe("healthy"))
}

// readyCheck also reports the size of the in-memory store.
// @Summary     Readiness check
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /ready [GET]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := srv.probe("ready")
	body["tasks"] = len(srv.taskUC.Snapshot(c.Request.Context()))
	response.OK(c, body)
}

// liveCheck godoc
// @Summary     Liveness check
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /live [GET]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.probe("alive"))
}
