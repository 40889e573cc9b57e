package httpserver

import (
	"github.com/gin-gonic/gin"

	"todo-summary-assistant/pkg/response"
)

const (
	HealthMessage = "Todo Summary Assistant is running"
	HealthVersion = "1.0.0"
	ServiceName   = "todo-summary-assistant"
)

type healthResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
}

func probe(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, healthResp{
			Status:  status,
			Message: HealthMessage,
			Version: HealthVersion,
			Service: ServiceName,
		})
	}
}

// healthCheck godoc
// @Summary Health check
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResp
// @Router  /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) { probe("healthy")(c) }

// readyCheck godoc
// @Summary Readiness check. The store is in memory, so ready means the process is up.
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResp
// @Router  /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) { probe("ready")(c) }

// liveCheck godoc
// @Summary Liveness check
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResp
// @Router  /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) { probe("alive")(c) }
