package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/student-api/internal/app/models/dto"
	"github.com/yigit/student-api/internal/pkg/logger"
)

// RootMessage is the plain-text liveness answer of GET /
const RootMessage = "Student API is running!"

// Pinger checks that the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the liveness endpoints
type HealthController struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db, timeout: 2 * time.Second}
}

// Root answers with a fixed plain-text message
// @Summary Liveness
// @Tags health
// @Produce plain
// @Success 200 {string} string "Student API is running!"
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.String(http.StatusOK, RootMessage)
}

// Health reports whether the database answers a ping
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), c.timeout)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Health check failed to reach the database")
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "degraded",
			Database: "down",
			Code:     dto.ErrorCodeDatabaseUnavailable,
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
}
