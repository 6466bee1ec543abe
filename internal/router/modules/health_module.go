package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/eventhub/internal/container"
	"github.com/oksasatya/eventhub/internal/interface/middleware"
	"github.com/oksasatya/eventhub/pkg/response"
)

// HealthModule exposes GET /api/health, pinging postgres and redis when configured.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rl := limiter(120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/health", rl, m.check)
}

func (m *HealthModule) check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"postgres": "skipped", "redis": "skipped"}
	healthy := true
	if pool := container.GetPGPool(); pool != nil {
		status["postgres"] = "ok"
		if err := pool.Ping(ctx); err != nil {
			status["postgres"], healthy = err.Error(), false
		}
	}
	if rdb := container.GetRedis(); rdb != nil {
		status["redis"] = "ok"
		if err := rdb.Ping(ctx).Err(); err != nil {
			status["redis"], healthy = err.Error(), false
		}
	}
	if !healthy {
		response.Error[any](c, http.StatusServiceUnavailable, "unhealthy", "UNAVAILABLE", status)
		return
	}
	response.Success(c, http.StatusOK, status, "healthy", nil)
}
