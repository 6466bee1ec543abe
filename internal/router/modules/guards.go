package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/eventhub/internal/container"
	"github.com/oksasatya/eventhub/internal/interface/middleware"
	"github.com/oksasatya/eventhub/pkg/helpers"
)

// protected returns a group under rg at path that requires an access token and
// limits writes per user. Reads are not counted.
func protected(rg *gin.RouterGroup, path string, jwt *helpers.JWTManager) *gin.RouterGroup {
	cfg := container.GetConfig()
	allow := middleware.ReadsOnly()
	if cfg.RateLimitSkipPrivate {
		allow = middleware.AnyOf(allow, middleware.AllowPrivateIP())
	}
	g := rg.Group(path)
	g.Use(middleware.Auth(jwt), limiter(cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByUserID(), allow))
	return g
}

// limiter is a pass-through when redis is not configured.
func limiter(max int, window time.Duration, key middleware.KeyFunc, allow middleware.AllowFunc) gin.HandlerFunc {
	rdb := container.GetRedis()
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(rdb, max, window, key, allow)
}
