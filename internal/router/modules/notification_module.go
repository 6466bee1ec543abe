package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/eventhub/internal/interface/http"
	"github.com/oksasatya/eventhub/pkg/helpers"
)

// NotificationModule: template management plus POST /api/notifications/dispatch.
type NotificationModule struct {
	Handler *handlers.NotificationHandler
	JWT     *helpers.JWTManager
}

func NewNotificationModule(h *handlers.NotificationHandler, jwt *helpers.JWTManager) *NotificationModule {
	return &NotificationModule{Handler: h, JWT: jwt}
}

func (m *NotificationModule) Register(rg *gin.RouterGroup) {
	g := protected(rg, "/notification-templates", m.JWT)
	{
		g.POST("", m.Handler.Create)
		g.GET("", m.Handler.List)
		g.GET("/by-name/:name", m.Handler.GetByName)
		g.GET("/:id", m.Handler.Get)
		g.PATCH("/:id", m.Handler.Update)
		g.POST("/:id/activate", m.Handler.Activate)
		g.POST("/:id/deactivate", m.Handler.Deactivate)
		g.POST("/:id/preview", m.Handler.Preview)
	}

	n := protected(rg, "/notifications", m.JWT)
	n.POST("/dispatch", m.Handler.Dispatch)
}
