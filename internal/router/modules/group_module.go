package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/eventhub/internal/interface/http"
	"github.com/oksasatya/eventhub/pkg/helpers"
)

type GroupModule struct {
	Handler *handlers.GroupHandler
	JWT     *helpers.JWTManager
}

func NewGroupModule(h *handlers.GroupHandler, jwt *helpers.JWTManager) *GroupModule {
	return &GroupModule{Handler: h, JWT: jwt}
}

func (m *GroupModule) Register(rg *gin.RouterGroup) {
	g := protected(rg, "/groups", m.JWT)
	{
		g.POST("", m.Handler.Create)
		g.GET("", m.Handler.List)
		g.GET("/invitations/:code", m.Handler.FindByInvitationCode)
		g.GET("/:id", m.Handler.Get)
		g.GET("/:id/can-join", m.Handler.CanJoin)
		g.PUT("/:id", m.Handler.Update)
		g.POST("/:id/invitation-code", m.Handler.RegenerateInvitationCode)
		g.POST("/:id/activate", m.Handler.Activate)
		g.POST("/:id/deactivate", m.Handler.Deactivate)
		g.POST("/:id/close", m.Handler.Close)
		g.PATCH("/:id/metadata", m.Handler.UpdateMetadata)
	}
}
