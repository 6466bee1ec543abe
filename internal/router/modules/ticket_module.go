package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/eventhub/internal/interface/http"
	"github.com/oksasatya/eventhub/pkg/helpers"
)

// TicketModule: /api/tickets. QR routes serve door scanners.
type TicketModule struct {
	Handler *handlers.TicketHandler
	JWT     *helpers.JWTManager
}

func NewTicketModule(h *handlers.TicketHandler, jwt *helpers.JWTManager) *TicketModule {
	return &TicketModule{Handler: h, JWT: jwt}
}

func (m *TicketModule) Register(rg *gin.RouterGroup) {
	g := protected(rg, "/tickets", m.JWT)
	{
		g.POST("", m.Handler.Issue)
		g.GET("", m.Handler.List)
		g.GET("/qr/:code", m.Handler.GetByQRCode)
		g.POST("/qr/:code/use", m.Handler.UseByQRCode)
		g.GET("/:id", m.Handler.Get)
		g.POST("/:id/use", m.Handler.Use)
		g.POST("/:id/cancel", m.Handler.Cancel)
		g.POST("/:id/expire", m.Handler.Expire)
		g.PATCH("/:id/metadata", m.Handler.UpdateMetadata)
	}
}
