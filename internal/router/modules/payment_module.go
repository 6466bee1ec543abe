package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/eventhub/internal/interface/http"
	"github.com/oksasatya/eventhub/pkg/helpers"
)

// PaymentModule: /api/payments, all routes authenticated.
type PaymentModule struct {
	Handler *handlers.PaymentHandler
	JWT     *helpers.JWTManager
}

func NewPaymentModule(h *handlers.PaymentHandler, jwt *helpers.JWTManager) *PaymentModule {
	return &PaymentModule{Handler: h, JWT: jwt}
}

func (m *PaymentModule) Register(rg *gin.RouterGroup) {
	g := protected(rg, "/payments", m.JWT)
	{
		g.POST("", m.Handler.Create)
		g.GET("", m.Handler.List)
		g.GET("/:id", m.Handler.Get)
		g.POST("/:id/complete", m.Handler.Complete)
		g.POST("/:id/fail", m.Handler.Fail)
		g.POST("/:id/refund", m.Handler.Refund)
		g.POST("/:id/cancel", m.Handler.Cancel)
		g.PATCH("/:id/metadata", m.Handler.UpdateMetadata)
	}
}
