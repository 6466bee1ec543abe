package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/eventhub/internal/interface/http"
	"github.com/oksasatya/eventhub/pkg/helpers"
)

// AttendeeModule registers attendees under their event and manages them by id.
type AttendeeModule struct {
	Handler *handlers.AttendeeHandler
	JWT     *helpers.JWTManager
}

func NewAttendeeModule(h *handlers.AttendeeHandler, jwt *helpers.JWTManager) *AttendeeModule {
	return &AttendeeModule{Handler: h, JWT: jwt}
}

func (m *AttendeeModule) Register(rg *gin.RouterGroup) {
	events := protected(rg, "/events/:eventId/attendees", m.JWT)
	events.POST("", m.Handler.Register)
	events.GET("", m.Handler.ListByEvent)

	g := protected(rg, "/attendees", m.JWT)
	{
		g.GET("/:id", m.Handler.Get)
		g.POST("/:id/check-in", m.Handler.CheckIn)
		g.PUT("/:id/status", m.Handler.ChangeStatus)
		g.PUT("/:id/ticket", m.Handler.AssignTicket)
		g.PUT("/:id/notes", m.Handler.AddNotes)
		g.POST("/:id/cancel", m.Handler.Cancel)
	}
}
