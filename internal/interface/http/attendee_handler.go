package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/eventhub/internal/application"
	"github.com/oksasatya/eventhub/internal/domain/entity"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
	"github.com/oksasatya/eventhub/internal/interface/middleware"
	"github.com/oksasatya/eventhub/pkg/response"
)

type AttendeeHandler struct {
	Svc    *app.AttendeeService
	Logger *logrus.Logger
}

func NewAttendeeHandler(svc *app.AttendeeService, logger *logrus.Logger) *AttendeeHandler {
	return &AttendeeHandler{Svc: svc, Logger: logger}
}

type registerAttendeeRequest struct {
	TicketID string `json:"ticket_id"`
	Notes    string `json:"notes"`
}

type changeStatusRequest struct {
	Status string `json:"status" binding:"required,attendance"`
}

type assignTicketRequest struct {
	TicketID string `json:"ticket_id"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

func attendeeBody(a entity.EventAttendee) entity.EventAttendeeProps { return a.Props() }

// Register signs the caller up for the event in the path.
func (h *AttendeeHandler) Register(c *gin.Context) {
	var req registerAttendeeRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	a, err := h.Svc.Register(c.Request.Context(), app.RegisterAttendeeInput{
		EventID:  c.Param("eventId"),
		UserID:   middleware.UserID(c),
		TicketID: req.TicketID,
		Notes:    req.Notes,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, attendeeBody(a), "attendee registered", nil)
}

func (h *AttendeeHandler) Get(c *gin.Context) {
	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, attendeeBody(a), "ok", nil)
}

func (h *AttendeeHandler) ListByEvent(c *gin.Context) {
	status, ok := statusQuery(c, "status", vo.NewAttendanceStatus)
	if !ok {
		return
	}
	opts := listOptions(c)
	page, err := h.Svc.ListByEvent(c.Request.Context(), c.Param("eventId"), status, opts)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writePage(c, page, opts, attendeeBody)
}

func (h *AttendeeHandler) CheckIn(c *gin.Context) {
	h.transition(c, "attendee checked in", func() (entity.EventAttendee, error) {
		return h.Svc.CheckIn(c.Request.Context(), c.Param("id"))
	})
}

func (h *AttendeeHandler) ChangeStatus(c *gin.Context) {
	var req changeStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	h.transition(c, "attendee status changed", func() (entity.EventAttendee, error) {
		return h.Svc.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status)
	})
}

func (h *AttendeeHandler) AssignTicket(c *gin.Context) {
	var req assignTicketRequest
	if !bindJSON(c, &req) {
		return
	}
	h.transition(c, "ticket assigned", func() (entity.EventAttendee, error) {
		return h.Svc.AssignTicket(c.Request.Context(), c.Param("id"), req.TicketID)
	})
}

func (h *AttendeeHandler) AddNotes(c *gin.Context) {
	var req notesRequest
	if !bindJSON(c, &req) {
		return
	}
	h.transition(c, "notes added", func() (entity.EventAttendee, error) {
		return h.Svc.AddNotes(c.Request.Context(), c.Param("id"), req.Notes)
	})
}

func (h *AttendeeHandler) Cancel(c *gin.Context) {
	h.transition(c, "attendance cancelled", func() (entity.EventAttendee, error) {
		return h.Svc.Cancel(c.Request.Context(), c.Param("id"))
	})
}

func (h *AttendeeHandler) transition(c *gin.Context, msg string, fn func() (entity.EventAttendee, error)) {
	a, err := fn()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, attendeeBody(a), msg, nil)
}
