package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/eventhub/internal/application"
	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
	"github.com/oksasatya/eventhub/internal/interface/middleware"
	"github.com/oksasatya/eventhub/pkg/response"
)

type TicketHandler struct {
	Svc    *app.TicketService
	Logger *logrus.Logger
}

func NewTicketHandler(svc *app.TicketService, logger *logrus.Logger) *TicketHandler {
	return &TicketHandler{Svc: svc, Logger: logger}
}

type issueTicketRequest struct {
	EventID     string         `json:"event_id" binding:"required"`
	PaymentID   string         `json:"payment_id" binding:"required"`
	TicketType  string         `json:"ticket_type" binding:"required"`
	TicketPrice float64        `json:"ticket_price" binding:"gte=0"`
	QRCode      string         `json:"qr_code"`
	Metadata    map[string]any `json:"metadata"`
}

type cancelTicketRequest struct {
	Reason string `json:"reason"`
}

func ticketBody(t entity.Ticket) entity.TicketProps { return t.Props() }

// Issue creates a VALID ticket for the caller.
func (h *TicketHandler) Issue(c *gin.Context) {
	var req issueTicketRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.Svc.Issue(c.Request.Context(), app.IssueTicketInput{
		UserID:      middleware.UserID(c),
		EventID:     req.EventID,
		PaymentID:   req.PaymentID,
		TicketType:  req.TicketType,
		TicketPrice: req.TicketPrice,
		QRCode:      req.QRCode,
		Metadata:    req.Metadata,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, ticketBody(t), "ticket issued", nil)
}

func (h *TicketHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, ticketBody(t), "ok", nil)
}

func (h *TicketHandler) GetByQRCode(c *gin.Context) {
	t, err := h.Svc.GetByQRCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, ticketBody(t), "ok", nil)
}

// List returns the caller's tickets filtered by event_id and status.
func (h *TicketHandler) List(c *gin.Context) {
	status, ok := statusQuery(c, "status", vo.NewTicketStatus)
	if !ok {
		return
	}
	opts := listOptions(c)
	page, err := h.Svc.List(c.Request.Context(), repo.TicketFilter{
		UserID:  middleware.UserID(c),
		EventID: c.Query("event_id"),
		Status:  status,
	}, opts)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writePage(c, page, opts, ticketBody)
}

func (h *TicketHandler) Use(c *gin.Context) {
	h.transition(c, "ticket used", func() (entity.Ticket, error) {
		return h.Svc.Use(c.Request.Context(), c.Param("id"))
	})
}

// UseByQRCode is the door-scanner entry point.
func (h *TicketHandler) UseByQRCode(c *gin.Context) {
	h.transition(c, "ticket used", func() (entity.Ticket, error) {
		return h.Svc.UseByQRCode(c.Request.Context(), c.Param("code"))
	})
}

func (h *TicketHandler) Cancel(c *gin.Context) {
	var req cancelTicketRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	h.transition(c, "ticket cancelled", func() (entity.Ticket, error) {
		return h.Svc.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	})
}

func (h *TicketHandler) Expire(c *gin.Context) {
	h.transition(c, "ticket expired", func() (entity.Ticket, error) {
		return h.Svc.Expire(c.Request.Context(), c.Param("id"))
	})
}

func (h *TicketHandler) UpdateMetadata(c *gin.Context) {
	var req metadataRequest
	if !bindJSON(c, &req) {
		return
	}
	h.transition(c, "ticket metadata updated", func() (entity.Ticket, error) {
		return h.Svc.UpdateMetadata(c.Request.Context(), c.Param("id"), req.Metadata)
	})
}

func (h *TicketHandler) transition(c *gin.Context, msg string, fn func() (entity.Ticket, error)) {
	t, err := fn()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, ticketBody(t), msg, nil)
}
