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

type PaymentHandler struct {
	Svc    *app.PaymentService
	Logger *logrus.Logger
}

func NewPaymentHandler(svc *app.PaymentService, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Logger: logger}
}

type createPaymentRequest struct {
	EventID           string         `json:"event_id" binding:"required"`
	Amount            float64        `json:"amount" binding:"amount"`
	Currency          string         `json:"currency" binding:"required,currency"`
	Provider          string         `json:"provider" binding:"required,provider"`
	ProviderPaymentID string         `json:"provider_payment_id"`
	PaymentMethod     string         `json:"payment_method" binding:"omitempty,paymethod"`
	Metadata          map[string]any `json:"metadata"`
}

type completePaymentRequest struct {
	ProviderPaymentID string `json:"provider_payment_id"`
}

type failPaymentRequest struct {
	ErrorDetails any `json:"error_details"`
}

type refundPaymentRequest struct {
	Reason string `json:"reason"`
}

func paymentBody(p entity.Payment) entity.PaymentProps { return p.Props() }

// Create registers a PENDING payment owned by the caller.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req createPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), app.CreatePaymentInput{
		UserID:            middleware.UserID(c),
		EventID:           req.EventID,
		Amount:            req.Amount,
		Currency:          req.Currency,
		Provider:          req.Provider,
		ProviderPaymentID: req.ProviderPaymentID,
		PaymentMethod:     req.PaymentMethod,
		Metadata:          req.Metadata,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, paymentBody(p), "payment created", nil)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, paymentBody(p), "ok", nil)
}

// List returns the caller's payments, optionally narrowed by event_id and status.
func (h *PaymentHandler) List(c *gin.Context) {
	status, ok := statusQuery(c, "status", vo.NewPaymentStatus)
	if !ok {
		return
	}
	opts := listOptions(c)
	page, err := h.Svc.List(c.Request.Context(), repo.PaymentFilter{
		UserID:  middleware.UserID(c),
		EventID: c.Query("event_id"),
		Status:  status,
	}, opts)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writePage(c, page, opts, paymentBody)
}

func (h *PaymentHandler) Complete(c *gin.Context) {
	var req completePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	h.transition(c, "payment completed", func() (entity.Payment, error) {
		return h.Svc.Complete(c.Request.Context(), c.Param("id"), req.ProviderPaymentID)
	})
}

func (h *PaymentHandler) Fail(c *gin.Context) {
	var req failPaymentRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	h.transition(c, "payment failed", func() (entity.Payment, error) {
		return h.Svc.Fail(c.Request.Context(), c.Param("id"), req.ErrorDetails)
	})
}

func (h *PaymentHandler) Refund(c *gin.Context) {
	var req refundPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	h.transition(c, "payment refunded", func() (entity.Payment, error) {
		return h.Svc.Refund(c.Request.Context(), c.Param("id"), req.Reason)
	})
}

func (h *PaymentHandler) Cancel(c *gin.Context) {
	h.transition(c, "payment cancelled", func() (entity.Payment, error) {
		return h.Svc.Cancel(c.Request.Context(), c.Param("id"))
	})
}

func (h *PaymentHandler) UpdateMetadata(c *gin.Context) {
	var req metadataRequest
	if !bindJSON(c, &req) {
		return
	}
	h.transition(c, "payment metadata updated", func() (entity.Payment, error) {
		return h.Svc.UpdateMetadata(c.Request.Context(), c.Param("id"), req.Metadata)
	})
}

func (h *PaymentHandler) transition(c *gin.Context, msg string, fn func() (entity.Payment, error)) {
	p, err := fn()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, paymentBody(p), msg, nil)
}
