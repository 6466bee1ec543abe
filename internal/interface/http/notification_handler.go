package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/eventhub/internal/application"
	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
	"github.com/oksasatya/eventhub/pkg/response"
)

type NotificationHandler struct {
	Svc    *app.NotificationService
	Logger *logrus.Logger
}

func NewNotificationHandler(svc *app.NotificationService, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{Svc: svc, Logger: logger}
}

type createTemplateRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	NotificationType string `json:"notification_type" binding:"required"`
	Channel          string `json:"channel" binding:"required,channel"`
	TitleTemplate    string `json:"title_template"`
	BodyTemplate     string `json:"body_template"`
	HTMLTemplate     string `json:"html_template"`
	IsActive         *bool  `json:"is_active"`
}

// Absent fields are left untouched.
type updateTemplateRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	TitleTemplate *string `json:"title_template"`
	BodyTemplate  *string `json:"body_template"`
	HTMLTemplate  *string `json:"html_template"`
}

type renderRequest struct {
	Data map[string]any `json:"data"`
}

type dispatchRequest struct {
	TemplateName string         `json:"template_name" binding:"required"`
	Recipient    string         `json:"recipient" binding:"required"`
	Data         map[string]any `json:"data"`
}

func templateBody(t entity.NotificationTemplate) entity.NotificationTemplateProps { return t.Props() }

func (h *NotificationHandler) Create(c *gin.Context) {
	var req createTemplateRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.Svc.CreateTemplate(c.Request.Context(), app.CreateTemplateInput{
		Name:             req.Name,
		Description:      req.Description,
		NotificationType: req.NotificationType,
		Channel:          req.Channel,
		TitleTemplate:    req.TitleTemplate,
		BodyTemplate:     req.BodyTemplate,
		HTMLTemplate:     req.HTMLTemplate,
		IsActive:         req.IsActive,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, templateBody(t), "template created", nil)
}

func (h *NotificationHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, templateBody(t), "ok", nil)
}

func (h *NotificationHandler) GetByName(c *gin.Context) {
	t, err := h.Svc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, templateBody(t), "ok", nil)
}

// List filters by channel, notification_type and active=true.
func (h *NotificationHandler) List(c *gin.Context) {
	channel, ok := statusQuery(c, "channel", vo.NewNotificationChannel)
	if !ok {
		return
	}
	opts := listOptions(c)
	page, err := h.Svc.List(c.Request.Context(), repo.NotificationTemplateFilter{
		Channel:          channel,
		NotificationType: c.Query("notification_type"),
		ActiveOnly:       c.Query("active") == "true",
	}, opts)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writePage(c, page, opts, templateBody)
}

func (h *NotificationHandler) Update(c *gin.Context) {
	var req updateTemplateRequest
	if !bindJSON(c, &req) {
		return
	}
	h.transition(c, "template updated", func() (entity.NotificationTemplate, error) {
		return h.Svc.UpdateTemplate(c.Request.Context(), c.Param("id"), app.UpdateTemplateInput{
			Name:          req.Name,
			Description:   req.Description,
			TitleTemplate: req.TitleTemplate,
			BodyTemplate:  req.BodyTemplate,
			HTMLTemplate:  req.HTMLTemplate,
		})
	})
}

func (h *NotificationHandler) Activate(c *gin.Context) {
	h.transition(c, "template activated", func() (entity.NotificationTemplate, error) {
		return h.Svc.Activate(c.Request.Context(), c.Param("id"))
	})
}

func (h *NotificationHandler) Deactivate(c *gin.Context) {
	h.transition(c, "template deactivated", func() (entity.NotificationTemplate, error) {
		return h.Svc.Deactivate(c.Request.Context(), c.Param("id"))
	})
}

// Preview renders the template with the posted data without sending anything.
func (h *NotificationHandler) Preview(c *gin.Context) {
	var req renderRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	out, err := h.Svc.Preview(c.Request.Context(), c.Param("id"), req.Data)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, out, "ok", nil)
}

// Dispatch renders a named template and queues it for delivery.
func (h *NotificationHandler) Dispatch(c *gin.Context) {
	var req dispatchRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.Svc.Dispatch(c.Request.Context(), app.DispatchInput{
		TemplateName: req.TemplateName,
		Recipient:    req.Recipient,
		Data:         req.Data,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusAccepted, job, "notification queued", nil)
}

func (h *NotificationHandler) transition(c *gin.Context, msg string, fn func() (entity.NotificationTemplate, error)) {
	t, err := fn()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, templateBody(t), msg, nil)
}
