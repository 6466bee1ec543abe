package entity

import (
	"strings"
	"time"

	"github.com/oksasatya/eventhub/internal/domain/shared"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

// NotificationTemplate is a reusable message template for one delivery channel.
// Email templates must carry an HTML body.
type NotificationTemplate struct {
	Base
	name             string
	description      string
	notificationType string
	channel          vo.NotificationChannel
	titleTemplate    string
	bodyTemplate     string
	htmlTemplate     string
}

// NotificationTemplateProps is the plain-data projection of a NotificationTemplate.
type NotificationTemplateProps struct {
	BaseProps
	Name             string                 `json:"name"`
	Description      string                 `json:"description,omitempty"`
	NotificationType string                 `json:"notification_type"`
	Channel          vo.NotificationChannel `json:"channel"`
	TitleTemplate    string                 `json:"title_template"`
	BodyTemplate     string                 `json:"body_template"`
	HTMLTemplate     string                 `json:"html_template,omitempty"`
}

// CreateNotificationTemplateProps is the untrusted input accepted by
// CreateNotificationTemplate. IsActive defaults to true when nil.
type CreateNotificationTemplateProps struct {
	ID               string
	Name             string
	Description      string
	NotificationType string
	Channel          string
	TitleTemplate    string
	BodyTemplate     string
	HTMLTemplate     string
	IsActive         *bool
}

func CreateNotificationTemplate(props CreateNotificationTemplateProps, clk shared.Clock, ids shared.IDGenerator) (NotificationTemplate, error) {
	const kind = KindNotificationTemplateCreate
	if strings.TrimSpace(props.Name) == "" {
		return NotificationTemplate{}, newError(kind, CodeTemplateNameRequired, "template name is required")
	}
	if strings.TrimSpace(props.TitleTemplate) == "" {
		return NotificationTemplate{}, newError(kind, CodeTemplateTitleRequired, "title template is required")
	}
	if strings.TrimSpace(props.BodyTemplate) == "" {
		return NotificationTemplate{}, newError(kind, CodeTemplateBodyRequired, "body template is required")
	}
	channel, err := vo.NewNotificationChannel(props.Channel)
	if err != nil {
		return NotificationTemplate{}, wrapError(kind, CodeTemplateInvalidChan, err.Error(), err)
	}
	if err := checkHTML(channel, props.HTMLTemplate, kind); err != nil {
		return NotificationTemplate{}, err
	}

	id := strings.TrimSpace(props.ID)
	if id == "" {
		id = shared.IDsOrUUID(ids).NewID()
	}
	base := newBase(id, shared.ClockOrSystem(clk).Now())
	if props.IsActive != nil {
		base.isActive = *props.IsActive
	}
	return NotificationTemplate{
		Base:             base,
		name:             strings.TrimSpace(props.Name),
		description:      strings.TrimSpace(props.Description),
		notificationType: strings.TrimSpace(props.NotificationType),
		channel:          channel,
		titleTemplate:    props.TitleTemplate,
		bodyTemplate:     props.BodyTemplate,
		htmlTemplate:     props.HTMLTemplate,
	}, nil
}

func ReconstituteNotificationTemplate(p NotificationTemplateProps) NotificationTemplate {
	return NotificationTemplate{
		Base:             baseFromProps(p.BaseProps),
		name:             p.Name,
		description:      p.Description,
		notificationType: p.NotificationType,
		channel:          p.Channel,
		titleTemplate:    p.TitleTemplate,
		bodyTemplate:     p.BodyTemplate,
		htmlTemplate:     p.HTMLTemplate,
	}
}

func (n NotificationTemplate) Props() NotificationTemplateProps {
	return NotificationTemplateProps{
		BaseProps:        n.baseProps(),
		Name:             n.name,
		Description:      n.description,
		NotificationType: n.notificationType,
		Channel:          n.channel,
		TitleTemplate:    n.titleTemplate,
		BodyTemplate:     n.bodyTemplate,
		HTMLTemplate:     n.htmlTemplate,
	}
}

func (n NotificationTemplate) Name() string                    { return n.name }
func (n NotificationTemplate) Description() string             { return n.description }
func (n NotificationTemplate) NotificationType() string        { return n.notificationType }
func (n NotificationTemplate) Channel() vo.NotificationChannel { return n.channel }
func (n NotificationTemplate) TitleTemplate() string           { return n.titleTemplate }
func (n NotificationTemplate) BodyTemplate() string            { return n.bodyTemplate }
func (n NotificationTemplate) HTMLTemplate() string            { return n.htmlTemplate }

func (n NotificationTemplate) UpdateName(name string, at time.Time) (NotificationTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return NotificationTemplate{}, newError(KindNotificationTemplateUpdate, CodeTemplateNameRequired, "template name is required")
	}
	next := n.next(at)
	next.name = name
	return next, nil
}

func (n NotificationTemplate) UpdateDescription(description string, at time.Time) NotificationTemplate {
	next := n.next(at)
	next.description = strings.TrimSpace(description)
	return next
}

func (n NotificationTemplate) UpdateTitleTemplate(tpl string, at time.Time) (NotificationTemplate, error) {
	if strings.TrimSpace(tpl) == "" {
		return NotificationTemplate{}, newError(KindNotificationTemplateUpdate, CodeTemplateTitleRequired, "title template is required")
	}
	next := n.next(at)
	next.titleTemplate = tpl
	return next, nil
}

func (n NotificationTemplate) UpdateBodyTemplate(tpl string, at time.Time) (NotificationTemplate, error) {
	if strings.TrimSpace(tpl) == "" {
		return NotificationTemplate{}, newError(KindNotificationTemplateUpdate, CodeTemplateBodyRequired, "body template is required")
	}
	next := n.next(at)
	next.bodyTemplate = tpl
	return next, nil
}

// UpdateHTMLTemplate replaces the HTML body; email templates cannot clear it.
func (n NotificationTemplate) UpdateHTMLTemplate(tpl string, at time.Time) (NotificationTemplate, error) {
	if err := checkHTML(n.channel, tpl, KindNotificationTemplateUpdate); err != nil {
		return NotificationTemplate{}, err
	}
	next := n.next(at)
	next.htmlTemplate = tpl
	return next, nil
}

// Activate is a no-op when already active.
func (n NotificationTemplate) Activate(at time.Time) NotificationTemplate {
	if n.isActive {
		return n
	}
	next := n.next(at)
	next.isActive = true
	return next
}

// Deactivate is a no-op when already inactive.
func (n NotificationTemplate) Deactivate(at time.Time) NotificationTemplate {
	if !n.isActive {
		return n
	}
	next := n.next(at)
	next.isActive = false
	return next
}

func (n NotificationTemplate) RenderTitle(data map[string]any) string {
	return RenderTemplate(n.titleTemplate, data)
}

func (n NotificationTemplate) RenderBody(data map[string]any) string {
	return RenderTemplate(n.bodyTemplate, data)
}

// RenderHTML returns "" for templates without an HTML body.
func (n NotificationTemplate) RenderHTML(data map[string]any) string {
	if n.htmlTemplate == "" {
		return ""
	}
	return RenderTemplate(n.htmlTemplate, data)
}

func (n NotificationTemplate) next(at time.Time) NotificationTemplate {
	n.Base = n.touched(at)
	return n
}

func checkHTML(channel vo.NotificationChannel, html string, kind Kind) error {
	if channel.RequiresHTML() && strings.TrimSpace(html) == "" {
		return newError(kind, CodeTemplateHTMLRequired, "html template is required for email notifications")
	}
	return nil
}
