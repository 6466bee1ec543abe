package mailer

import "time"

// NotificationJob is the JSON payload put on the RabbitMQ queue for delivery.
// Title/Body/HTML are already rendered; HTML is only set for EMAIL.
type NotificationJob struct {
	ID               string         `json:"id"`
	TemplateID       string         `json:"template_id"`
	TemplateName     string         `json:"template_name"`
	NotificationType string         `json:"notification_type,omitempty"`
	Channel          string         `json:"channel"`
	Recipient        string         `json:"recipient"`
	Title            string         `json:"title"`
	Body             string         `json:"body"`
	HTML             string         `json:"html,omitempty"`
	Data             map[string]any `json:"data,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// IsEmail reports whether the job should go through the mail sender.
func (j NotificationJob) IsEmail() bool {
	return j.Channel == "EMAIL"
}
