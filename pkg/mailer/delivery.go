package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Sender is satisfied by *Mailgun.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// ErrMalformedJob marks a message that can never be delivered and must not be requeued.
var ErrMalformedJob = errors.New("malformed notification job")

// Delivery routes decoded jobs: EMAIL goes through Mail, other channels are
// only logged since their transports live outside this service.
type Delivery struct {
	Mail   Sender
	Logger logrus.FieldLogger
	// DryRun logs EMAIL jobs instead of sending them.
	DryRun bool
}

// Decode parses a queue message body.
func Decode(body []byte) (NotificationJob, error) {
	var job NotificationJob
	if err := json.Unmarshal(body, &job); err != nil {
		return NotificationJob{}, fmt.Errorf("%w: %v", ErrMalformedJob, err)
	}
	if job.ID == "" || job.Channel == "" || strings.TrimSpace(job.Recipient) == "" {
		return NotificationJob{}, fmt.Errorf("%w: id, channel and recipient are required", ErrMalformedJob)
	}
	return job, nil
}

// Handle delivers one job. Errors wrapping ErrMalformedJob are permanent.
func (d Delivery) Handle(ctx context.Context, job NotificationJob) error {
	entry := d.Logger.WithFields(logrus.Fields{
		"job_id":   job.ID,
		"template": job.TemplateName,
		"channel":  job.Channel,
	})
	if !job.IsEmail() {
		entry.Info("notification handed off")
		return nil
	}
	if !strings.Contains(job.Recipient, "@") {
		return fmt.Errorf("%w: recipient %q is not an email address", ErrMalformedJob, job.Recipient)
	}
	if d.DryRun || d.Mail == nil {
		entry.WithField("recipient", job.Recipient).Info("email delivery skipped")
		return nil
	}
	if err := d.Mail.Send(ctx, job.Recipient, job.Title, job.Body, job.HTML); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	entry.Info("email sent")
	return nil
}
