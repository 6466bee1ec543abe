package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrAttendeeNotFound     = errors.New("attendee not found")
	ErrGroupNotFound        = errors.New("group not found")
	ErrTemplateNotFound     = errors.New("notification template not found")
	ErrPaymentNotCompleted  = errors.New("payment is not completed")
	ErrPaymentMismatch      = errors.New("payment belongs to another user or event")
	ErrTicketMismatch       = errors.New("ticket belongs to another user or event")
	ErrAlreadyRegistered    = errors.New("user already registered for event")
	ErrTemplateNameTaken    = errors.New("notification template name already in use")
	ErrTemplateInactive     = errors.New("notification template is inactive")
	ErrPublisherUnavailable = errors.New("notification publisher not configured")
)

// JobPublisher is satisfied by helpers.RabbitPublisher.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

func discardIfNil(l *logrus.Logger) *logrus.Logger {
	if l != nil {
		return l
	}
	out := logrus.New()
	out.SetOutput(io.Discard)
	return out
}

// load maps repository.ErrNotFound onto the service's own sentinel.
func load[T any](ctx context.Context, get func(context.Context, string) (T, error), id string, notFound error) (T, error) {
	v, err := get(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		var zero T
		return zero, notFound
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("load %s: %w", id, err)
	}
	return v, nil
}

// logRejection logs domain guard failures at warn and everything else at error.
func logRejection(l *logrus.Logger, msg string, err error, fields logrus.Fields) {
	entry := l.WithFields(fields).WithError(err)
	var de *entity.DomainError
	if errors.As(err, &de) {
		entry.WithField("code", de.Code).Warn(msg)
		return
	}
	entry.Error(msg)
}
