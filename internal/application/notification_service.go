package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
	"github.com/oksasatya/eventhub/internal/domain/shared"
	"github.com/oksasatya/eventhub/pkg/mailer"
)

type NotificationService struct {
	Repo      repo.NotificationTemplateRepository
	Publisher JobPublisher
	Clock     shared.Clock
	IDs       shared.IDGenerator
	Logger    *logrus.Logger
}

func NewNotificationService(r repo.NotificationTemplateRepository, pub JobPublisher, clk shared.Clock, ids shared.IDGenerator, logger *logrus.Logger) *NotificationService {
	return &NotificationService{
		Repo:      r,
		Publisher: pub,
		Clock:     shared.ClockOrSystem(clk),
		IDs:       shared.IDsOrUUID(ids),
		Logger:    discardIfNil(logger),
	}
}

type CreateTemplateInput struct {
	Name             string
	Description      string
	NotificationType string
	Channel          string
	TitleTemplate    string
	BodyTemplate     string
	HTMLTemplate     string
	IsActive         *bool
}

// UpdateTemplateInput applies every non-nil field through its guarded setter.
type UpdateTemplateInput struct {
	Name          *string
	Description   *string
	TitleTemplate *string
	BodyTemplate  *string
	HTMLTemplate  *string
}

type RenderedNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	HTML  string `json:"html,omitempty"`
}

type DispatchInput struct {
	TemplateName string
	Recipient    string
	Data         map[string]any
}

func (s *NotificationService) CreateTemplate(ctx context.Context, in CreateTemplateInput) (entity.NotificationTemplate, error) {
	tpl, err := entity.CreateNotificationTemplate(entity.CreateNotificationTemplateProps{
		Name:             in.Name,
		Description:      in.Description,
		NotificationType: in.NotificationType,
		Channel:          in.Channel,
		TitleTemplate:    in.TitleTemplate,
		BodyTemplate:     in.BodyTemplate,
		HTMLTemplate:     in.HTMLTemplate,
		IsActive:         in.IsActive,
	}, s.Clock, s.IDs)
	if err != nil {
		logRejection(s.Logger, "create template rejected", err, logrus.Fields{"name": in.Name})
		return entity.NotificationTemplate{}, err
	}
	if err := s.ensureNameFree(ctx, tpl.Name(), ""); err != nil {
		return entity.NotificationTemplate{}, err
	}
	if err := s.Repo.Create(ctx, tpl); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return entity.NotificationTemplate{}, ErrTemplateNameTaken
		}
		return entity.NotificationTemplate{}, fmt.Errorf("create template: %w", err)
	}
	s.Logger.WithFields(logrus.Fields{
		"template_id": tpl.ID(),
		"name":        tpl.Name(),
		"channel":     tpl.Channel().String(),
	}).Info("notification template created")
	return tpl, nil
}

func (s *NotificationService) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.Repo.GetByName(ctx, name)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("lookup template %s: %w", name, err)
	case existing.ID() != selfID:
		return ErrTemplateNameTaken
	}
	return nil
}

func (s *NotificationService) Get(ctx context.Context, id string) (entity.NotificationTemplate, error) {
	return load(ctx, s.Repo.GetByID, id, ErrTemplateNotFound)
}

func (s *NotificationService) GetByName(ctx context.Context, name string) (entity.NotificationTemplate, error) {
	return load(ctx, s.Repo.GetByName, name, ErrTemplateNotFound)
}

func (s *NotificationService) List(ctx context.Context, f repo.NotificationTemplateFilter, opts repo.ListOptions) (repo.Page[entity.NotificationTemplate], error) {
	return s.Repo.List(ctx, f, opts.Normalize())
}

func (s *NotificationService) UpdateTemplate(ctx context.Context, id string, in UpdateTemplateInput) (entity.NotificationTemplate, error) {
	if in.Name != nil {
		if err := s.ensureNameFree(ctx, strings.TrimSpace(*in.Name), id); err != nil {
			return entity.NotificationTemplate{}, err
		}
	}
	return s.apply(ctx, id, "update", func(t entity.NotificationTemplate) (entity.NotificationTemplate, error) {
		now := s.Clock.Now()
		var err error
		if in.Name != nil {
			if t, err = t.UpdateName(*in.Name, now); err != nil {
				return t, err
			}
		}
		if in.Description != nil {
			t = t.UpdateDescription(*in.Description, now)
		}
		if in.TitleTemplate != nil {
			if t, err = t.UpdateTitleTemplate(*in.TitleTemplate, now); err != nil {
				return t, err
			}
		}
		if in.BodyTemplate != nil {
			if t, err = t.UpdateBodyTemplate(*in.BodyTemplate, now); err != nil {
				return t, err
			}
		}
		if in.HTMLTemplate != nil {
			if t, err = t.UpdateHTMLTemplate(*in.HTMLTemplate, now); err != nil {
				return t, err
			}
		}
		return t, nil
	})
}

func (s *NotificationService) Activate(ctx context.Context, id string) (entity.NotificationTemplate, error) {
	return s.apply(ctx, id, "activate", func(t entity.NotificationTemplate) (entity.NotificationTemplate, error) {
		return t.Activate(s.Clock.Now()), nil
	})
}

func (s *NotificationService) Deactivate(ctx context.Context, id string) (entity.NotificationTemplate, error) {
	return s.apply(ctx, id, "deactivate", func(t entity.NotificationTemplate) (entity.NotificationTemplate, error) {
		return t.Deactivate(s.Clock.Now()), nil
	})
}

// Preview renders a template against data without publishing anything.
func (s *NotificationService) Preview(ctx context.Context, id string, data map[string]any) (RenderedNotification, error) {
	tpl, err := s.Get(ctx, id)
	if err != nil {
		return RenderedNotification{}, err
	}
	return render(tpl, data), nil
}

// Dispatch renders the named template and publishes the resulting job.
func (s *NotificationService) Dispatch(ctx context.Context, in DispatchInput) (mailer.NotificationJob, error) {
	tpl, err := s.GetByName(ctx, in.TemplateName)
	if err != nil {
		return mailer.NotificationJob{}, err
	}
	if !tpl.IsActive() {
		s.Logger.WithField("template", tpl.Name()).Warn("dispatch on inactive template rejected")
		return mailer.NotificationJob{}, ErrTemplateInactive
	}
	if s.Publisher == nil {
		return mailer.NotificationJob{}, ErrPublisherUnavailable
	}

	out := render(tpl, in.Data)
	job := mailer.NotificationJob{
		ID:               s.IDs.NewID(),
		TemplateID:       tpl.ID(),
		TemplateName:     tpl.Name(),
		NotificationType: tpl.NotificationType(),
		Channel:          tpl.Channel().String(),
		Recipient:        in.Recipient,
		Title:            out.Title,
		Body:             out.Body,
		HTML:             out.HTML,
		Data:             in.Data,
		CreatedAt:        s.Clock.Now(),
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("job_id", job.ID).Error("publish notification failed")
		return mailer.NotificationJob{}, fmt.Errorf("publish notification: %w", err)
	}
	s.Logger.WithFields(logrus.Fields{
		"job_id":   job.ID,
		"template": job.TemplateName,
		"channel":  job.Channel,
	}).Info("notification dispatched")
	return job, nil
}

func render(tpl entity.NotificationTemplate, data map[string]any) RenderedNotification {
	out := RenderedNotification{
		Title: tpl.RenderTitle(data),
		Body:  tpl.RenderBody(data),
	}
	if tpl.Channel().RequiresHTML() {
		out.HTML = tpl.RenderHTML(data)
	}
	return out
}

func (s *NotificationService) apply(ctx context.Context, id, op string, fn func(entity.NotificationTemplate) (entity.NotificationTemplate, error)) (entity.NotificationTemplate, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return entity.NotificationTemplate{}, err
	}
	next, err := fn(t)
	if err != nil {
		logRejection(s.Logger, op+" template rejected", err, logrus.Fields{"template_id": id})
		return entity.NotificationTemplate{}, err
	}
	if err := s.Repo.Update(ctx, next); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return entity.NotificationTemplate{}, ErrTemplateNameTaken
		}
		return entity.NotificationTemplate{}, fmt.Errorf("%s template: %w", op, err)
	}
	s.Logger.WithFields(logrus.Fields{"template_id": id, "op": op, "active": next.IsActive()}).Info("notification template updated")
	return next, nil
}
