package repository

import (
	"context"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

type NotificationTemplateFilter struct {
	Channel          vo.NotificationChannel
	NotificationType string
	ActiveOnly       bool
}

// NotificationTemplateRepository stores templates; names are unique.
type NotificationTemplateRepository interface {
	Create(ctx context.Context, t entity.NotificationTemplate) error
	Update(ctx context.Context, t entity.NotificationTemplate) error
	GetByID(ctx context.Context, id string) (entity.NotificationTemplate, error)
	GetByName(ctx context.Context, name string) (entity.NotificationTemplate, error)
	List(ctx context.Context, f NotificationTemplateFilter, opts ListOptions) (Page[entity.NotificationTemplate], error)
}
