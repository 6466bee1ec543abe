package repository

import (
	"context"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

type GroupFilter struct {
	EventID     string
	CreatedByID string
	Status      vo.GroupStatus
}

type GroupRepository interface {
	Create(ctx context.Context, g entity.Group) error
	Update(ctx context.Context, g entity.Group) error
	GetByID(ctx context.Context, id string) (entity.Group, error)
	GetByInvitationCode(ctx context.Context, code string) (entity.Group, error)
	List(ctx context.Context, f GroupFilter, opts ListOptions) (Page[entity.Group], error)
}
