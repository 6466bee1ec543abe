package repository

import (
	"context"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

// PaymentFilter narrows List; zero fields are ignored.
type PaymentFilter struct {
	UserID  string
	EventID string
	Status  vo.PaymentStatus
}

type PaymentRepository interface {
	Create(ctx context.Context, p entity.Payment) error
	Update(ctx context.Context, p entity.Payment) error
	GetByID(ctx context.Context, id string) (entity.Payment, error)
	List(ctx context.Context, f PaymentFilter, opts ListOptions) (Page[entity.Payment], error)
}
