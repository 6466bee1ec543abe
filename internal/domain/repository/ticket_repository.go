package repository

import (
	"context"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

type TicketFilter struct {
	UserID    string
	EventID   string
	PaymentID string
	Status    vo.TicketStatus
}

type TicketRepository interface {
	Create(ctx context.Context, t entity.Ticket) error
	Update(ctx context.Context, t entity.Ticket) error
	GetByID(ctx context.Context, id string) (entity.Ticket, error)
	GetByQRCode(ctx context.Context, qr string) (entity.Ticket, error)
	List(ctx context.Context, f TicketFilter, opts ListOptions) (Page[entity.Ticket], error)
}
