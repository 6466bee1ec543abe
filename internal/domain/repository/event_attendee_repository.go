package repository

import (
	"context"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

type EventAttendeeFilter struct {
	EventID string
	UserID  string
	Status  vo.AttendanceStatus
}

// EventAttendeeRepository stores registrations. (event_id, user_id) is unique;
// Create returns ErrDuplicate when it is violated.
type EventAttendeeRepository interface {
	Create(ctx context.Context, a entity.EventAttendee) error
	Update(ctx context.Context, a entity.EventAttendee) error
	GetByID(ctx context.Context, id string) (entity.EventAttendee, error)
	GetByEventAndUser(ctx context.Context, eventID, userID string) (entity.EventAttendee, error)
	List(ctx context.Context, f EventAttendeeFilter, opts ListOptions) (Page[entity.EventAttendee], error)
}
