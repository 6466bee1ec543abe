package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
	"github.com/oksasatya/eventhub/internal/domain/shared"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

type AttendeeService struct {
	Repo repo.EventAttendeeRepository
	// Tickets is optional. When set, AssignTicket checks ownership.
	Tickets repo.TicketRepository
	Clock   shared.Clock
	IDs     shared.IDGenerator
	Logger  *logrus.Logger
}

func NewAttendeeService(r repo.EventAttendeeRepository, tickets repo.TicketRepository, clk shared.Clock, ids shared.IDGenerator, logger *logrus.Logger) *AttendeeService {
	return &AttendeeService{
		Repo:    r,
		Tickets: tickets,
		Clock:   shared.ClockOrSystem(clk),
		IDs:     shared.IDsOrUUID(ids),
		Logger:  discardIfNil(logger),
	}
}

type RegisterAttendeeInput struct {
	EventID  string
	UserID   string
	TicketID string
	Notes    string
}

// Register creates a REGISTERED attendee. A user registers at most once per event.
func (s *AttendeeService) Register(ctx context.Context, in RegisterAttendeeInput) (entity.EventAttendee, error) {
	a, err := entity.CreateEventAttendee(entity.CreateEventAttendeeProps{
		EventID:  in.EventID,
		UserID:   in.UserID,
		TicketID: in.TicketID,
		Notes:    in.Notes,
	}, s.Clock, s.IDs)
	if err != nil {
		logRejection(s.Logger, "register attendee rejected", err, logrus.Fields{"event_id": in.EventID, "user_id": in.UserID})
		return entity.EventAttendee{}, err
	}

	_, err = s.Repo.GetByEventAndUser(ctx, a.EventID(), a.UserID())
	switch {
	case err == nil:
		return entity.EventAttendee{}, ErrAlreadyRegistered
	case !errors.Is(err, repo.ErrNotFound):
		return entity.EventAttendee{}, fmt.Errorf("lookup registration: %w", err)
	}

	if err := s.Repo.Create(ctx, a); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return entity.EventAttendee{}, ErrAlreadyRegistered
		}
		return entity.EventAttendee{}, fmt.Errorf("register attendee: %w", err)
	}
	s.Logger.WithFields(logrus.Fields{
		"attendee_id": a.ID(),
		"event_id":    a.EventID(),
		"user_id":     a.UserID(),
	}).Info("attendee registered")
	return a, nil
}

func (s *AttendeeService) Get(ctx context.Context, id string) (entity.EventAttendee, error) {
	return load(ctx, s.Repo.GetByID, id, ErrAttendeeNotFound)
}

func (s *AttendeeService) ListByEvent(ctx context.Context, eventID string, status vo.AttendanceStatus, opts repo.ListOptions) (repo.Page[entity.EventAttendee], error) {
	return s.Repo.List(ctx, repo.EventAttendeeFilter{EventID: eventID, Status: status}, opts.Normalize())
}

func (s *AttendeeService) CheckIn(ctx context.Context, id string) (entity.EventAttendee, error) {
	return s.apply(ctx, id, "check in", func(a entity.EventAttendee) (entity.EventAttendee, error) {
		return a.CheckIn(s.Clock.Now())
	})
}

// ChangeStatus parses raw and sets it without lifecycle guards.
func (s *AttendeeService) ChangeStatus(ctx context.Context, id, raw string) (entity.EventAttendee, error) {
	status, err := vo.NewAttendanceStatus(raw)
	if err != nil {
		return entity.EventAttendee{}, err
	}
	return s.apply(ctx, id, "change status", func(a entity.EventAttendee) (entity.EventAttendee, error) {
		return a.ChangeStatus(status, s.Clock.Now())
	})
}

func (s *AttendeeService) AssignTicket(ctx context.Context, id, ticketID string) (entity.EventAttendee, error) {
	return s.apply(ctx, id, "assign ticket", func(a entity.EventAttendee) (entity.EventAttendee, error) {
		if err := s.checkTicket(ctx, a, ticketID); err != nil {
			return entity.EventAttendee{}, err
		}
		return a.AssignTicket(ticketID, s.Clock.Now())
	})
}

func (s *AttendeeService) checkTicket(ctx context.Context, a entity.EventAttendee, ticketID string) error {
	if s.Tickets == nil || ticketID == "" {
		return nil
	}
	t, err := load(ctx, s.Tickets.GetByID, ticketID, ErrTicketNotFound)
	if err != nil {
		return err
	}
	if t.EventID() != a.EventID() || t.UserID() != a.UserID() {
		return ErrTicketMismatch
	}
	return nil
}

func (s *AttendeeService) AddNotes(ctx context.Context, id, notes string) (entity.EventAttendee, error) {
	return s.apply(ctx, id, "add notes", func(a entity.EventAttendee) (entity.EventAttendee, error) {
		return a.AddNotes(notes, s.Clock.Now())
	})
}

func (s *AttendeeService) Cancel(ctx context.Context, id string) (entity.EventAttendee, error) {
	return s.apply(ctx, id, "cancel", func(a entity.EventAttendee) (entity.EventAttendee, error) {
		return a.Cancel(s.Clock.Now())
	})
}

func (s *AttendeeService) apply(ctx context.Context, id, op string, fn func(entity.EventAttendee) (entity.EventAttendee, error)) (entity.EventAttendee, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return entity.EventAttendee{}, err
	}
	next, err := fn(a)
	if err != nil {
		logRejection(s.Logger, op+" attendee rejected", err, logrus.Fields{"attendee_id": id, "status": a.Status().String()})
		return entity.EventAttendee{}, err
	}
	if err := s.Repo.Update(ctx, next); err != nil {
		return entity.EventAttendee{}, fmt.Errorf("%s attendee: %w", op, err)
	}
	s.Logger.WithFields(logrus.Fields{"attendee_id": id, "op": op, "status": next.Status().String()}).Info("attendee updated")
	return next, nil
}
