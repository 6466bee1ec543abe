package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
	"github.com/oksasatya/eventhub/internal/domain/shared"
)

type TicketService struct {
	Repo repo.TicketRepository
	// Payments is optional. When set, Issue checks the referenced payment.
	Payments repo.PaymentRepository
	Clock    shared.Clock
	IDs      shared.IDGenerator
	Logger   *logrus.Logger
}

func NewTicketService(r repo.TicketRepository, payments repo.PaymentRepository, clk shared.Clock, ids shared.IDGenerator, logger *logrus.Logger) *TicketService {
	return &TicketService{
		Repo:     r,
		Payments: payments,
		Clock:    shared.ClockOrSystem(clk),
		IDs:      shared.IDsOrUUID(ids),
		Logger:   discardIfNil(logger),
	}
}

type IssueTicketInput struct {
	UserID      string
	EventID     string
	PaymentID   string
	TicketType  string
	TicketPrice float64
	QRCode      string
	Metadata    map[string]any
}

// Issue creates a VALID ticket. A payment known to the payment repository must
// be COMPLETED and belong to the same user and event; unknown payment ids are
// accepted since payments may be settled by an external system.
func (s *TicketService) Issue(ctx context.Context, in IssueTicketInput) (entity.Ticket, error) {
	if err := s.checkPayment(ctx, in); err != nil {
		s.Logger.WithError(err).WithField("payment_id", in.PaymentID).Warn("issue ticket rejected")
		return entity.Ticket{}, err
	}
	t, err := entity.CreateTicket(entity.CreateTicketProps{
		UserID:      in.UserID,
		EventID:     in.EventID,
		PaymentID:   in.PaymentID,
		TicketType:  in.TicketType,
		TicketPrice: in.TicketPrice,
		QRCode:      in.QRCode,
		Metadata:    in.Metadata,
	}, s.Clock, s.IDs)
	if err != nil {
		logRejection(s.Logger, "issue ticket rejected", err, logrus.Fields{"user_id": in.UserID, "event_id": in.EventID})
		return entity.Ticket{}, err
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return entity.Ticket{}, fmt.Errorf("issue ticket: %w", err)
	}
	s.Logger.WithFields(logrus.Fields{
		"ticket_id":  t.ID(),
		"user_id":    t.UserID(),
		"payment_id": t.PaymentID(),
	}).Info("ticket issued")
	return t, nil
}

func (s *TicketService) checkPayment(ctx context.Context, in IssueTicketInput) error {
	if s.Payments == nil || in.PaymentID == "" {
		return nil
	}
	p, err := s.Payments.GetByID(ctx, in.PaymentID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load payment %s: %w", in.PaymentID, err)
	}
	if !p.Status().IsCompleted() {
		return ErrPaymentNotCompleted
	}
	if p.UserID() != in.UserID || p.EventID() != in.EventID {
		return ErrPaymentMismatch
	}
	return nil
}

func (s *TicketService) Get(ctx context.Context, id string) (entity.Ticket, error) {
	return load(ctx, s.Repo.GetByID, id, ErrTicketNotFound)
}

func (s *TicketService) GetByQRCode(ctx context.Context, qr string) (entity.Ticket, error) {
	return load(ctx, s.Repo.GetByQRCode, qr, ErrTicketNotFound)
}

func (s *TicketService) ListByUser(ctx context.Context, userID string, opts repo.ListOptions) (repo.Page[entity.Ticket], error) {
	return s.List(ctx, repo.TicketFilter{UserID: userID}, opts)
}

func (s *TicketService) List(ctx context.Context, f repo.TicketFilter, opts repo.ListOptions) (repo.Page[entity.Ticket], error) {
	return s.Repo.List(ctx, f, opts.Normalize())
}

func (s *TicketService) Use(ctx context.Context, id string) (entity.Ticket, error) {
	return s.apply(ctx, id, "use", func(t entity.Ticket) (entity.Ticket, error) {
		return t.Use(s.Clock.Now())
	})
}

// UseByQRCode admits the holder of a scanned QR payload.
func (s *TicketService) UseByQRCode(ctx context.Context, qr string) (entity.Ticket, error) {
	t, err := s.GetByQRCode(ctx, qr)
	if err != nil {
		return entity.Ticket{}, err
	}
	return s.Use(ctx, t.ID())
}

func (s *TicketService) Cancel(ctx context.Context, id, reason string) (entity.Ticket, error) {
	return s.apply(ctx, id, "cancel", func(t entity.Ticket) (entity.Ticket, error) {
		return t.Cancel(reason, s.Clock.Now())
	})
}

func (s *TicketService) Expire(ctx context.Context, id string) (entity.Ticket, error) {
	return s.apply(ctx, id, "expire", func(t entity.Ticket) (entity.Ticket, error) {
		return t.Expire(s.Clock.Now())
	})
}

func (s *TicketService) UpdateMetadata(ctx context.Context, id string, patch map[string]any) (entity.Ticket, error) {
	return s.apply(ctx, id, "update metadata", func(t entity.Ticket) (entity.Ticket, error) {
		return t.UpdateMetadata(patch, s.Clock.Now()), nil
	})
}

func (s *TicketService) apply(ctx context.Context, id, op string, fn func(entity.Ticket) (entity.Ticket, error)) (entity.Ticket, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return entity.Ticket{}, err
	}
	next, err := fn(t)
	if err != nil {
		logRejection(s.Logger, op+" ticket rejected", err, logrus.Fields{"ticket_id": id, "status": t.Status().String()})
		return entity.Ticket{}, err
	}
	if err := s.Repo.Update(ctx, next); err != nil {
		return entity.Ticket{}, fmt.Errorf("%s ticket: %w", op, err)
	}
	s.Logger.WithFields(logrus.Fields{"ticket_id": id, "op": op, "status": next.Status().String()}).Info("ticket updated")
	return next, nil
}
