package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
	"github.com/oksasatya/eventhub/internal/domain/shared"
)

type PaymentService struct {
	Repo   repo.PaymentRepository
	Clock  shared.Clock
	IDs    shared.IDGenerator
	Logger *logrus.Logger
}

func NewPaymentService(r repo.PaymentRepository, clk shared.Clock, ids shared.IDGenerator, logger *logrus.Logger) *PaymentService {
	return &PaymentService{
		Repo:   r,
		Clock:  shared.ClockOrSystem(clk),
		IDs:    shared.IDsOrUUID(ids),
		Logger: discardIfNil(logger),
	}
}

type CreatePaymentInput struct {
	UserID            string
	EventID           string
	Amount            float64
	Currency          string
	Provider          string
	ProviderPaymentID string
	PaymentMethod     string
	Metadata          map[string]any
}

func (s *PaymentService) Create(ctx context.Context, in CreatePaymentInput) (entity.Payment, error) {
	p, err := entity.CreatePayment(entity.CreatePaymentProps{
		UserID:            in.UserID,
		EventID:           in.EventID,
		Amount:            in.Amount,
		Currency:          in.Currency,
		Provider:          in.Provider,
		ProviderPaymentID: in.ProviderPaymentID,
		PaymentMethod:     in.PaymentMethod,
		Metadata:          in.Metadata,
	}, s.Clock, s.IDs)
	if err != nil {
		logRejection(s.Logger, "create payment rejected", err, logrus.Fields{"user_id": in.UserID, "event_id": in.EventID})
		return entity.Payment{}, err
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return entity.Payment{}, fmt.Errorf("create payment: %w", err)
	}
	s.Logger.WithFields(logrus.Fields{
		"payment_id": p.ID(),
		"user_id":    p.UserID(),
		"amount":     p.Amount(),
		"currency":   p.Currency().String(),
	}).Info("payment created")
	return p, nil
}

func (s *PaymentService) Get(ctx context.Context, id string) (entity.Payment, error) {
	return load(ctx, s.Repo.GetByID, id, ErrPaymentNotFound)
}

func (s *PaymentService) List(ctx context.Context, f repo.PaymentFilter, opts repo.ListOptions) (repo.Page[entity.Payment], error) {
	return s.Repo.List(ctx, f, opts.Normalize())
}

func (s *PaymentService) Complete(ctx context.Context, id, providerPaymentID string) (entity.Payment, error) {
	return s.apply(ctx, id, "complete", func(p entity.Payment) (entity.Payment, error) {
		return p.Complete(providerPaymentID, s.Clock.Now())
	})
}

func (s *PaymentService) Fail(ctx context.Context, id string, errorDetails any) (entity.Payment, error) {
	return s.apply(ctx, id, "fail", func(p entity.Payment) (entity.Payment, error) {
		return p.Fail(errorDetails, s.Clock.Now())
	})
}

func (s *PaymentService) Refund(ctx context.Context, id, reason string) (entity.Payment, error) {
	return s.apply(ctx, id, "refund", func(p entity.Payment) (entity.Payment, error) {
		return p.Refund(reason, s.Clock.Now())
	})
}

func (s *PaymentService) Cancel(ctx context.Context, id string) (entity.Payment, error) {
	return s.apply(ctx, id, "cancel", func(p entity.Payment) (entity.Payment, error) {
		return p.Cancel(s.Clock.Now())
	})
}

func (s *PaymentService) UpdateMetadata(ctx context.Context, id string, patch map[string]any) (entity.Payment, error) {
	return s.apply(ctx, id, "update metadata", func(p entity.Payment) (entity.Payment, error) {
		return p.UpdateMetadata(patch, s.Clock.Now()), nil
	})
}

func (s *PaymentService) apply(ctx context.Context, id, op string, fn func(entity.Payment) (entity.Payment, error)) (entity.Payment, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return entity.Payment{}, err
	}
	next, err := fn(p)
	if err != nil {
		logRejection(s.Logger, op+" payment rejected", err, logrus.Fields{"payment_id": id, "status": p.Status().String()})
		return entity.Payment{}, err
	}
	if err := s.Repo.Update(ctx, next); err != nil {
		return entity.Payment{}, fmt.Errorf("%s payment: %w", op, err)
	}
	s.Logger.WithFields(logrus.Fields{"payment_id": id, "op": op, "status": next.Status().String()}).Info("payment updated")
	return next, nil
}
