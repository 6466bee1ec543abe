package application

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
	"github.com/oksasatya/eventhub/internal/domain/shared"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

func newPaymentSvc() (*PaymentService, fakePayments) {
	r := newFakePayments()
	return NewPaymentService(r, fixed(), shared.NewSequenceIDGenerator("pay"), nil), r
}

func createPayment(t *testing.T, svc *PaymentService, userID string) entity.Payment {
	t.Helper()
	p, err := svc.Create(context.Background(), CreatePaymentInput{
		UserID:   userID,
		EventID:  "event-1",
		Amount:   120,
		Currency: "EUR",
		Provider: "PAYPAL",
	})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	return p
}

func TestPaymentService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc, r := newPaymentSvc()
	p := createPayment(t, svc, "user-1")

	if _, err := svc.Complete(ctx, p.ID(), "pi_1"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	refunded, err := svc.Refund(ctx, p.ID(), "requested")
	if err != nil {
		t.Fatalf("refund: %v", err)
	}
	if !refunded.Status().IsRefunded() {
		t.Fatalf("expected REFUNDED, got %s", refunded.Status())
	}

	stored, _ := r.GetByID(ctx, p.ID())
	if !stored.Status().IsRefunded() || stored.ProviderPaymentID() != "pi_1" {
		t.Fatalf("repository not updated: %+v", stored.Props())
	}
}

func TestPaymentService_RejectionDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	svc, r := newPaymentSvc()
	p := createPayment(t, svc, "user-1")

	_, err := svc.Refund(ctx, p.ID(), "too early")
	if !errors.Is(err, entity.CodeError(entity.CodePaymentNotCompleted)) {
		t.Fatalf("expected not completed error, got %v", err)
	}
	if r.updates != 0 {
		t.Fatalf("expected no updates, got %d", r.updates)
	}
}

func TestPaymentService_CreateValidation(t *testing.T) {
	svc, r := newPaymentSvc()
	_, err := svc.Create(context.Background(), CreatePaymentInput{UserID: "u", EventID: "e", Amount: 0, Currency: "USD", Provider: "STRIPE"})
	if !errors.Is(err, entity.ErrPaymentCreate) {
		t.Fatalf("expected create error, got %v", err)
	}
	if len(r.items) != 0 {
		t.Fatalf("invalid payment stored")
	}
}

func TestPaymentService_NotFound(t *testing.T) {
	svc, _ := newPaymentSvc()
	if _, err := svc.Cancel(context.Background(), "missing"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}

func TestPaymentService_List(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPaymentSvc()
	a := createPayment(t, svc, "user-1")
	createPayment(t, svc, "user-1")
	createPayment(t, svc, "user-2")
	if _, err := svc.Cancel(ctx, a.ID()); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	page, err := svc.List(ctx, repo.PaymentFilter{UserID: "user-1"}, repo.ListOptions{Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 2 || len(page.Items) != 1 {
		t.Fatalf("expected 1 of 2, got %d of %d", len(page.Items), page.Total)
	}

	page, _ = svc.List(ctx, repo.PaymentFilter{Status: vo.PaymentStatusCancelled()}, repo.ListOptions{})
	if page.Total != 1 || page.Items[0].ID() != a.ID() {
		t.Fatalf("unexpected cancelled page %+v", page)
	}
}

func TestPaymentService_UpdateMetadata(t *testing.T) {
	svc, _ := newPaymentSvc()
	p := createPayment(t, svc, "user-1")
	updated, err := svc.UpdateMetadata(context.Background(), p.ID(), map[string]any{"invoice": "INV-1"})
	if err != nil {
		t.Fatalf("update metadata: %v", err)
	}
	if updated.Metadata()["invoice"] != "INV-1" {
		t.Fatalf("metadata not merged: %v", updated.Metadata())
	}
}
