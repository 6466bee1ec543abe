package entity_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	"github.com/oksasatya/eventhub/internal/domain/shared"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

func validPaymentProps() entity.CreatePaymentProps {
	return entity.CreatePaymentProps{
		UserID:   "user-1",
		EventID:  "event-1",
		Amount:   150,
		Currency: "usd",
		Provider: "stripe",
	}
}

func newPayment(t *testing.T) entity.Payment {
	t.Helper()
	p, err := entity.CreatePayment(validPaymentProps(), fixedClock(), shared.NewSequenceIDGenerator("pay"))
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	return p
}

func TestCreatePaymentDefaults(t *testing.T) {
	p := newPayment(t)
	if p.ID() != "pay-1" {
		t.Fatalf("expected id pay-1, got %s", p.ID())
	}
	if !p.Status().IsPending() {
		t.Fatalf("expected PENDING, got %s", p.Status())
	}
	if !p.PaymentMethod().IsUnknown() {
		t.Fatalf("expected UNKNOWN method, got %s", p.PaymentMethod())
	}
	if !p.Currency().IsUsd() || !p.Provider().IsStripe() {
		t.Fatalf("unexpected currency/provider %s/%s", p.Currency(), p.Provider())
	}
	if !p.IsActive() || !p.CreatedAt().Equal(t0) || !p.UpdatedAt().Equal(t0) {
		t.Fatalf("unexpected base fields %+v", p.Props().BaseProps)
	}
	if p.Metadata() == nil || len(p.Metadata()) != 0 {
		t.Fatalf("expected empty metadata, got %v", p.Metadata())
	}
}

func TestCreatePaymentValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entity.CreatePaymentProps)
		code   entity.Code
	}{
		{"missing user", func(p *entity.CreatePaymentProps) { p.UserID = " " }, entity.CodePaymentUserRequired},
		{"missing event", func(p *entity.CreatePaymentProps) { p.EventID = "" }, entity.CodePaymentEventRequired},
		{"zero amount", func(p *entity.CreatePaymentProps) { p.Amount = 0 }, entity.CodePaymentInvalidAmount},
		{"negative amount", func(p *entity.CreatePaymentProps) { p.Amount = -1 }, entity.CodePaymentInvalidAmount},
		{"nan amount", func(p *entity.CreatePaymentProps) { p.Amount = math.NaN() }, entity.CodePaymentInvalidAmount},
		{"bad currency", func(p *entity.CreatePaymentProps) { p.Currency = "BTC" }, entity.CodePaymentInvalidCurrency},
		{"bad provider", func(p *entity.CreatePaymentProps) { p.Provider = "venmo" }, entity.CodePaymentInvalidProvider},
		{"bad method", func(p *entity.CreatePaymentProps) { p.PaymentMethod = "cheque" }, entity.CodePaymentInvalidMethod},
		{"bad status", func(p *entity.CreatePaymentProps) { p.Status = "DONE" }, entity.CodePaymentInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			props := validPaymentProps()
			tc.mutate(&props)
			_, err := entity.CreatePayment(props, fixedClock(), nil)
			expectCode(t, err, entity.ErrPaymentCreate, tc.code)
		})
	}
}

func TestCreatePaymentInvalidCurrencyWrapsValueError(t *testing.T) {
	props := validPaymentProps()
	props.Currency = "BTC"
	_, err := entity.CreatePayment(props, fixedClock(), nil)
	if !errors.Is(err, vo.ErrInvalidValue) {
		t.Fatalf("expected wrapped ErrInvalidValue, got %v", err)
	}
}

func TestPaymentCompleteThenRefund(t *testing.T) {
	p := newPayment(t)

	completed, err := p.Complete("pi_1", t1)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !completed.Status().IsCompleted() || completed.ProviderPaymentID() != "pi_1" {
		t.Fatalf("unexpected completed payment %+v", completed.Props())
	}
	if !completed.UpdatedAt().Equal(t1) {
		t.Fatalf("expected updatedAt %v, got %v", t1, completed.UpdatedAt())
	}
	if !p.Status().IsPending() {
		t.Fatalf("receiver mutated: %s", p.Status())
	}

	refunded, err := completed.Refund("requested", t2)
	if err != nil {
		t.Fatalf("refund: %v", err)
	}
	if !refunded.Status().IsRefunded() {
		t.Fatalf("expected REFUNDED, got %s", refunded.Status())
	}
	refund, ok := refunded.Metadata()["refund"].(map[string]any)
	if !ok {
		t.Fatalf("missing refund metadata: %v", refunded.Metadata())
	}
	if refund["reason"] != "requested" || refund["date"] != "2025-06-01T12:00:00Z" {
		t.Fatalf("unexpected refund metadata %v", refund)
	}
	if _, ok := completed.Metadata()["refund"]; ok {
		t.Fatalf("refund leaked into previous value")
	}
}

func TestPaymentTransitionGuards(t *testing.T) {
	p := newPayment(t)
	completed, _ := p.Complete("pi_1", t1)
	failed, _ := p.Fail(map[string]any{"code": "card_declined"}, t1)
	cancelled, _ := p.Cancel(t1)

	t.Run("complete requires provider id", func(t *testing.T) {
		_, err := p.Complete("  ", t1)
		expectCode(t, err, entity.ErrPaymentUpdate, entity.CodePaymentProviderIDRequired)
	})
	t.Run("complete twice", func(t *testing.T) {
		_, err := completed.Complete("pi_2", t2)
		expectCode(t, err, entity.ErrPaymentUpdate, entity.CodePaymentNotPending)
	})
	t.Run("refund pending", func(t *testing.T) {
		_, err := p.Refund("x", t1)
		expectCode(t, err, entity.ErrPaymentUpdate, entity.CodePaymentNotCompleted)
	})
	t.Run("fail completed", func(t *testing.T) {
		_, err := completed.Fail(nil, t2)
		expectCode(t, err, entity.ErrPaymentUpdate, entity.CodePaymentNotPending)
	})
	t.Run("cancel failed", func(t *testing.T) {
		_, err := failed.Cancel(t2)
		expectCode(t, err, entity.ErrPaymentUpdate, entity.CodePaymentNotPending)
	})
	t.Run("refund cancelled", func(t *testing.T) {
		_, err := cancelled.Refund("x", t2)
		expectCode(t, err, entity.ErrPaymentUpdate, entity.CodePaymentNotCompleted)
	})
}

func TestPaymentFailAndCancelMetadata(t *testing.T) {
	p := newPayment(t)

	failed, err := p.Fail(map[string]any{"code": "card_declined"}, t1)
	if err != nil {
		t.Fatalf("fail: %v", err)
	}
	if !failed.Status().IsFailed() {
		t.Fatalf("expected FAILED, got %s", failed.Status())
	}
	if _, ok := failed.Metadata()["error"]; !ok {
		t.Fatalf("expected error metadata, got %v", failed.Metadata())
	}

	noDetails, _ := p.Fail(nil, t1)
	if _, ok := noDetails.Metadata()["error"]; ok {
		t.Fatalf("nil details must not be stored")
	}

	cancelled, err := p.Cancel(t1)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	c, ok := cancelled.Metadata()["cancellation"].(map[string]any)
	if !ok || c["date"] != "2025-06-01T11:00:00Z" {
		t.Fatalf("unexpected cancellation metadata %v", cancelled.Metadata())
	}
}

func TestPaymentUpdateMetadataMerges(t *testing.T) {
	props := validPaymentProps()
	props.Metadata = map[string]any{"a": 1, "b": 2}
	p, err := entity.CreatePayment(props, fixedClock(), nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	props.Metadata["a"] = 99
	if p.Metadata()["a"] != 1 {
		t.Fatalf("input map aliased into aggregate")
	}

	updated := p.UpdateMetadata(map[string]any{"b": 3, "c": 4}, t1)
	want := entity.Metadata{"a": 1, "b": 3, "c": 4}
	if !reflect.DeepEqual(updated.Metadata(), want) {
		t.Fatalf("expected %v, got %v", want, updated.Metadata())
	}
	if p.Metadata()["b"] != 2 {
		t.Fatalf("receiver metadata mutated")
	}
}

func TestPaymentPropsRoundTrip(t *testing.T) {
	p := newPayment(t)
	p, _ = p.Complete("pi_1", t1)
	props := p.Props()
	again := entity.ReconstitutePayment(props).Props()
	if !reflect.DeepEqual(props, again) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", props, again)
	}
	props.Metadata["x"] = 1
	if _, ok := p.Metadata()["x"]; ok {
		t.Fatalf("Props exposed internal metadata map")
	}
}
