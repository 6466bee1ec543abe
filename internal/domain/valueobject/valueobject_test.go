package valueobject

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewPaymentStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    PaymentStatus
		wantErr bool
	}{
		{raw: "PENDING", want: PaymentStatusPending()},
		{raw: " completed ", want: PaymentStatusCompleted()},
		{raw: "refunded", want: PaymentStatusRefunded()},
		{raw: "", wantErr: true},
		{raw: "PAID", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NewPaymentStatus(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidValue) {
					t.Fatalf("expected ErrInvalidValue, got %v", err)
				}
				if !got.IsZero() {
					t.Fatalf("expected zero value on error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equals(tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestInvalidValueListsAllowed(t *testing.T) {
	_, err := NewCurrency("BTC")
	var ive *InvalidValueError
	if !errors.As(err, &ive) {
		t.Fatalf("expected InvalidValueError, got %T", err)
	}
	if ive.Type != "currency" || ive.Value != "BTC" {
		t.Fatalf("unexpected error fields: %+v", ive)
	}
	for _, v := range CurrencyValues() {
		if !strings.Contains(err.Error(), v) {
			t.Fatalf("expected message to list %s, got %q", v, err.Error())
		}
	}
}

func TestValuesReturnsCopy(t *testing.T) {
	vals := TicketStatusValues()
	vals[0] = "MUTATED"
	if _, err := NewTicketStatus("VALID"); err != nil {
		t.Fatalf("allowed set must not be shared: %v", err)
	}
}

func TestPredicates(t *testing.T) {
	if !PaymentStatusPending().IsPending() || PaymentStatusPending().IsTerminal() {
		t.Fatalf("pending must not be terminal")
	}
	if PaymentStatusCompleted().IsTerminal() {
		t.Fatalf("completed can still be refunded")
	}
	for _, s := range []PaymentStatus{PaymentStatusFailed(), PaymentStatusRefunded(), PaymentStatusCancelled()} {
		if !s.IsTerminal() {
			t.Fatalf("%s must be terminal", s)
		}
	}
	if TicketStatusValid().IsTerminal() || !TicketStatusUsed().IsTerminal() {
		t.Fatalf("unexpected ticket terminal states")
	}
	if !AttendanceStatusConfirmed().IsOpen() || AttendanceStatusAttended().IsOpen() {
		t.Fatalf("unexpected attendance open states")
	}
	if !NotificationChannelEmail().RequiresHTML() || NotificationChannelSms().RequiresHTML() {
		t.Fatalf("only email requires html")
	}
	if !GroupStatusClosed().IsClosed() || PaymentMethodUnknown().String() != "UNKNOWN" {
		t.Fatalf("unexpected predicate results")
	}
	if PaymentProviderMercadoPago().Value() != "MERCADO_PAGO" {
		t.Fatalf("unexpected provider value %s", PaymentProviderMercadoPago())
	}
}

func TestTextRoundTrip(t *testing.T) {
	type payload struct {
		Status  GroupStatus         `json:"status"`
		Channel NotificationChannel `json:"channel"`
	}
	b, err := json.Marshal(payload{Status: GroupStatusInactive(), Channel: NotificationChannelPush()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"status":"INACTIVE","channel":"PUSH"}` {
		t.Fatalf("unexpected json %s", b)
	}

	var got payload
	if err := json.Unmarshal([]byte(`{"status":"closed","channel":"in_app"}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Status.IsClosed() || !got.Channel.IsInApp() {
		t.Fatalf("unexpected decoded payload %+v", got)
	}

	if err := json.Unmarshal([]byte(`{"status":"ARCHIVED"}`), &got); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}
