package entity

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/oksasatya/eventhub/internal/domain/shared"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

// Payment is the financial transaction behind a booking.
//
// Lifecycle: PENDING -> COMPLETED | FAILED | CANCELLED, COMPLETED -> REFUNDED.
// FAILED, CANCELLED and REFUNDED are terminal.
type Payment struct {
	Base
	userID            string
	eventID           string
	amount            float64
	currency          vo.Currency
	status            vo.PaymentStatus
	provider          vo.PaymentProvider
	providerPaymentID string
	paymentMethod     vo.PaymentMethod
	metadata          Metadata
}

// PaymentProps is the plain-data projection of a Payment.
type PaymentProps struct {
	BaseProps
	UserID            string             `json:"user_id"`
	EventID           string             `json:"event_id"`
	Amount            float64            `json:"amount"`
	Currency          vo.Currency        `json:"currency"`
	Status            vo.PaymentStatus   `json:"status"`
	Provider          vo.PaymentProvider `json:"provider"`
	ProviderPaymentID string             `json:"provider_payment_id,omitempty"`
	PaymentMethod     vo.PaymentMethod   `json:"payment_method"`
	Metadata          Metadata           `json:"metadata,omitempty"`
}

// CreatePaymentProps is the untrusted input accepted by CreatePayment.
// Optional fields: ID, Status (defaults to PENDING), PaymentMethod (defaults
// to UNKNOWN), ProviderPaymentID, Metadata.
type CreatePaymentProps struct {
	ID                string
	UserID            string
	EventID           string
	Amount            float64
	Currency          string
	Provider          string
	ProviderPaymentID string
	PaymentMethod     string
	Status            string
	Metadata          map[string]any
}

// CreatePayment validates props and returns a new PENDING payment.
func CreatePayment(props CreatePaymentProps, clk shared.Clock, ids shared.IDGenerator) (Payment, error) {
	userID := strings.TrimSpace(props.UserID)
	if userID == "" {
		return Payment{}, newError(KindPaymentCreate, CodePaymentUserRequired, "user id is required")
	}
	eventID := strings.TrimSpace(props.EventID)
	if eventID == "" {
		return Payment{}, newError(KindPaymentCreate, CodePaymentEventRequired, "event id is required")
	}
	if math.IsNaN(props.Amount) || math.IsInf(props.Amount, 0) || props.Amount <= 0 {
		return Payment{}, newError(KindPaymentCreate, CodePaymentInvalidAmount, "amount must be greater than zero")
	}
	currency, err := vo.NewCurrency(props.Currency)
	if err != nil {
		return Payment{}, wrapError(KindPaymentCreate, CodePaymentInvalidCurrency, err.Error(), err)
	}
	provider, err := vo.NewPaymentProvider(props.Provider)
	if err != nil {
		return Payment{}, wrapError(KindPaymentCreate, CodePaymentInvalidProvider, err.Error(), err)
	}
	method := vo.PaymentMethodUnknown()
	if strings.TrimSpace(props.PaymentMethod) != "" {
		if method, err = vo.NewPaymentMethod(props.PaymentMethod); err != nil {
			return Payment{}, wrapError(KindPaymentCreate, CodePaymentInvalidMethod, err.Error(), err)
		}
	}
	status := vo.PaymentStatusPending()
	if strings.TrimSpace(props.Status) != "" {
		if status, err = vo.NewPaymentStatus(props.Status); err != nil {
			return Payment{}, wrapError(KindPaymentCreate, CodePaymentInvalidStatus, err.Error(), err)
		}
	}

	id := strings.TrimSpace(props.ID)
	if id == "" {
		id = shared.IDsOrUUID(ids).NewID()
	}
	return Payment{
		Base:              newBase(id, shared.ClockOrSystem(clk).Now()),
		userID:            userID,
		eventID:           eventID,
		amount:            props.Amount,
		currency:          currency,
		status:            status,
		provider:          provider,
		providerPaymentID: strings.TrimSpace(props.ProviderPaymentID),
		paymentMethod:     method,
		metadata:          Metadata(props.Metadata).Merge(nil),
	}, nil
}

// ReconstitutePayment rebuilds a payment from trusted storage without validation.
func ReconstitutePayment(p PaymentProps) Payment {
	return Payment{
		Base:              baseFromProps(p.BaseProps),
		userID:            p.UserID,
		eventID:           p.EventID,
		amount:            p.Amount,
		currency:          p.Currency,
		status:            p.Status,
		provider:          p.Provider,
		providerPaymentID: p.ProviderPaymentID,
		paymentMethod:     p.PaymentMethod,
		metadata:          p.Metadata.Clone(),
	}
}

// Props returns the plain-data projection. The metadata map is a copy.
func (p Payment) Props() PaymentProps {
	return PaymentProps{
		BaseProps:         p.baseProps(),
		UserID:            p.userID,
		EventID:           p.eventID,
		Amount:            p.amount,
		Currency:          p.currency,
		Status:            p.status,
		Provider:          p.provider,
		ProviderPaymentID: p.providerPaymentID,
		PaymentMethod:     p.paymentMethod,
		Metadata:          p.metadata.Clone(),
	}
}

func (p Payment) UserID() string                        { return p.userID }
func (p Payment) EventID() string                       { return p.eventID }
func (p Payment) Amount() float64                       { return p.amount }
func (p Payment) Currency() vo.Currency                 { return p.currency }
func (p Payment) Status() vo.PaymentStatus              { return p.status }
func (p Payment) Provider() vo.PaymentProvider          { return p.provider }
func (p Payment) ProviderPaymentID() string             { return p.providerPaymentID }
func (p Payment) PaymentMethod() vo.PaymentMethod       { return p.paymentMethod }
func (p Payment) Metadata() Metadata                    { return p.metadata.Clone() }
func (p Payment) IsRefundable() bool                    { return p.status.IsCompleted() }
func (p Payment) withStatus(s vo.PaymentStatus) Payment { p.status = s; return p }

// Complete records the provider's payment id and moves PENDING -> COMPLETED.
func (p Payment) Complete(providerPaymentID string, at time.Time) (Payment, error) {
	if !p.status.IsPending() {
		return Payment{}, p.notPending("complete")
	}
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return Payment{}, newError(KindPaymentUpdate, CodePaymentProviderIDRequired, "provider payment id is required")
	}
	next := p.next(at).withStatus(vo.PaymentStatusCompleted())
	next.providerPaymentID = providerPaymentID
	return next, nil
}

// Fail moves PENDING -> FAILED. Non-nil errorDetails are stored under metadata "error".
func (p Payment) Fail(errorDetails any, at time.Time) (Payment, error) {
	if !p.status.IsPending() {
		return Payment{}, p.notPending("fail")
	}
	next := p.next(at).withStatus(vo.PaymentStatusFailed())
	if errorDetails != nil {
		next.metadata = next.metadata.Merge(map[string]any{"error": errorDetails})
	}
	return next, nil
}

// Refund moves COMPLETED -> REFUNDED and stores metadata "refund" = {reason, date}.
func (p Payment) Refund(reason string, at time.Time) (Payment, error) {
	if !p.status.IsCompleted() {
		return Payment{}, newError(KindPaymentUpdate, CodePaymentNotCompleted,
			fmt.Sprintf("only completed payments can be refunded (status %s)", p.status))
	}
	next := p.next(at).withStatus(vo.PaymentStatusRefunded())
	next.metadata = next.metadata.Merge(map[string]any{
		"refund": map[string]any{"reason": reason, "date": formatInstant(at)},
	})
	return next, nil
}

// Cancel moves PENDING -> CANCELLED and stores metadata "cancellation" = {date}.
func (p Payment) Cancel(at time.Time) (Payment, error) {
	if !p.status.IsPending() {
		return Payment{}, p.notPending("cancel")
	}
	next := p.next(at).withStatus(vo.PaymentStatusCancelled())
	next.metadata = next.metadata.Merge(map[string]any{
		"cancellation": map[string]any{"date": formatInstant(at)},
	})
	return next, nil
}

// UpdateMetadata shallow-merges patch into the metadata. Allowed in every status.
func (p Payment) UpdateMetadata(patch map[string]any, at time.Time) Payment {
	next := p.next(at)
	next.metadata = next.metadata.Merge(patch)
	return next
}

func (p Payment) next(at time.Time) Payment {
	p.Base = p.touched(at)
	p.metadata = p.metadata.Clone()
	return p
}

func (p Payment) notPending(op string) *DomainError {
	return newError(KindPaymentUpdate, CodePaymentNotPending,
		fmt.Sprintf("cannot %s payment in status %s: payment must be pending", op, p.status))
}
