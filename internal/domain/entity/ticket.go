package entity

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/oksasatya/eventhub/internal/domain/shared"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

// QRCodePrefix prefixes generated ticket QR payloads.
const QRCodePrefix = "EHTICKET-"

// Ticket is an admission credential for an event, paid through a Payment
// referenced by id only.
//
// Lifecycle: VALID -> USED | CANCELLED | EXPIRED, each terminal.
type Ticket struct {
	Base
	userID      string
	eventID     string
	paymentID   string
	ticketType  string
	ticketPrice float64
	status      vo.TicketStatus
	qrCode      string
	usedAt      *time.Time
	metadata    Metadata
}

// TicketProps is the plain-data projection of a Ticket.
type TicketProps struct {
	BaseProps
	UserID      string          `json:"user_id"`
	EventID     string          `json:"event_id"`
	PaymentID   string          `json:"payment_id"`
	TicketType  string          `json:"ticket_type"`
	TicketPrice float64         `json:"ticket_price"`
	Status      vo.TicketStatus `json:"status"`
	QRCode      string          `json:"qr_code"`
	UsedAt      *time.Time      `json:"used_at,omitempty"`
	Metadata    Metadata        `json:"metadata,omitempty"`
}

// CreateTicketProps is the untrusted input accepted by CreateTicket.
type CreateTicketProps struct {
	ID          string
	UserID      string
	EventID     string
	PaymentID   string
	TicketType  string
	TicketPrice float64
	QRCode      string
	Metadata    map[string]any
}

// CreateTicket validates props and returns a new VALID ticket. When no QR code is
// supplied it defaults to EHTICKET-<first 8 chars of id>.
func CreateTicket(props CreateTicketProps, clk shared.Clock, ids shared.IDGenerator) (Ticket, error) {
	required := []struct {
		value string
		code  Code
		msg   string
	}{
		{props.UserID, CodeTicketUserRequired, "user id is required"},
		{props.EventID, CodeTicketEventRequired, "event id is required"},
		{props.PaymentID, CodeTicketPaymentRequired, "payment id is required"},
		{props.TicketType, CodeTicketTypeRequired, "ticket type is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return Ticket{}, newError(KindTicketCreate, r.code, r.msg)
		}
	}
	if math.IsNaN(props.TicketPrice) || math.IsInf(props.TicketPrice, 0) || props.TicketPrice < 0 {
		return Ticket{}, newError(KindTicketCreate, CodeTicketInvalidPrice, "ticket price must be zero or greater")
	}

	id := strings.TrimSpace(props.ID)
	if id == "" {
		id = shared.IDsOrUUID(ids).NewID()
	}
	qr := strings.TrimSpace(props.QRCode)
	if qr == "" {
		qr = defaultQRCode(id)
	}
	return Ticket{
		Base:        newBase(id, shared.ClockOrSystem(clk).Now()),
		userID:      strings.TrimSpace(props.UserID),
		eventID:     strings.TrimSpace(props.EventID),
		paymentID:   strings.TrimSpace(props.PaymentID),
		ticketType:  strings.TrimSpace(props.TicketType),
		ticketPrice: props.TicketPrice,
		status:      vo.TicketStatusValid(),
		qrCode:      qr,
		metadata:    Metadata(props.Metadata).Merge(nil),
	}, nil
}

func defaultQRCode(id string) string {
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return QRCodePrefix + short
}

// ReconstituteTicket rebuilds a ticket from trusted storage without validation.
func ReconstituteTicket(p TicketProps) Ticket {
	return Ticket{
		Base:        baseFromProps(p.BaseProps),
		userID:      p.UserID,
		eventID:     p.EventID,
		paymentID:   p.PaymentID,
		ticketType:  p.TicketType,
		ticketPrice: p.TicketPrice,
		status:      p.Status,
		qrCode:      p.QRCode,
		usedAt:      copyTime(p.UsedAt),
		metadata:    p.Metadata.Clone(),
	}
}

// Props returns the plain-data projection.
func (t Ticket) Props() TicketProps {
	return TicketProps{
		BaseProps:   t.baseProps(),
		UserID:      t.userID,
		EventID:     t.eventID,
		PaymentID:   t.paymentID,
		TicketType:  t.ticketType,
		TicketPrice: t.ticketPrice,
		Status:      t.status,
		QRCode:      t.qrCode,
		UsedAt:      copyTime(t.usedAt),
		Metadata:    t.metadata.Clone(),
	}
}

func (t Ticket) UserID() string          { return t.userID }
func (t Ticket) EventID() string         { return t.eventID }
func (t Ticket) PaymentID() string       { return t.paymentID }
func (t Ticket) TicketType() string      { return t.ticketType }
func (t Ticket) TicketPrice() float64    { return t.ticketPrice }
func (t Ticket) Status() vo.TicketStatus { return t.status }
func (t Ticket) QRCode() string          { return t.qrCode }
func (t Ticket) UsedAt() *time.Time      { return copyTime(t.usedAt) }
func (t Ticket) Metadata() Metadata      { return t.metadata.Clone() }

// Use admits the holder: VALID -> USED with usedAt = at.
func (t Ticket) Use(at time.Time) (Ticket, error) {
	if t.status.IsUsed() {
		return Ticket{}, newError(KindTicketUpdate, CodeTicketAlreadyUsed, "ticket already used")
	}
	if !t.status.IsValid() {
		return Ticket{}, newError(KindTicketUpdate, CodeTicketNotValid,
			fmt.Sprintf("only valid tickets can be used (status %s)", t.status))
	}
	next := t.next(at)
	next.status = vo.TicketStatusUsed()
	used := at
	next.usedAt = &used
	return next, nil
}

// Cancel voids an unused ticket. A non-empty reason is recorded under
// metadata "cancellationReason".
func (t Ticket) Cancel(reason string, at time.Time) (Ticket, error) {
	switch {
	case t.status.IsUsed():
		return Ticket{}, newError(KindTicketUpdate, CodeTicketAlreadyUsed, "used tickets cannot be cancelled")
	case t.status.IsCancelled():
		return Ticket{}, newError(KindTicketUpdate, CodeTicketAlreadyCancelled, "ticket already cancelled")
	case !t.status.IsValid():
		return Ticket{}, newError(KindTicketUpdate, CodeTicketNotValid,
			fmt.Sprintf("only valid tickets can be cancelled (status %s)", t.status))
	}
	next := t.next(at)
	next.status = vo.TicketStatusCancelled()
	if reason = strings.TrimSpace(reason); reason != "" {
		next.metadata = next.metadata.Merge(map[string]any{"cancellationReason": reason})
	}
	return next, nil
}

// Expire moves VALID -> EXPIRED.
func (t Ticket) Expire(at time.Time) (Ticket, error) {
	if !t.status.IsValid() {
		return Ticket{}, newError(KindTicketUpdate, CodeTicketNotValid,
			fmt.Sprintf("only valid tickets can expire (status %s)", t.status))
	}
	next := t.next(at)
	next.status = vo.TicketStatusExpired()
	return next, nil
}

// UpdateMetadata shallow-merges patch into the metadata.
func (t Ticket) UpdateMetadata(patch map[string]any, at time.Time) Ticket {
	next := t.next(at)
	next.metadata = next.metadata.Merge(patch)
	return next
}

func (t Ticket) next(at time.Time) Ticket {
	t.Base = t.touched(at)
	t.metadata = t.metadata.Clone()
	t.usedAt = copyTime(t.usedAt)
	return t
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
