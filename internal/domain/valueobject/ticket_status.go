package valueobject

// TicketStatus is a validated ticket lifecycle status.
type TicketStatus struct {
	value string
}

const (
	ticketStatusValid     = "VALID"
	ticketStatusUsed      = "USED"
	ticketStatusCancelled = "CANCELLED"
	ticketStatusExpired   = "EXPIRED"
)

var ticketStatusValues = []string{ticketStatusValid, ticketStatusUsed, ticketStatusCancelled, ticketStatusExpired}

// NewTicketStatus validates raw and returns the matching TicketStatus.
func NewTicketStatus(raw string) (TicketStatus, error) {
	v, err := parse("ticket status", raw, ticketStatusValues)
	if err != nil {
		return TicketStatus{}, err
	}
	return TicketStatus{value: v}, nil
}

// TicketStatusValues lists the allowed raw values.
func TicketStatusValues() []string {
	out := make([]string, len(ticketStatusValues))
	copy(out, ticketStatusValues)
	return out
}

func TicketStatusValid() TicketStatus     { return TicketStatus{value: ticketStatusValid} }
func TicketStatusUsed() TicketStatus      { return TicketStatus{value: ticketStatusUsed} }
func TicketStatusCancelled() TicketStatus { return TicketStatus{value: ticketStatusCancelled} }
func TicketStatusExpired() TicketStatus   { return TicketStatus{value: ticketStatusExpired} }

func (s TicketStatus) Value() string  { return s.value }
func (s TicketStatus) String() string { return s.value }
func (s TicketStatus) IsZero() bool   { return s.value == "" }

// Equals compares by underlying value.
func (s TicketStatus) Equals(other TicketStatus) bool { return s.value == other.value }

func (s TicketStatus) IsValid() bool     { return s.value == ticketStatusValid }
func (s TicketStatus) IsUsed() bool      { return s.value == ticketStatusUsed }
func (s TicketStatus) IsCancelled() bool { return s.value == ticketStatusCancelled }
func (s TicketStatus) IsExpired() bool   { return s.value == ticketStatusExpired }

func (s TicketStatus) MarshalText() ([]byte, error) { return []byte(s.value), nil }

func (s *TicketStatus) UnmarshalText(b []byte) error {
	v, err := NewTicketStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// IsTerminal reports whether the ticket can no longer change status.
func (s TicketStatus) IsTerminal() bool {
	return !s.IsZero() && !s.IsValid()
}
