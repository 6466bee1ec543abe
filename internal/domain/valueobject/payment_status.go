package valueobject

// PaymentStatus is a validated payment lifecycle status.
type PaymentStatus struct {
	value string
}

const (
	paymentStatusPending   = "PENDING"
	paymentStatusCompleted = "COMPLETED"
	paymentStatusFailed    = "FAILED"
	paymentStatusRefunded  = "REFUNDED"
	paymentStatusCancelled = "CANCELLED"
)

var paymentStatusValues = []string{paymentStatusPending, paymentStatusCompleted, paymentStatusFailed, paymentStatusRefunded, paymentStatusCancelled}

// NewPaymentStatus validates raw and returns the matching PaymentStatus.
func NewPaymentStatus(raw string) (PaymentStatus, error) {
	v, err := parse("payment status", raw, paymentStatusValues)
	if err != nil {
		return PaymentStatus{}, err
	}
	return PaymentStatus{value: v}, nil
}

// PaymentStatusValues lists the allowed raw values.
func PaymentStatusValues() []string {
	out := make([]string, len(paymentStatusValues))
	copy(out, paymentStatusValues)
	return out
}

func PaymentStatusPending() PaymentStatus   { return PaymentStatus{value: paymentStatusPending} }
func PaymentStatusCompleted() PaymentStatus { return PaymentStatus{value: paymentStatusCompleted} }
func PaymentStatusFailed() PaymentStatus    { return PaymentStatus{value: paymentStatusFailed} }
func PaymentStatusRefunded() PaymentStatus  { return PaymentStatus{value: paymentStatusRefunded} }
func PaymentStatusCancelled() PaymentStatus { return PaymentStatus{value: paymentStatusCancelled} }

func (s PaymentStatus) Value() string  { return s.value }
func (s PaymentStatus) String() string { return s.value }
func (s PaymentStatus) IsZero() bool   { return s.value == "" }

// Equals compares by underlying value.
func (s PaymentStatus) Equals(other PaymentStatus) bool { return s.value == other.value }

func (s PaymentStatus) IsPending() bool   { return s.value == paymentStatusPending }
func (s PaymentStatus) IsCompleted() bool { return s.value == paymentStatusCompleted }
func (s PaymentStatus) IsFailed() bool    { return s.value == paymentStatusFailed }
func (s PaymentStatus) IsRefunded() bool  { return s.value == paymentStatusRefunded }
func (s PaymentStatus) IsCancelled() bool { return s.value == paymentStatusCancelled }

func (s PaymentStatus) MarshalText() ([]byte, error) { return []byte(s.value), nil }

func (s *PaymentStatus) UnmarshalText(b []byte) error {
	v, err := NewPaymentStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// IsTerminal reports whether no transition leaves this status.
func (s PaymentStatus) IsTerminal() bool {
	return s.IsFailed() || s.IsRefunded() || s.IsCancelled()
}
