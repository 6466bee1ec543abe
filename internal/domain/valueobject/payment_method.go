package valueobject

// PaymentMethod is a validated payment instrument.
type PaymentMethod struct {
	value string
}

const (
	paymentMethodCreditCard   = "CREDIT_CARD"
	paymentMethodDebitCard    = "DEBIT_CARD"
	paymentMethodBankTransfer = "BANK_TRANSFER"
	paymentMethodWallet       = "WALLET"
	paymentMethodCash         = "CASH"
	paymentMethodUnknown      = "UNKNOWN"
)

var paymentMethodValues = []string{paymentMethodCreditCard, paymentMethodDebitCard, paymentMethodBankTransfer, paymentMethodWallet, paymentMethodCash, paymentMethodUnknown}

// NewPaymentMethod validates raw and returns the matching PaymentMethod.
func NewPaymentMethod(raw string) (PaymentMethod, error) {
	v, err := parse("payment method", raw, paymentMethodValues)
	if err != nil {
		return PaymentMethod{}, err
	}
	return PaymentMethod{value: v}, nil
}

// PaymentMethodValues lists the allowed raw values.
func PaymentMethodValues() []string {
	out := make([]string, len(paymentMethodValues))
	copy(out, paymentMethodValues)
	return out
}

func PaymentMethodCreditCard() PaymentMethod { return PaymentMethod{value: paymentMethodCreditCard} }
func PaymentMethodDebitCard() PaymentMethod  { return PaymentMethod{value: paymentMethodDebitCard} }
func PaymentMethodBankTransfer() PaymentMethod {
	return PaymentMethod{value: paymentMethodBankTransfer}
}
func PaymentMethodWallet() PaymentMethod  { return PaymentMethod{value: paymentMethodWallet} }
func PaymentMethodCash() PaymentMethod    { return PaymentMethod{value: paymentMethodCash} }
func PaymentMethodUnknown() PaymentMethod { return PaymentMethod{value: paymentMethodUnknown} }

func (s PaymentMethod) Value() string  { return s.value }
func (s PaymentMethod) String() string { return s.value }
func (s PaymentMethod) IsZero() bool   { return s.value == "" }

// Equals compares by underlying value.
func (s PaymentMethod) Equals(other PaymentMethod) bool { return s.value == other.value }

func (s PaymentMethod) IsCreditCard() bool   { return s.value == paymentMethodCreditCard }
func (s PaymentMethod) IsDebitCard() bool    { return s.value == paymentMethodDebitCard }
func (s PaymentMethod) IsBankTransfer() bool { return s.value == paymentMethodBankTransfer }
func (s PaymentMethod) IsWallet() bool       { return s.value == paymentMethodWallet }
func (s PaymentMethod) IsCash() bool         { return s.value == paymentMethodCash }
func (s PaymentMethod) IsUnknown() bool      { return s.value == paymentMethodUnknown }

func (s PaymentMethod) MarshalText() ([]byte, error) { return []byte(s.value), nil }

func (s *PaymentMethod) UnmarshalText(b []byte) error {
	v, err := NewPaymentMethod(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
