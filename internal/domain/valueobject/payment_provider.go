package valueobject

// PaymentProvider is a validated payment gateway identifier.
type PaymentProvider struct {
	value string
}

const (
	paymentProviderStripe      = "STRIPE"
	paymentProviderPaypal      = "PAYPAL"
	paymentProviderMercadoPago = "MERCADO_PAGO"
	paymentProviderManual      = "MANUAL"
)

var paymentProviderValues = []string{paymentProviderStripe, paymentProviderPaypal, paymentProviderMercadoPago, paymentProviderManual}

// NewPaymentProvider validates raw and returns the matching PaymentProvider.
func NewPaymentProvider(raw string) (PaymentProvider, error) {
	v, err := parse("payment provider", raw, paymentProviderValues)
	if err != nil {
		return PaymentProvider{}, err
	}
	return PaymentProvider{value: v}, nil
}

// PaymentProviderValues lists the allowed raw values.
func PaymentProviderValues() []string {
	out := make([]string, len(paymentProviderValues))
	copy(out, paymentProviderValues)
	return out
}

func PaymentProviderStripe() PaymentProvider { return PaymentProvider{value: paymentProviderStripe} }
func PaymentProviderPaypal() PaymentProvider { return PaymentProvider{value: paymentProviderPaypal} }
func PaymentProviderMercadoPago() PaymentProvider {
	return PaymentProvider{value: paymentProviderMercadoPago}
}
func PaymentProviderManual() PaymentProvider { return PaymentProvider{value: paymentProviderManual} }

func (s PaymentProvider) Value() string  { return s.value }
func (s PaymentProvider) String() string { return s.value }
func (s PaymentProvider) IsZero() bool   { return s.value == "" }

// Equals compares by underlying value.
func (s PaymentProvider) Equals(other PaymentProvider) bool { return s.value == other.value }

func (s PaymentProvider) IsStripe() bool      { return s.value == paymentProviderStripe }
func (s PaymentProvider) IsPaypal() bool      { return s.value == paymentProviderPaypal }
func (s PaymentProvider) IsMercadoPago() bool { return s.value == paymentProviderMercadoPago }
func (s PaymentProvider) IsManual() bool      { return s.value == paymentProviderManual }

func (s PaymentProvider) MarshalText() ([]byte, error) { return []byte(s.value), nil }

func (s *PaymentProvider) UnmarshalText(b []byte) error {
	v, err := NewPaymentProvider(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
