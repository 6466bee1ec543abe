package valueobject

// Currency is a validated ISO 4217 currency code accepted for payments.
type Currency struct {
	value string
}

const (
	currencyUsd = "USD"
	currencyEur = "EUR"
	currencyGbp = "GBP"
	currencyMxn = "MXN"
	currencyArs = "ARS"
	currencyCop = "COP"
	currencyClp = "CLP"
)

var currencyValues = []string{currencyUsd, currencyEur, currencyGbp, currencyMxn, currencyArs, currencyCop, currencyClp}

// NewCurrency validates raw and returns the matching Currency.
func NewCurrency(raw string) (Currency, error) {
	v, err := parse("currency", raw, currencyValues)
	if err != nil {
		return Currency{}, err
	}
	return Currency{value: v}, nil
}

// CurrencyValues lists the allowed raw values.
func CurrencyValues() []string {
	out := make([]string, len(currencyValues))
	copy(out, currencyValues)
	return out
}

func CurrencyUsd() Currency { return Currency{value: currencyUsd} }
func CurrencyEur() Currency { return Currency{value: currencyEur} }
func CurrencyGbp() Currency { return Currency{value: currencyGbp} }
func CurrencyMxn() Currency { return Currency{value: currencyMxn} }
func CurrencyArs() Currency { return Currency{value: currencyArs} }
func CurrencyCop() Currency { return Currency{value: currencyCop} }
func CurrencyClp() Currency { return Currency{value: currencyClp} }

func (s Currency) Value() string  { return s.value }
func (s Currency) String() string { return s.value }
func (s Currency) IsZero() bool   { return s.value == "" }

// Equals compares by underlying value.
func (s Currency) Equals(other Currency) bool { return s.value == other.value }

func (s Currency) IsUsd() bool { return s.value == currencyUsd }
func (s Currency) IsEur() bool { return s.value == currencyEur }
func (s Currency) IsGbp() bool { return s.value == currencyGbp }
func (s Currency) IsMxn() bool { return s.value == currencyMxn }
func (s Currency) IsArs() bool { return s.value == currencyArs }
func (s Currency) IsCop() bool { return s.value == currencyCop }
func (s Currency) IsClp() bool { return s.value == currencyClp }

func (s Currency) MarshalText() ([]byte, error) { return []byte(s.value), nil }

func (s *Currency) UnmarshalText(b []byte) error {
	v, err := NewCurrency(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
