// Package valueobject holds the immutable, validated enumerations used by the
// booking aggregates. Every type wraps an unexported value so that the zero
// value is never a member; construct through NewX or the named constructors.
package valueobject

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValue is wrapped by every rejected value object construction.
var ErrInvalidValue = errors.New("invalid value")

// InvalidValueError reports a raw value outside a value object's allowed set.
type InvalidValueError struct {
	Type    string
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %s", e.Type, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// parse normalizes raw (trim + upper case) and checks it against allowed.
func parse(typ, raw string, allowed []string) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", &InvalidValueError{Type: typ, Value: raw, Allowed: allowed}
}

func mustParse(typ, raw string, allowed []string) string {
	v, err := parse(typ, raw, allowed)
	if err != nil {
		panic(err)
	}
	return v
}
