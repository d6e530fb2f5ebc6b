package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PaymentTypeScope – immutable value object
// ---------------------------------------------------------------------------

// PaymentTypeScope restricts a bonus rule to donations, tuition payments,
// or both.
type PaymentTypeScope struct {
	value string
}

const (
	scopeDonation = "DONATION"
	scopeTuition  = "TUITION"
	scopeBoth     = "BOTH"
)

var (
	PaymentTypeScopeDonation = PaymentTypeScope{value: scopeDonation}
	PaymentTypeScopeTuition  = PaymentTypeScope{value: scopeTuition}
	PaymentTypeScopeBoth     = PaymentTypeScope{value: scopeBoth}
)

var validPaymentTypeScopes = map[string]PaymentTypeScope{
	scopeDonation: PaymentTypeScopeDonation,
	scopeTuition:  PaymentTypeScopeTuition,
	scopeBoth:     PaymentTypeScopeBoth,
}

// NewPaymentTypeScope creates a PaymentTypeScope from a raw string.
func NewPaymentTypeScope(s string) (PaymentTypeScope, error) {
	v, ok := validPaymentTypeScopes[s]
	if !ok {
		return PaymentTypeScope{}, fmt.Errorf("invalid payment type scope: %q", s)
	}
	return v, nil
}

// Covers reports whether a payment with the given classification falls
// inside this scope.
func (s PaymentTypeScope) Covers(isDonation bool) bool {
	switch s.value {
	case scopeBoth:
		return true
	case scopeDonation:
		return isDonation
	case scopeTuition:
		return !isDonation
	default:
		return false
	}
}

// String returns the string representation of the scope.
func (s PaymentTypeScope) String() string { return s.value }

// IsZero returns true if the scope has not been initialised.
func (s PaymentTypeScope) IsZero() bool { return s.value == "" }

// Equal returns true when both scopes carry the same value.
func (s PaymentTypeScope) Equal(other PaymentTypeScope) bool { return s.value == other.value }
