package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PaymentStatus – immutable value object
// ---------------------------------------------------------------------------

// PaymentStatus represents the settlement state of a payment.
type PaymentStatus struct {
	value string
}

const (
	paymentStatusPending   = "PENDING"
	paymentStatusCompleted = "COMPLETED"
	paymentStatusFailed    = "FAILED"
	paymentStatusRefunded  = "REFUNDED"
)

var (
	PaymentStatusPending   = PaymentStatus{value: paymentStatusPending}
	PaymentStatusCompleted = PaymentStatus{value: paymentStatusCompleted}
	PaymentStatusFailed    = PaymentStatus{value: paymentStatusFailed}
	PaymentStatusRefunded  = PaymentStatus{value: paymentStatusRefunded}
)

var validPaymentStatuses = map[string]PaymentStatus{
	paymentStatusPending:   PaymentStatusPending,
	paymentStatusCompleted: PaymentStatusCompleted,
	paymentStatusFailed:    PaymentStatusFailed,
	paymentStatusRefunded:  PaymentStatusRefunded,
}

// NewPaymentStatus creates a PaymentStatus from a raw string.
func NewPaymentStatus(s string) (PaymentStatus, error) {
	v, ok := validPaymentStatuses[s]
	if !ok {
		return PaymentStatus{}, fmt.Errorf("invalid payment status: %q", s)
	}
	return v, nil
}

// IsCompleted reports whether the payment has settled.
func (s PaymentStatus) IsCompleted() bool { return s.value == paymentStatusCompleted }

// String returns the string representation of the status.
func (s PaymentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s PaymentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s PaymentStatus) Equal(other PaymentStatus) bool { return s.value == other.value }
