package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentSpec is one caller-supplied installment in a custom plan
// request, before validation.
type InstallmentSpec struct {
	Date   time.Time
	Amount decimal.Decimal
	Notes  string
}

// InstallmentEntry is an immutable value object representing one persisted
// installment of a custom plan. Entries are owned exclusively by their plan
// and are cascade-deleted with it. The currency is inherited from the plan.
type InstallmentEntry struct {
	Sequence int
	DueDate  time.Time
	Amount   decimal.Decimal
	Currency string
	Notes    string
}
