package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/givebridge/givebridge/internal/apperror"
)

// ---------------------------------------------------------------------------
// Pledge aggregate root
// ---------------------------------------------------------------------------

// Pledge is the funding commitment that payments reduce. It carries running
// totals in the pledge currency and their USD mirrors, converted with the
// pledge's exchange rate. balance = originalAmount - totalPaid holds at all
// times, and the USD fields mirror the same identity.
type Pledge struct {
	id                string
	donorID           string
	categoryID        string
	currency          string
	exchangeRate      decimal.Decimal // pledge currency -> USD
	originalAmount    decimal.Decimal
	totalPaid         decimal.Decimal
	balance           decimal.Decimal
	originalAmountUSD decimal.Decimal
	totalPaidUSD      decimal.Decimal
	balanceUSD        decimal.Decimal
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

// ReconstructPledge rebuilds a Pledge aggregate from persistence.
func ReconstructPledge(
	id, donorID, categoryID, currency string,
	exchangeRate decimal.Decimal,
	originalAmount, totalPaid, balance decimal.Decimal,
	originalAmountUSD, totalPaidUSD, balanceUSD decimal.Decimal,
	version int,
	createdAt, updatedAt time.Time,
) Pledge {
	return Pledge{
		id:                id,
		donorID:           donorID,
		categoryID:        categoryID,
		currency:          currency,
		exchangeRate:      exchangeRate,
		originalAmount:    originalAmount,
		totalPaid:         totalPaid,
		balance:           balance,
		originalAmountUSD: originalAmountUSD,
		totalPaidUSD:      totalPaidUSD,
		balanceUSD:        balanceUSD,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// ApplyPayment adds a paid amount to the running totals. The balance is
// recomputed from the identity rather than decremented, so repeated
// applications cannot drift.
func (p Pledge) ApplyPayment(amount decimal.Decimal, now time.Time) (Pledge, error) {
	if !amount.IsPositive() {
		return p, apperror.Validation("amount", "payment amount must be positive")
	}

	next := p
	next.totalPaid = p.totalPaid.Add(amount)
	next.balance = p.originalAmount.Sub(next.totalPaid)
	next.totalPaidUSD = next.totalPaid.Mul(p.exchangeRate).Round(2)
	next.balanceUSD = p.originalAmountUSD.Sub(next.totalPaidUSD)
	next.updatedAt = now
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (p Pledge) ID() string                         { return p.id }
func (p Pledge) DonorID() string                    { return p.donorID }
func (p Pledge) CategoryID() string                 { return p.categoryID }
func (p Pledge) Currency() string                   { return p.currency }
func (p Pledge) ExchangeRate() decimal.Decimal      { return p.exchangeRate }
func (p Pledge) OriginalAmount() decimal.Decimal    { return p.originalAmount }
func (p Pledge) TotalPaid() decimal.Decimal         { return p.totalPaid }
func (p Pledge) Balance() decimal.Decimal           { return p.balance }
func (p Pledge) OriginalAmountUSD() decimal.Decimal { return p.originalAmountUSD }
func (p Pledge) TotalPaidUSD() decimal.Decimal      { return p.totalPaidUSD }
func (p Pledge) BalanceUSD() decimal.Decimal        { return p.balanceUSD }
func (p Pledge) Version() int                       { return p.version }
func (p Pledge) CreatedAt() time.Time               { return p.createdAt }
func (p Pledge) UpdatedAt() time.Time               { return p.updatedAt }

// ---------------------------------------------------------------------------
// Category
// ---------------------------------------------------------------------------

// Category is the read-only classification record a pledge points at.
type Category struct {
	ID   string
	Name string
}
