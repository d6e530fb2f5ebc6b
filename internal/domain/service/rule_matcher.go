package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/givebridge/givebridge/internal/domain/model"
)

// MatchQuery carries the payment attributes a rule is matched against.
type MatchQuery struct {
	AmountUSD   decimal.Decimal
	PaymentDate time.Time
	IsDonation  bool
}

// RuleMatcher selects the single bonus rule that governs a payment.
type RuleMatcher struct{}

// NewRuleMatcher creates a RuleMatcher.
func NewRuleMatcher() *RuleMatcher {
	return &RuleMatcher{}
}

// BestMatch returns the winning rule among the candidates, or nil when no
// rule applies. Ties are broken deterministically: highest priority wins,
// then the most recently created rule, then the lexicographically greatest
// rule ID so equal-priority same-instant rules still order totally.
func (m *RuleMatcher) BestMatch(rules []model.BonusRule, q MatchQuery) *model.BonusRule {
	var best *model.BonusRule
	for i := range rules {
		r := &rules[i]
		if !r.AppliesTo(q.AmountUSD, q.PaymentDate, q.IsDonation) {
			continue
		}
		if best == nil || beats(r, best) {
			best = r
		}
	}
	if best == nil {
		return nil
	}
	winner := *best
	return &winner
}

func beats(a, b *model.BonusRule) bool {
	if a.Priority() != b.Priority() {
		return a.Priority() > b.Priority()
	}
	if !a.CreatedAt().Equal(b.CreatedAt()) {
		return a.CreatedAt().After(b.CreatedAt())
	}
	return a.ID() > b.ID()
}
