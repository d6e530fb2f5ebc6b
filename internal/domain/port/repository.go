package port

import (
	"context"

	"github.com/givebridge/givebridge/internal/domain/event"
	"github.com/givebridge/givebridge/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// BonusRuleRepository retrieves solicitor commission rules.
type BonusRuleRepository interface {
	Save(ctx context.Context, rule model.BonusRule) error
	FindByID(ctx context.Context, id string) (model.BonusRule, error)
	// FindActiveBySolicitor returns every active rule for a solicitor, in no
	// particular order; the matcher resolves precedence.
	FindActiveBySolicitor(ctx context.Context, solicitorID string) ([]model.BonusRule, error)
}

// PaymentRepository persists and retrieves payments.
type PaymentRepository interface {
	Save(ctx context.Context, payment model.Payment) error
	FindByID(ctx context.Context, id string) (model.Payment, error)
	// ReplaceBonusState atomically writes the payment's bonus projection and
	// replaces its bonus calculation row in one transaction. A nil calc
	// deletes the existing row without inserting a successor.
	ReplaceBonusState(ctx context.Context, payment model.Payment, calc *model.BonusCalculation) error
	// Delete removes the payment together with its bonus calculation.
	Delete(ctx context.Context, payment model.Payment) error
}

// BonusCalculationRepository reads bonus calculation snapshots.
type BonusCalculationRepository interface {
	// FindByPaymentID returns the payment's single calculation, or nil when
	// the payment has none.
	FindByPaymentID(ctx context.Context, paymentID string) (*model.BonusCalculation, error)
}

// PledgeRepository persists and retrieves pledges.
type PledgeRepository interface {
	Save(ctx context.Context, pledge model.Pledge) error
	FindByID(ctx context.Context, id string) (model.Pledge, error)
}

// CategoryRepository reads pledge categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (model.Category, error)
}

// PaymentPlanRepository persists and retrieves payment plans. Create and
// AddInstallments are separate writes on purpose: the use case compensates
// with Delete when the second write fails.
type PaymentPlanRepository interface {
	Create(ctx context.Context, plan model.PaymentPlan) error
	AddInstallments(ctx context.Context, planID string, entries []model.InstallmentEntry) error
	Delete(ctx context.Context, planID string) error
	Save(ctx context.Context, plan model.PaymentPlan) error
	FindByID(ctx context.Context, id string) (model.PaymentPlan, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
