package usecase_test

import (
	"context"
	"fmt"

	"github.com/givebridge/givebridge/internal/apperror"
	"github.com/givebridge/givebridge/internal/domain/event"
	"github.com/givebridge/givebridge/internal/domain/model"
)

// --- Mock implementations ---

type replacedBonusState struct {
	payment model.Payment
	calc    *model.BonusCalculation
}

type mockPaymentRepository struct {
	saveFunc        func(ctx context.Context, payment model.Payment) error
	findByIDFunc    func(ctx context.Context, id string) (model.Payment, error)
	replaceFunc     func(ctx context.Context, payment model.Payment, calc *model.BonusCalculation) error
	deleteFunc      func(ctx context.Context, payment model.Payment) error
	savedPayments   []model.Payment
	replacedStates  []replacedBonusState
	deletedPayments []model.Payment
}

func (m *mockPaymentRepository) Save(ctx context.Context, payment model.Payment) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, payment)
	}
	m.savedPayments = append(m.savedPayments, payment)
	return nil
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, id string) (model.Payment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Payment{}, apperror.NotFound("payment", id)
}

func (m *mockPaymentRepository) ReplaceBonusState(ctx context.Context, payment model.Payment, calc *model.BonusCalculation) error {
	if m.replaceFunc != nil {
		return m.replaceFunc(ctx, payment, calc)
	}
	m.replacedStates = append(m.replacedStates, replacedBonusState{payment: payment, calc: calc})
	return nil
}

func (m *mockPaymentRepository) Delete(ctx context.Context, payment model.Payment) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, payment)
	}
	m.deletedPayments = append(m.deletedPayments, payment)
	return nil
}

type mockBonusCalculationRepository struct {
	findByPaymentIDFunc func(ctx context.Context, paymentID string) (*model.BonusCalculation, error)
}

func (m *mockBonusCalculationRepository) FindByPaymentID(ctx context.Context, paymentID string) (*model.BonusCalculation, error) {
	if m.findByPaymentIDFunc != nil {
		return m.findByPaymentIDFunc(ctx, paymentID)
	}
	return nil, nil
}

type mockBonusRuleRepository struct {
	findActiveFunc func(ctx context.Context, solicitorID string) ([]model.BonusRule, error)
	findByIDFunc   func(ctx context.Context, id string) (model.BonusRule, error)
}

func (m *mockBonusRuleRepository) Save(_ context.Context, _ model.BonusRule) error {
	return nil
}

func (m *mockBonusRuleRepository) FindByID(ctx context.Context, id string) (model.BonusRule, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.BonusRule{}, apperror.NotFound("bonus rule", id)
}

func (m *mockBonusRuleRepository) FindActiveBySolicitor(ctx context.Context, solicitorID string) ([]model.BonusRule, error) {
	if m.findActiveFunc != nil {
		return m.findActiveFunc(ctx, solicitorID)
	}
	return nil, nil
}

type mockPledgeRepository struct {
	findByIDFunc func(ctx context.Context, id string) (model.Pledge, error)
	savedPledges []model.Pledge
}

func (m *mockPledgeRepository) Save(_ context.Context, pledge model.Pledge) error {
	m.savedPledges = append(m.savedPledges, pledge)
	return nil
}

func (m *mockPledgeRepository) FindByID(ctx context.Context, id string) (model.Pledge, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Pledge{}, apperror.NotFound("pledge", id)
}

type mockCategoryRepository struct {
	findByIDFunc func(ctx context.Context, id string) (model.Category, error)
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id string) (model.Category, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Category{ID: id, Name: "General Donations"}, nil
}

type mockPaymentPlanRepository struct {
	createFunc          func(ctx context.Context, plan model.PaymentPlan) error
	addInstallmentsFunc func(ctx context.Context, planID string, entries []model.InstallmentEntry) error
	deleteFunc          func(ctx context.Context, planID string) error
	saveFunc            func(ctx context.Context, plan model.PaymentPlan) error
	findByIDFunc        func(ctx context.Context, id string) (model.PaymentPlan, error)
	createdPlans        []model.PaymentPlan
	addedInstallments   map[string][]model.InstallmentEntry
	deletedPlanIDs      []string
	savedPlans          []model.PaymentPlan
}

func (m *mockPaymentPlanRepository) Create(ctx context.Context, plan model.PaymentPlan) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, plan)
	}
	m.createdPlans = append(m.createdPlans, plan)
	return nil
}

func (m *mockPaymentPlanRepository) AddInstallments(ctx context.Context, planID string, entries []model.InstallmentEntry) error {
	if m.addInstallmentsFunc != nil {
		return m.addInstallmentsFunc(ctx, planID, entries)
	}
	if m.addedInstallments == nil {
		m.addedInstallments = make(map[string][]model.InstallmentEntry)
	}
	m.addedInstallments[planID] = entries
	return nil
}

func (m *mockPaymentPlanRepository) Delete(ctx context.Context, planID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, planID)
	}
	m.deletedPlanIDs = append(m.deletedPlanIDs, planID)
	return nil
}

func (m *mockPaymentPlanRepository) Save(ctx context.Context, plan model.PaymentPlan) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, plan)
	}
	m.savedPlans = append(m.savedPlans, plan)
	return nil
}

func (m *mockPaymentPlanRepository) FindByID(ctx context.Context, id string) (model.PaymentPlan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.PaymentPlan{}, apperror.NotFound("payment plan", id)
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

var errDatabaseDown = fmt.Errorf("database unavailable")
