package usecase

import (
	"github.com/givebridge/givebridge/internal/application/dto"
	"github.com/givebridge/givebridge/internal/domain/model"
)

func toPaymentResponse(p model.Payment) dto.PaymentResponse {
	resp := dto.PaymentResponse{
		ID:              p.ID(),
		PledgeID:        p.PledgeID(),
		Amount:          p.Amount(),
		Currency:        p.Currency(),
		AmountUSD:       p.AmountUSD(),
		PaymentDate:     p.PaymentDate(),
		Status:          p.Status().String(),
		BonusPercentage: p.BonusPercentage(),
		BonusAmount:     p.BonusAmount(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
	if p.SolicitorID() != nil {
		resp.SolicitorID = *p.SolicitorID()
	}
	if p.BonusRuleID() != nil {
		resp.BonusRuleID = *p.BonusRuleID()
	}
	if p.PaymentPlanID() != nil {
		resp.PaymentPlanID = *p.PaymentPlanID()
	}
	return resp
}

func toCalculationResponse(c model.BonusCalculation) dto.BonusCalculationResponse {
	return dto.BonusCalculationResponse{
		ID:           c.ID(),
		PaymentID:    c.PaymentID(),
		RuleID:       c.RuleID(),
		Percentage:   c.Percentage(),
		Amount:       c.Amount(),
		IsPaid:       c.IsPaid(),
		CalculatedAt: c.CalculatedAt(),
	}
}

func toPlanResponse(p model.PaymentPlan) dto.PaymentPlanResponse {
	resp := dto.PaymentPlanResponse{
		ID:                   p.ID(),
		PledgeID:             p.PledgeID(),
		Frequency:            p.Frequency().String(),
		DistributionType:     p.DistributionType().String(),
		TotalPlannedAmount:   p.TotalPlannedAmount(),
		Currency:             p.Currency(),
		ExchangeRate:         p.ExchangeRate(),
		InstallmentAmount:    p.InstallmentAmount(),
		NumberOfInstallments: p.NumberOfInstallments(),
		StartDate:            p.StartDate(),
		EndDate:              p.EndDate(),
		NextPaymentDate:      p.NextPaymentDate(),
		InstallmentsPaid:     p.InstallmentsPaid(),
		TotalPaid:            p.TotalPaid(),
		RemainingAmount:      p.RemainingAmount(),
		Status:               p.Status().String(),
		CreatedAt:            p.CreatedAt(),
		UpdatedAt:            p.UpdatedAt(),
	}
	for _, e := range p.Schedule() {
		resp.Schedule = append(resp.Schedule, dto.InstallmentEntryResponse{
			Sequence: e.Sequence,
			DueDate:  e.DueDate,
			Amount:   e.Amount,
			Currency: e.Currency,
			Notes:    e.Notes,
		})
	}
	return resp
}
