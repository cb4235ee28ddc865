package salarycalc

import (
	"time"

	"github.com/shopspring/decimal"
)

func mapToSummaryResponse(calc *SalaryCalculation) CalculationSummaryResponse {
	resp := CalculationSummaryResponse{
		ID:               calc.ID.String(),
		ReferenceNumber:  calc.ReferenceNumber,
		CompanyID:        calc.CompanyID.String(),
		TeacherID:        calc.TeacherID.String(),
		AcademicPeriod:   calc.AcademicPeriod,
		PeriodStart:      calc.PeriodStart.Format(dateLayout),
		PeriodEnd:        calc.PeriodEnd.Format(dateLayout),
		BaseSalaryAmount: calc.BaseSalaryAmount.StringFixed(2),
		CalculatedAmount: calc.CalculatedAmount.StringFixed(2),
		ApprovedAmount:   formatAmountPtr(calc.ApprovedAmount),
		Status:           calc.Status,
		CreatedBy:        calc.CreatedBy.String(),
		CreatedAt:        calc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        calc.UpdatedAt.Format(time.RFC3339),
	}

	if calc.ApprovedAt != nil {
		v := calc.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if calc.ApprovedBy != nil {
		v := calc.ApprovedBy.String()
		resp.ApprovedBy = &v
	}

	return resp
}

func mapToSummaryList(calcs []SalaryCalculation) []CalculationSummaryResponse {
	resp := make([]CalculationSummaryResponse, len(calcs))
	for i := range calcs {
		resp[i] = mapToSummaryResponse(&calcs[i])
	}
	return resp
}

func mapToDetailResponse(calc *SalaryCalculation) CalculationDetailResponse {
	resp := CalculationDetailResponse{
		CalculationSummaryResponse: mapToSummaryResponse(calc),
		ItemsTotal:                 calc.ItemsTotal().StringFixed(2),
		AdjustmentsTotal:           calc.AdjustmentsTotal().StringFixed(2),
		Items:                      make([]ItemResponse, len(calc.Items)),
		Adjustments:                make([]AdjustmentResponse, len(calc.Adjustments)),
		AuditLogs:                  mapToAuditLogList(calc.History()),
		Warnings:                   copyWarnings(calc.Warnings),
		HasStatement:               len(calc.StatementPDF) > 0,
	}

	for i, item := range calc.Items {
		snapshot := item.RuleSnapshot.Data()
		resp.Items[i] = ItemResponse{
			ID:                   item.ID.String(),
			ClassID:              item.ClassID.String(),
			ClassName:            item.ClassName,
			LessonsCount:         item.LessonsCount,
			ActiveStudents:       item.ActiveStudents,
			RateApplied:          item.RateApplied.StringFixed(2),
			Amount:               item.Amount.StringFixed(2),
			StudentCountAtLesson: item.StudentCountAtLesson,
			RuleSnapshot: RuleSnapshotResponse{
				RuleID:        snapshot.RuleID,
				MinStudents:   snapshot.MinStudents,
				RatePerLesson: snapshot.RatePerLesson.StringFixed(2),
				EffectiveFrom: snapshot.EffectiveFrom,
			},
		}
	}

	for i, adj := range calc.Adjustments {
		resp.Adjustments[i] = AdjustmentResponse{
			ID:             adj.ID.String(),
			AdjustmentType: adj.AdjustmentType,
			Description:    adj.Description,
			Amount:         adj.Amount.StringFixed(2),
			CreatedBy:      adj.CreatedBy.String(),
			CreatedAt:      adj.CreatedAt.Format(time.RFC3339),
		}
	}

	return resp
}

func mapToAuditLogList(logs []SalaryAuditLog) []AuditLogResponse {
	resp := make([]AuditLogResponse, len(logs))
	for i, log := range logs {
		resp[i] = AuditLogResponse{
			ID:             log.ID.String(),
			Sequence:       log.Sequence,
			Action:         log.Action,
			PreviousAmount: formatAmountPtr(log.PreviousAmount),
			NewAmount:      formatAmountPtr(log.NewAmount),
			Reason:         log.Reason,
			CreatedBy:      log.CreatedBy.String(),
			CreatedAt:      log.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp
}

func formatAmountPtr(v *decimal.Decimal) *string {
	if v == nil {
		return nil
	}
	s := v.StringFixed(2)
	return &s
}
