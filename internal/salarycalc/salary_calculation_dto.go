package salarycalc

import "github.com/shopspring/decimal"

type GenerateCalculationRequest struct {
	PeriodStart      string           `json:"period_start" binding:"required"`
	PeriodEnd        string           `json:"period_end" binding:"required"`
	AcademicPeriod   string           `json:"academic_period" binding:"required,max=40"`
	BaseSalaryAmount *decimal.Decimal `json:"base_salary_amount"`
}

type ApproveCalculationRequest struct {
	ApprovedAmount   *decimal.Decimal `json:"approved_amount" binding:"required"`
	AdjustmentReason string           `json:"adjustment_reason" binding:"max=500"`
}

type ReopenCalculationRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type UpdateBaseSalaryRequest struct {
	BaseSalaryAmount *decimal.Decimal `json:"base_salary_amount" binding:"required"`
}

type AddAdjustmentRequest struct {
	AdjustmentType string           `json:"adjustment_type" binding:"required,oneof=addition deduction"`
	Description    string           `json:"description" binding:"required,min=3,max=200"`
	Amount         *decimal.Decimal `json:"amount" binding:"required"`
}

type ListCalculationsFilter struct {
	Status string `form:"status"`
}

type ExportCalculationsFilter struct {
	Status     string `form:"status"`
	PeriodFrom string `form:"period_from"`
	PeriodTo   string `form:"period_to"`
}

type CalculationSummaryResponse struct {
	ID               string  `json:"id"`
	ReferenceNumber  string  `json:"reference_number"`
	CompanyID        string  `json:"company_id"`
	TeacherID        string  `json:"teacher_id"`
	AcademicPeriod   string  `json:"academic_period"`
	PeriodStart      string  `json:"period_start"`
	PeriodEnd        string  `json:"period_end"`
	BaseSalaryAmount string  `json:"base_salary_amount"`
	CalculatedAmount string  `json:"calculated_amount"`
	ApprovedAmount   *string `json:"approved_amount"`
	Status           string  `json:"status"`
	ApprovedAt       *string `json:"approved_at"`
	ApprovedBy       *string `json:"approved_by"`
	CreatedBy        string  `json:"created_by"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type CalculationDetailResponse struct {
	CalculationSummaryResponse
	ItemsTotal       string               `json:"items_total"`
	AdjustmentsTotal string               `json:"adjustments_total"`
	Items            []ItemResponse       `json:"items"`
	Adjustments      []AdjustmentResponse `json:"adjustments"`
	AuditLogs        []AuditLogResponse   `json:"audit_logs"`
	Warnings         []string             `json:"warnings"`
	HasStatement     bool                 `json:"has_statement"`
}

type ItemResponse struct {
	ID                   string               `json:"id"`
	ClassID              string               `json:"class_id"`
	ClassName            string               `json:"class_name"`
	LessonsCount         int                  `json:"lessons_count"`
	ActiveStudents       int                  `json:"active_students"`
	RateApplied          string               `json:"rate_applied"`
	Amount               string               `json:"amount"`
	StudentCountAtLesson *int                 `json:"student_count_at_lesson"`
	RuleSnapshot         RuleSnapshotResponse `json:"rule_snapshot"`
}

type RuleSnapshotResponse struct {
	RuleID        string `json:"rule_id,omitempty"`
	MinStudents   int    `json:"min_students"`
	RatePerLesson string `json:"rate_per_lesson"`
	EffectiveFrom string `json:"effective_from"`
}

type AdjustmentResponse struct {
	ID             string `json:"id"`
	AdjustmentType string `json:"adjustment_type"`
	Description    string `json:"description"`
	Amount         string `json:"amount"`
	CreatedBy      string `json:"created_by"`
	CreatedAt      string `json:"created_at"`
}

type AuditLogResponse struct {
	ID             string  `json:"id"`
	Sequence       int     `json:"sequence"`
	Action         string  `json:"action"`
	PreviousAmount *string `json:"previous_amount"`
	NewAmount      *string `json:"new_amount"`
	Reason         *string `json:"reason"`
	CreatedBy      string  `json:"created_by"`
	CreatedAt      string  `json:"created_at"`
}

type Statement struct {
	Filename string
	Data     []byte
}
