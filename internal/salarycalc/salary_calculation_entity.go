package salarycalc

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusReopened = "reopened"
)

const (
	AdjustmentAddition  = "addition"
	AdjustmentDeduction = "deduction"
)

const (
	ActionCreated           = "created"
	ActionApproved          = "approved"
	ActionAdjusted          = "adjusted"
	ActionReopened          = "reopened"
	ActionRecalculated      = "recalculated"
	ActionAdjustmentAdded   = "adjustment_added"
	ActionAdjustmentRemoved = "adjustment_removed"
)

type SalaryCalculation struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID `gorm:"type:uuid;not null;index:idx_salary_calc_company_status;uniqueIndex:idx_salary_calc_reference"`
	TeacherID       uuid.UUID `gorm:"type:uuid;not null;index:idx_salary_calc_teacher_period"`
	ReferenceNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_salary_calc_reference"`
	AcademicPeriod  string    `gorm:"type:varchar(40);not null"`

	PeriodStart time.Time `gorm:"type:date;not null;index:idx_salary_calc_teacher_period"`
	PeriodEnd   time.Time `gorm:"type:date;not null;index:idx_salary_calc_teacher_period"`

	// Semua nominal disimpan numeric(12,2), dihitung dengan decimal.
	BaseSalaryAmount decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	CalculatedAmount decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	ApprovedAmount   *decimal.Decimal `gorm:"type:numeric(12,2)"`

	Status     string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_salary_calc_company_status"`
	ApprovedAt *time.Time `gorm:"index"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`

	Warnings datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	StatementPDF         []byte     `gorm:"type:bytea"`
	StatementGeneratedAt *time.Time `gorm:"index"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items       []SalaryCalculationItem `gorm:"foreignKey:CalculationID"`
	Adjustments []SalaryAdjustment      `gorm:"foreignKey:CalculationID"`
	AuditLogs   []SalaryAuditLog        `gorm:"foreignKey:CalculationID"`
}

type SalaryCalculationItem struct {
	ID                   uuid.UUID                        `gorm:"type:uuid;primaryKey"`
	CalculationID        uuid.UUID                        `gorm:"type:uuid;not null;index"`
	Position             int                              `gorm:"not null;default:0"`
	ClassID              uuid.UUID                        `gorm:"type:uuid;not null;index"`
	ClassName            string                           `gorm:"type:varchar(120);not null"`
	LessonsCount         int                              `gorm:"not null;default:0"`
	ActiveStudents       int                              `gorm:"not null;default:0"`
	RateApplied          decimal.Decimal                  `gorm:"type:numeric(12,2);not null"`
	Amount               decimal.Decimal                  `gorm:"type:numeric(12,2);not null"`
	RuleSnapshot         datatypes.JSONType[RuleSnapshot] `gorm:"type:jsonb;not null"`
	StudentCountAtLesson *int
	CreatedAt            time.Time
}

// RuleSnapshot is the rate rule frozen at calculation time.
type RuleSnapshot struct {
	RuleID        string          `json:"rule_id,omitempty"`
	MinStudents   int             `json:"min_students"`
	RatePerLesson decimal.Decimal `json:"rate_per_lesson"`
	EffectiveFrom string          `json:"effective_from"`
}

type SalaryAdjustment struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CalculationID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	AdjustmentType string          `gorm:"type:varchar(20);not null"`
	Description    string          `gorm:"type:varchar(200);not null"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedBy      uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
}

// SignedAmount returns the contribution to the calculation total.
func (a SalaryAdjustment) SignedAmount() decimal.Decimal {
	if a.AdjustmentType == AdjustmentDeduction {
		return a.Amount.Neg()
	}
	return a.Amount
}

type SalaryAuditLog struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CalculationID  uuid.UUID        `gorm:"type:uuid;not null;index:idx_salary_audit_sequence,unique"`
	Sequence       int              `gorm:"not null;index:idx_salary_audit_sequence,unique"`
	Action         string           `gorm:"type:varchar(30);not null"`
	PreviousAmount *decimal.Decimal `gorm:"type:numeric(12,2)"`
	NewAmount      *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Reason         *string          `gorm:"type:varchar(500)"`
	CreatedBy      uuid.UUID        `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
}
