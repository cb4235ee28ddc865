package salarycalc

import (
	"strings"
	"time"
	"unicode/utf8"

	salarycalcerrors "go-tutorcenter/internal/salarycalc/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	minOverrideReasonLength = 10
	maxReasonLength         = 500
)

type NewCalculationParams struct {
	CompanyID        uuid.UUID
	TeacherID        uuid.UUID
	ReferenceNumber  string
	AcademicPeriod   string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	BaseSalaryAmount decimal.Decimal
	CreatedBy        uuid.UUID
}

// NewSalaryCalculation builds a pending calculation from a breakdown and
// records the created entry.
func NewSalaryCalculation(p NewCalculationParams, b Breakdown, now time.Time) (*SalaryCalculation, error) {
	if p.PeriodStart.After(p.PeriodEnd) {
		return nil, salarycalcerrors.ErrInvalidDateRange
	}
	if p.BaseSalaryAmount.IsNegative() || !hasMoneyPrecision(p.BaseSalaryAmount) {
		return nil, salarycalcerrors.ErrInvalidBaseSalary
	}

	calc := &SalaryCalculation{
		ID:               uuid.New(),
		CompanyID:        p.CompanyID,
		TeacherID:        p.TeacherID,
		ReferenceNumber:  p.ReferenceNumber,
		AcademicPeriod:   p.AcademicPeriod,
		PeriodStart:      p.PeriodStart,
		PeriodEnd:        p.PeriodEnd,
		BaseSalaryAmount: p.BaseSalaryAmount,
		Status:           StatusPending,
		CreatedBy:        p.CreatedBy,
		CreatedAt:        now,
		UpdatedAt:        now,
		Adjustments:      []SalaryAdjustment{},
		AuditLogs:        []SalaryAuditLog{},
	}

	calc.Items = calc.stampItems(b.Items, now)
	calc.Warnings = datatypes.NewJSONSlice(copyWarnings(b.Warnings))
	calc.CalculatedAmount = calc.computeTotal(calc.Items, calc.BaseSalaryAmount, calc.ledger())

	total := calc.CalculatedAmount
	trail, _, err := calc.trail().Record(AuditEntry{
		CalculationID: calc.ID,
		Action:        ActionCreated,
		NewAmount:     &total,
		Actor:         p.CreatedBy,
		At:            now,
	})
	if err != nil {
		return nil, err
	}
	calc.AuditLogs = trail

	return calc, nil
}

// IsEditable reports whether items, adjustments and base salary may change.
func (c *SalaryCalculation) IsEditable() bool {
	return c.Status == StatusPending || c.Status == StatusReopened
}

func (c *SalaryCalculation) ItemsTotal() decimal.Decimal {
	return sumItems(c.Items)
}

func (c *SalaryCalculation) AdjustmentsTotal() decimal.Decimal {
	return c.ledger().Total()
}

// ExpectedTotal recomputes the calculated amount from its parts.
func (c *SalaryCalculation) ExpectedTotal() decimal.Decimal {
	return c.computeTotal(c.Items, c.BaseSalaryAmount, c.ledger())
}

// History returns audit entries newest first.
func (c *SalaryCalculation) History() []SalaryAuditLog {
	return c.trail().History()
}

func (c *SalaryCalculation) Approve(amount decimal.Decimal, reason string, actor uuid.UUID, now time.Time) error {
	if !c.IsEditable() {
		return salarycalcerrors.ErrApproveNotAllowed
	}
	if amount.IsNegative() || !hasMoneyPrecision(amount) {
		return salarycalcerrors.ErrInvalidApprovedAmount
	}

	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) > maxReasonLength {
		return salarycalcerrors.ErrReasonTooLong
	}
	calculated := c.CalculatedAmount
	if !amount.Equal(calculated) && utf8.RuneCountInString(reason) < minOverrideReasonLength {
		return salarycalcerrors.ErrApprovalReasonRequired
	}

	trail, _, err := c.trail().Record(AuditEntry{
		CalculationID:  c.ID,
		Action:         ActionApproved,
		PreviousAmount: &calculated,
		NewAmount:      &amount,
		Reason:         reason,
		Actor:          actor,
		At:             now,
	})
	if err != nil {
		return err
	}

	approvedAt := now
	approvedBy := actor
	c.AuditLogs = trail
	c.Status = StatusApproved
	c.ApprovedAmount = &amount
	c.ApprovedAt = &approvedAt
	c.ApprovedBy = &approvedBy
	c.UpdatedAt = now
	return nil
}

// Reopen moves an approved calculation back to an editable state. The
// approved amount is kept for reference.
func (c *SalaryCalculation) Reopen(reason string, actor uuid.UUID, now time.Time) error {
	if c.Status != StatusApproved {
		return salarycalcerrors.ErrReopenNotApproved
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return salarycalcerrors.ErrReopenReasonRequired
	}
	if utf8.RuneCountInString(reason) > maxReasonLength {
		return salarycalcerrors.ErrReasonTooLong
	}

	calculated := c.CalculatedAmount
	trail, _, err := c.trail().Record(AuditEntry{
		CalculationID:  c.ID,
		Action:         ActionReopened,
		PreviousAmount: c.ApprovedAmount,
		NewAmount:      &calculated,
		Reason:         reason,
		Actor:          actor,
		At:             now,
	})
	if err != nil {
		return err
	}

	c.AuditLogs = trail
	c.Status = StatusReopened
	c.UpdatedAt = now
	return nil
}

// Recalculate replaces items and warnings with a fresh breakdown.
func (c *SalaryCalculation) Recalculate(b Breakdown, actor uuid.UUID, now time.Time) error {
	if !c.IsEditable() {
		return salarycalcerrors.ErrRecalculateNotAllowed
	}

	items := c.stampItems(b.Items, now)
	total := c.computeTotal(items, c.BaseSalaryAmount, c.ledger())

	trail, err := c.recordTotalChange(ActionRecalculated, total, actor, now)
	if err != nil {
		return err
	}

	c.AuditLogs = trail
	c.Items = items
	c.Warnings = datatypes.NewJSONSlice(copyWarnings(b.Warnings))
	c.CalculatedAmount = total
	c.UpdatedAt = now
	return nil
}

func (c *SalaryCalculation) AddAdjustment(in AdjustmentInput) (SalaryAdjustment, error) {
	if !c.IsEditable() {
		return SalaryAdjustment{}, salarycalcerrors.ErrAdjustmentNotAllowed
	}

	in.CalculationID = c.ID
	ledger, adj, err := c.ledger().Add(in)
	if err != nil {
		return SalaryAdjustment{}, err
	}

	total := c.computeTotal(c.Items, c.BaseSalaryAmount, ledger)
	trail, err := c.recordTotalChange(ActionAdjustmentAdded, total, in.Actor, in.At)
	if err != nil {
		return SalaryAdjustment{}, err
	}

	c.AuditLogs = trail
	c.Adjustments = ledger
	c.CalculatedAmount = total
	c.UpdatedAt = in.At
	return adj, nil
}

func (c *SalaryCalculation) RemoveAdjustment(id uuid.UUID, actor uuid.UUID, now time.Time) (SalaryAdjustment, error) {
	if !c.IsEditable() {
		return SalaryAdjustment{}, salarycalcerrors.ErrAdjustmentNotAllowed
	}

	ledger, removed, err := c.ledger().Remove(id)
	if err != nil {
		return SalaryAdjustment{}, err
	}

	total := c.computeTotal(c.Items, c.BaseSalaryAmount, ledger)
	trail, err := c.recordTotalChange(ActionAdjustmentRemoved, total, actor, now)
	if err != nil {
		return SalaryAdjustment{}, err
	}

	c.AuditLogs = trail
	c.Adjustments = ledger
	c.CalculatedAmount = total
	c.UpdatedAt = now
	return removed, nil
}

func (c *SalaryCalculation) UpdateBaseSalary(amount decimal.Decimal, actor uuid.UUID, now time.Time) error {
	if !c.IsEditable() {
		return salarycalcerrors.ErrBaseSalaryNotAllowed
	}
	if amount.IsNegative() || !hasMoneyPrecision(amount) {
		return salarycalcerrors.ErrInvalidBaseSalary
	}

	total := c.computeTotal(c.Items, amount, c.ledger())
	trail, err := c.recordTotalChange(ActionAdjusted, total, actor, now)
	if err != nil {
		return err
	}

	c.AuditLogs = trail
	c.BaseSalaryAmount = amount
	c.CalculatedAmount = total
	c.UpdatedAt = now
	return nil
}

func (c *SalaryCalculation) recordTotalChange(action string, total decimal.Decimal, actor uuid.UUID, now time.Time) (AuditTrail, error) {
	prev := c.CalculatedAmount
	trail, _, err := c.trail().Record(AuditEntry{
		CalculationID:  c.ID,
		Action:         action,
		PreviousAmount: &prev,
		NewAmount:      &total,
		Actor:          actor,
		At:             now,
	})
	return trail, err
}

func (c *SalaryCalculation) computeTotal(items []SalaryCalculationItem, base decimal.Decimal, ledger AdjustmentLedger) decimal.Decimal {
	return sumItems(items).Add(base).Add(ledger.Total()).Round(2)
}

func (c *SalaryCalculation) stampItems(items []SalaryCalculationItem, now time.Time) []SalaryCalculationItem {
	out := make([]SalaryCalculationItem, len(items))
	for i, item := range items {
		item.ID = uuid.New()
		item.CalculationID = c.ID
		item.Position = i + 1
		item.CreatedAt = now
		out[i] = item
	}
	return out
}

func (c *SalaryCalculation) ledger() AdjustmentLedger {
	return AdjustmentLedger(c.Adjustments)
}

func (c *SalaryCalculation) trail() AuditTrail {
	return AuditTrail(c.AuditLogs)
}

func copyWarnings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
