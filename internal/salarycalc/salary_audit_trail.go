package salarycalc

import (
	"strings"
	"time"

	salarycalcerrors "go-tutorcenter/internal/salarycalc/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuditEntry struct {
	CalculationID  uuid.UUID
	Action         string
	PreviousAmount *decimal.Decimal
	NewAmount      *decimal.Decimal
	Reason         string
	Actor          uuid.UUID
	At             time.Time
}

// AuditTrail is append-only. Record returns a new trail and leaves the
// receiver and its entries untouched.
type AuditTrail []SalaryAuditLog

func (t AuditTrail) Record(entry AuditEntry) (AuditTrail, SalaryAuditLog, error) {
	if !isKnownAction(entry.Action) {
		return t, SalaryAuditLog{}, salarycalcerrors.ErrUnknownAuditAction
	}

	reason := strings.TrimSpace(entry.Reason)
	switch entry.Action {
	case ActionReopened:
		if reason == "" {
			return t, SalaryAuditLog{}, salarycalcerrors.ErrReopenReasonRequired
		}
	case ActionApproved:
		if !amountsEqual(entry.PreviousAmount, entry.NewAmount) && reason == "" {
			return t, SalaryAuditLog{}, salarycalcerrors.ErrApprovalReasonRequired
		}
	default:
		reason = ""
	}

	log := SalaryAuditLog{
		ID:             uuid.New(),
		CalculationID:  entry.CalculationID,
		Sequence:       len(t) + 1,
		Action:         entry.Action,
		PreviousAmount: copyAmount(entry.PreviousAmount),
		NewAmount:      copyAmount(entry.NewAmount),
		CreatedBy:      entry.Actor,
		CreatedAt:      entry.At,
	}
	if reason != "" {
		log.Reason = &reason
	}

	next := make(AuditTrail, 0, len(t)+1)
	next = append(next, t...)
	next = append(next, log)
	return next, log, nil
}

// Entries returns the trail in insertion order.
func (t AuditTrail) Entries() []SalaryAuditLog {
	out := make([]SalaryAuditLog, len(t))
	copy(out, t)
	return out
}

// History returns the trail newest first.
func (t AuditTrail) History() []SalaryAuditLog {
	out := make([]SalaryAuditLog, len(t))
	for i, log := range t {
		out[len(t)-1-i] = log
	}
	return out
}

func isKnownAction(action string) bool {
	switch action {
	case ActionCreated, ActionApproved, ActionAdjusted, ActionReopened,
		ActionRecalculated, ActionAdjustmentAdded, ActionAdjustmentRemoved:
		return true
	}
	return false
}

func amountsEqual(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func copyAmount(v *decimal.Decimal) *decimal.Decimal {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
