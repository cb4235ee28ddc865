package salarycalc

import (
	"strings"
	"time"
	"unicode/utf8"

	salarycalcerrors "go-tutorcenter/internal/salarycalc/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var maxAdjustmentAmount = decimal.RequireFromString("999999.99")

type AdjustmentInput struct {
	CalculationID  uuid.UUID
	AdjustmentType string
	Description    string
	Amount         decimal.Decimal
	Actor          uuid.UUID
	At             time.Time
}

// AdjustmentLedger holds manual additions and deductions in insertion order.
// Add and Remove never modify the receiver.
type AdjustmentLedger []SalaryAdjustment

func (l AdjustmentLedger) Add(in AdjustmentInput) (AdjustmentLedger, SalaryAdjustment, error) {
	description, err := ValidateAdjustment(in.AdjustmentType, in.Description, in.Amount)
	if err != nil {
		return l, SalaryAdjustment{}, err
	}

	adj := SalaryAdjustment{
		ID:             uuid.New(),
		CalculationID:  in.CalculationID,
		AdjustmentType: in.AdjustmentType,
		Description:    description,
		Amount:         in.Amount,
		CreatedBy:      in.Actor,
		CreatedAt:      in.At,
	}

	next := make(AdjustmentLedger, 0, len(l)+1)
	next = append(next, l...)
	next = append(next, adj)
	return next, adj, nil
}

func (l AdjustmentLedger) Remove(id uuid.UUID) (AdjustmentLedger, SalaryAdjustment, error) {
	for i, adj := range l {
		if adj.ID != id {
			continue
		}
		next := make(AdjustmentLedger, 0, len(l)-1)
		next = append(next, l[:i]...)
		next = append(next, l[i+1:]...)
		return next, adj, nil
	}
	return l, SalaryAdjustment{}, salarycalcerrors.ErrAdjustmentNotFound
}

func (l AdjustmentLedger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, adj := range l {
		total = total.Add(adj.SignedAmount())
	}
	return total
}

// ValidateAdjustment checks an adjustment and returns the trimmed description.
func ValidateAdjustment(adjustmentType, description string, amount decimal.Decimal) (string, error) {
	if adjustmentType != AdjustmentAddition && adjustmentType != AdjustmentDeduction {
		return "", salarycalcerrors.ErrInvalidAdjustmentType
	}

	description = strings.TrimSpace(description)
	if n := utf8.RuneCountInString(description); n < 3 || n > 200 {
		return "", salarycalcerrors.ErrInvalidAdjustmentDescription
	}

	if !amount.IsPositive() || amount.GreaterThan(maxAdjustmentAmount) || !hasMoneyPrecision(amount) {
		return "", salarycalcerrors.ErrInvalidAdjustmentAmount
	}

	return description, nil
}

func hasMoneyPrecision(v decimal.Decimal) bool {
	return v.Equal(v.Round(2))
}
