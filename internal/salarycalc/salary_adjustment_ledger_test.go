package salarycalc_test

import (
	"strings"
	"testing"

	"go-tutorcenter/internal/salarycalc"
	salarycalcerrors "go-tutorcenter/internal/salarycalc/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAdjustment(t *testing.T) {
	tests := []struct {
		name        string
		adjType     string
		description string
		amount      string
		wantErr     error
		wantDesc    string
	}{
		{name: "addition", adjType: salarycalc.AdjustmentAddition, description: "bonus", amount: "100", wantDesc: "bonus"},
		{name: "trims description", adjType: salarycalc.AdjustmentDeduction, description: "  late fee  ", amount: "0.01", wantDesc: "late fee"},
		{name: "max amount", adjType: salarycalc.AdjustmentAddition, description: "bonus", amount: "999999.99", wantDesc: "bonus"},
		{name: "unknown type", adjType: "bonus", description: "bonus", amount: "100", wantErr: salarycalcerrors.ErrInvalidAdjustmentType},
		{name: "short description", adjType: salarycalc.AdjustmentAddition, description: "  ab ", amount: "100", wantErr: salarycalcerrors.ErrInvalidAdjustmentDescription},
		{name: "long description", adjType: salarycalc.AdjustmentAddition, description: strings.Repeat("a", 201), amount: "100", wantErr: salarycalcerrors.ErrInvalidAdjustmentDescription},
		{name: "zero amount", adjType: salarycalc.AdjustmentAddition, description: "bonus", amount: "0", wantErr: salarycalcerrors.ErrInvalidAdjustmentAmount},
		{name: "negative amount", adjType: salarycalc.AdjustmentDeduction, description: "bonus", amount: "-5", wantErr: salarycalcerrors.ErrInvalidAdjustmentAmount},
		{name: "over max", adjType: salarycalc.AdjustmentAddition, description: "bonus", amount: "1000000", wantErr: salarycalcerrors.ErrInvalidAdjustmentAmount},
		{name: "three decimals", adjType: salarycalc.AdjustmentAddition, description: "bonus", amount: "1.005", wantErr: salarycalcerrors.ErrInvalidAdjustmentAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := salarycalc.ValidateAdjustment(tt.adjType, tt.description, dec(tt.amount))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}

func TestAdjustmentLedger_AddRemove(t *testing.T) {
	calcID := uuid.New()
	var ledger salarycalc.AdjustmentLedger

	ledger, bonus, err := ledger.Add(salarycalc.AdjustmentInput{
		CalculationID: calcID, AdjustmentType: salarycalc.AdjustmentAddition,
		Description: "bonus", Amount: dec("300"), At: testNow,
	})
	require.NoError(t, err)
	assert.Equal(t, calcID, bonus.CalculationID)

	before := ledger
	ledger, _, err = ledger.Add(salarycalc.AdjustmentInput{
		CalculationID: calcID, AdjustmentType: salarycalc.AdjustmentDeduction,
		Description: "late fee", Amount: dec("120.25"), At: testNow,
	})
	require.NoError(t, err)

	assert.Len(t, before, 1)
	assert.Len(t, ledger, 2)
	assertAmount(t, "179.75", ledger.Total())

	after, removed, err := ledger.Remove(bonus.ID)
	require.NoError(t, err)
	assert.Equal(t, bonus.ID, removed.ID)
	assert.Len(t, ledger, 2)
	assertAmount(t, "-120.25", after.Total())

	_, _, err = after.Remove(bonus.ID)
	assert.ErrorIs(t, err, salarycalcerrors.ErrAdjustmentNotFound)
}

func TestAdjustmentLedger_InvalidAddKeepsLedger(t *testing.T) {
	ledger := salarycalc.AdjustmentLedger{}

	next, _, err := ledger.Add(salarycalc.AdjustmentInput{
		AdjustmentType: salarycalc.AdjustmentAddition, Description: "x", Amount: dec("1"),
	})

	assert.ErrorIs(t, err, salarycalcerrors.ErrInvalidAdjustmentDescription)
	assert.Empty(t, next)
	assertAmount(t, "0.00", next.Total())
}
