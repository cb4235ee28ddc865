package salarycalc_test

import (
	"testing"

	"go-tutorcenter/internal/salarycalc"
	salarycalcerrors "go-tutorcenter/internal/salarycalc/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amountPtr(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func TestAuditTrail_Record(t *testing.T) {
	actor := uuid.New()
	var trail salarycalc.AuditTrail

	trail, created, err := trail.Record(salarycalc.AuditEntry{
		Action: salarycalc.ActionCreated, NewAmount: amountPtr("100"), Reason: "ignored", Actor: actor, At: testNow,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Sequence)
	assert.Nil(t, created.Reason)
	assert.Nil(t, created.PreviousAmount)

	trail, approved, err := trail.Record(salarycalc.AuditEntry{
		Action: salarycalc.ActionApproved, PreviousAmount: amountPtr("100"), NewAmount: amountPtr("100.00"), Actor: actor, At: testNow,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, approved.Sequence)
	assert.Nil(t, approved.Reason)

	trail, reopened, err := trail.Record(salarycalc.AuditEntry{
		Action: salarycalc.ActionReopened, PreviousAmount: amountPtr("100"), NewAmount: amountPtr("100"), Reason: "  typo  ", Actor: actor, At: testNow,
	})
	require.NoError(t, err)
	assert.Equal(t, "typo", *reopened.Reason)

	assert.Len(t, trail, 3)
	history := trail.History()
	assert.Equal(t, salarycalc.ActionReopened, history[0].Action)
	assert.Equal(t, salarycalc.ActionCreated, history[2].Action)
}

func TestAuditTrail_RecordRejects(t *testing.T) {
	tests := []struct {
		name    string
		entry   salarycalc.AuditEntry
		wantErr error
	}{
		{
			name:    "unknown action",
			entry:   salarycalc.AuditEntry{Action: "deleted"},
			wantErr: salarycalcerrors.ErrUnknownAuditAction,
		},
		{
			name:    "reopen without reason",
			entry:   salarycalc.AuditEntry{Action: salarycalc.ActionReopened, Reason: "   "},
			wantErr: salarycalcerrors.ErrReopenReasonRequired,
		},
		{
			name: "override without reason",
			entry: salarycalc.AuditEntry{
				Action: salarycalc.ActionApproved, PreviousAmount: amountPtr("100"), NewAmount: amountPtr("90"),
			},
			wantErr: salarycalcerrors.ErrApprovalReasonRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trail := salarycalc.AuditTrail{}
			next, _, err := trail.Record(tt.entry)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, next)
		})
	}
}

func TestAuditTrail_EntriesAreCopies(t *testing.T) {
	var trail salarycalc.AuditTrail
	trail, _, err := trail.Record(salarycalc.AuditEntry{Action: salarycalc.ActionCreated, NewAmount: amountPtr("1")})
	require.NoError(t, err)

	entries := trail.Entries()
	entries[0].Action = salarycalc.ActionAdjusted

	assert.Equal(t, salarycalc.ActionCreated, trail[0].Action)
}

func TestAuditTrail_RecordCopiesAmounts(t *testing.T) {
	amount := dec("50")
	var trail salarycalc.AuditTrail
	trail, _, err := trail.Record(salarycalc.AuditEntry{Action: salarycalc.ActionCreated, NewAmount: &amount})
	require.NoError(t, err)

	amount = dec("75")

	assertAmount(t, "50.00", *trail[0].NewAmount)
}
