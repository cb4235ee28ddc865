package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-tutorcenter/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := apperror.New(apperror.CodeInvalidState, "calculation is approved", http.StatusBadRequest)

		out := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusBadRequest, out.Status)
		assert.Equal(t, apperror.CodeInvalidState, out.Code)
		assert.Equal(t, "calculation is approved", out.Message)
		assert.Nil(t, out.Details)
	})

	t.Run("field error exposes field in details", func(t *testing.T) {
		err := fmt.Errorf("approve: %w", apperror.NewField(apperror.CodeInvalidInput, "adjustment_reason", "reason too short", http.StatusBadRequest))

		out := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusBadRequest, out.Status)
		assert.Equal(t, map[string]string{"field": "adjustment_reason"}, out.Details)
	})

	t.Run("record not found becomes 404", func(t *testing.T) {
		out := apperror.ToHTTP(fmt.Errorf("find: %w", gorm.ErrRecordNotFound))

		assert.Equal(t, http.StatusNotFound, out.Status)
		assert.Equal(t, apperror.CodeNotFound, out.Code)
	})

	t.Run("unknown error hides message", func(t *testing.T) {
		out := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, out.Status)
		assert.Equal(t, apperror.CodeInternalError, out.Code)
		assert.NotContains(t, out.Message, "pq")
	})
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", apperror.ErrForbidden)

	assert.True(t, apperror.HasCode(err, apperror.CodeForbidden))
	assert.False(t, apperror.HasCode(err, apperror.CodeNotFound))
	assert.False(t, apperror.HasCode(nil, apperror.CodeNotFound))
}

func TestFieldHelpers(t *testing.T) {
	assert.Equal(t, "Period Start is required", apperror.RequiredField("Period Start").Message)
	assert.Equal(t, "Amount is invalid", apperror.InvalidField("Amount").Message)
}
