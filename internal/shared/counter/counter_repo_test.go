package counter_test

import (
	"testing"

	"go-tutorcenter/internal/shared/counter"

	"github.com/stretchr/testify/assert"
)

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "SC-000042", counter.FormatReference("SC", 42))
	assert.Equal(t, "SC-1234567", counter.FormatReference("SC", 1234567))
}
