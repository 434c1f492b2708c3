package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/powerdrill/internal/errors"
)

func TestAppError_Error(t *testing.T) {
	err := errors.NewInvalidRangeError("cube")
	assert.Equal(t, "INVALID_RANGE: no custom range configured for cube", err.Error())
	assert.Equal(t, 409, err.Status)

	wrapped := errors.NewInternalError(fmt.Errorf("disk full"))
	assert.Contains(t, wrapped.Error(), "disk full")
	assert.EqualError(t, wrapped.Unwrap(), "disk full")
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		invalidRange  bool
		invalidCustom bool
	}{
		{name: "invalid range", err: errors.NewInvalidRangeError("square"), invalidRange: true},
		{name: "invalid custom range", err: errors.NewInvalidCustomRangeError("gap too small"), invalidCustom: true},
		{name: "wrapped invalid range", err: fmt.Errorf("start: %w", errors.NewInvalidRangeError("cube")), invalidRange: true},
		{name: "validation", err: errors.NewValidationError("duration", "must be positive")},
		{name: "plain error", err: fmt.Errorf("boom")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.invalidRange, errors.IsInvalidRange(tt.err))
			assert.Equal(t, tt.invalidCustom, errors.IsInvalidCustomRange(tt.err))
		})
	}
}
