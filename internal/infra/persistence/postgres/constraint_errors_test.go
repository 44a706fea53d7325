package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsNotNullConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"postgres message", errors.New(`ERROR: null value in column "score_state" violates not-null constraint (SQLSTATE 23502)`), true},
		{"sqlstate only", errors.New("SQLSTATE 23502"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNotNullConstraintViolation(tt.err))
		})
	}
}

func TestIsCheckConstraintViolation(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(errors.New(`violates check constraint "chk_gender" (SQLSTATE 23514)`)))
	assert.False(t, isCheckConstraintViolation(errors.New("timeout")))
}
