package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"inkwell/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.Kind
	}{
		{name: "validation", err: apperrors.Validation("Invalid page"), want: apperrors.KindValidation},
		{name: "not found", err: apperrors.NotFound("Not found"), want: apperrors.KindNotFound},
		{name: "conflict", err: apperrors.Conflict(), want: apperrors.KindConflict},
		{name: "unauthorized", err: apperrors.Unauthorized(), want: apperrors.KindUnauthorized},
		{name: "configuration", err: apperrors.Configuration("JWT secret not configured"), want: apperrors.KindConfiguration},
		{name: "wrapped app error", err: fmt.Errorf("handler: %w", apperrors.Conflict()), want: apperrors.KindConflict},
		{name: "unknown error", err: errors.New("connection refused"), want: apperrors.KindInternal},
		{name: "internal", err: apperrors.Internal(errors.New("boom")), want: apperrors.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.KindOf(tt.err))
		})
	}
}

func TestMessageOfNeverLeaksInternalDetail(t *testing.T) {
	assert.Equal(t, "Internal server error", apperrors.MessageOf(errors.New("pq: connection refused")))
	assert.Equal(t, "Internal server error", apperrors.MessageOf(apperrors.Internal(errors.New("pq: down"))))
	assert.Equal(t, "Tag not found", apperrors.MessageOf(apperrors.NotFound("Tag not found")))
}
