package services

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
)

func TestErrorLevel(t *testing.T) {
	cases := []struct {
		err  error
		want slog.Level
	}{
		{fmt.Errorf("event e1: %w", apperrors.ErrNotFound), slog.LevelWarn},
		{apperrors.NewValidationError("actor_id"), slog.LevelWarn},
		{fmt.Errorf("posted: %w", apperrors.ErrInvariantViolation), slog.LevelWarn},
		{fmt.Errorf("raced: %w", apperrors.ErrConflict), slog.LevelWarn},
		{apperrors.Storage("failed to save event", errors.New("conn reset")), slog.LevelError},
		{errors.New("boom"), slog.LevelError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, errorLevel(tc.err), tc.err.Error())
	}
}
