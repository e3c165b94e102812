package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/middleware"
)

// BaseService gives every ledger service the request-scoped logger.
type BaseService struct{}

// GetLogger returns the logger stored in ctx by the request middleware, or the default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs a failed operation. Caller mistakes (unknown ids, rejected input,
// lost compare-and-set races) are logged at warn; everything else at error.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Log(ctx, errorLevel(err), msg, args...)
}

func errorLevel(err error) slog.Level {
	switch {
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		return slog.LevelError
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvariantViolation),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrDuplicate):
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
