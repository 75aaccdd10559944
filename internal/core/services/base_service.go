package services

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	"github.com/SscSPs/sheetbill/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Stores portsrepo.StoreProvider
	Clock  func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the service clock, which tests replace.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// OpenStores resolves the repositories of the user's spreadsheet.
func (s *BaseService) OpenStores(ctx context.Context, userID string) (*portsrepo.RepositoryProvider, error) {
	repos, err := s.Stores.ForUser(ctx, userID)
	if err != nil {
		s.LogDebug(ctx, "Failed to open user spreadsheet", slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}
	return repos, nil
}

// Option configures the BaseService embedded in a service.
type Option func(*BaseService)

// WithClock replaces the clock used for timestamps and date defaults.
func WithClock(clock func() time.Time) Option {
	return func(b *BaseService) {
		b.Clock = clock
	}
}

func newBase(stores portsrepo.StoreProvider, opts []Option) BaseService {
	b := BaseService{Stores: stores}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// today is the service clock truncated to a UTC calendar date.
func (s *BaseService) today() time.Time {
	y, m, d := s.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
