package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
)

// LedgerMetrics receives business events from the services.
type LedgerMetrics interface {
	VoucherPosted(voucherType domain.VoucherType)
	VoucherRejected(reason string)
	VoucherDeleted()
	YearClosed(withClosingVoucher bool)
	VatPeriodMarked(paid bool)
}

type noopMetrics struct{}

func (noopMetrics) VoucherPosted(domain.VoucherType) {}
func (noopMetrics) VoucherRejected(string)           {}
func (noopMetrics) VoucherDeleted()                  {}
func (noopMetrics) YearClosed(bool)                  {}
func (noopMetrics) VatPeriodMarked(bool)             {}

// BaseService provides common functionality for all services
type BaseService struct {
	Metrics LedgerMetrics
	Now     func() time.Time
}

func newBaseService() BaseService {
	return BaseService{Metrics: noopMetrics{}, Now: time.Now}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Actor returns who is acting for audit fields, defaulting to the system actor.
func (s *BaseService) Actor(ctx context.Context) string {
	if actor, ok := middleware.GetActorFromCtx(ctx); ok {
		return actor
	}
	return domain.SystemActor
}

func (s *BaseService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *BaseService) metrics() LedgerMetrics {
	if s.Metrics == nil {
		return noopMetrics{}
	}
	return s.Metrics
}

func newAudit(actor string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor,
		LastUpdatedAt: now,
		LastUpdatedBy: actor,
	}
}

// ServiceOption configures the shared parts of a service.
type ServiceOption func(*BaseService)

// WithMetrics routes business events to m.
func WithMetrics(m LedgerMetrics) ServiceOption {
	return func(b *BaseService) {
		if m != nil {
			b.Metrics = m
		}
	}
}

// WithClock overrides the clock used for audit fields and defaults.
func WithClock(now func() time.Time) ServiceOption {
	return func(b *BaseService) {
		if now != nil {
			b.Now = now
		}
	}
}

func applyOptions(b *BaseService, opts []ServiceOption) {
	for _, opt := range opts {
		opt(b)
	}
}
