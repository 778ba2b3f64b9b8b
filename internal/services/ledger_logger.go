package services

import (
	"context"
	"log/slog"
	"time"

	"bank-ledger/internal/models"
	"bank-ledger/internal/tracing"
)

const (
	// RedactedValue masks personal data in logs
	RedactedValue = "***REDACTED***"
)

// LedgerLogger provides structured logging for ledger and customer events
type LedgerLogger struct {
	logger *slog.Logger
}

// NewLedgerLogger creates a new ledger logger
func NewLedgerLogger(logger *slog.Logger) *LedgerLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerLogger{
		logger: logger,
	}
}

// LogMovementApplied logs a committed movement with its balance transition
func (l *LedgerLogger) LogMovementApplied(ctx context.Context, movement *models.Movement, operation models.OperationKind, durationMs int64) {
	l.logger.InfoContext(ctx, "movement applied",
		slog.String("event_type", "movement_applied"),
		slog.Uint64("movement_id", uint64(movement.ID)),
		slog.String("reference", movement.Reference),
		slog.Uint64("account_id", uint64(movement.AccountID)),
		slog.Uint64("transaction_type_id", uint64(movement.TransactionTypeID)),
		slog.String("operation", string(operation)),
		slog.String("amount", movement.Amount.StringFixed(models.MoneyScale)),
		slog.String("balance_before", movement.BalanceBefore.StringFixed(models.MoneyScale)),
		slog.String("balance_after", movement.BalanceAfter.StringFixed(models.MoneyScale)),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", tracing.TraceID(ctx)),
	)
}

// LogMovementRejected logs a movement that was not applied
func (l *LedgerLogger) LogMovementRejected(ctx context.Context, accountID uint, operation string, reason string, durationMs int64) {
	l.logger.WarnContext(ctx, "movement rejected",
		slog.String("event_type", "movement_rejected"),
		slog.Uint64("account_id", uint64(accountID)),
		slog.String("operation", operation),
		slog.String("reason", reason),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", tracing.TraceID(ctx)),
	)
}

func (l *LedgerLogger) LogConflictRetry(ctx context.Context, accountID uint, attempt int) {
	l.logger.InfoContext(ctx, "movement retry after version conflict",
		slog.String("event_type", "movement_conflict_retry"),
		slog.Uint64("account_id", uint64(accountID)),
		slog.Int("attempt", attempt),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", tracing.TraceID(ctx)),
	)
}

func (l *LedgerLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, from, to CircuitBreakerState) {
	l.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", tracing.TraceID(ctx)),
	)
}

// LogAccountOpened logs account creation
func (l *LedgerLogger) LogAccountOpened(ctx context.Context, account *models.Account) {
	l.logger.InfoContext(ctx, "account opened",
		slog.String("event_type", "account_opened"),
		slog.Uint64("account_id", uint64(account.ID)),
		slog.Uint64("customer_id", uint64(account.CustomerID)),
		slog.String("initial_balance", account.InitialBalance.StringFixed(models.MoneyScale)),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", tracing.TraceID(ctx)),
	)
}

// LogCustomerCreated logs customer creation. The email is masked.
func (l *LedgerLogger) LogCustomerCreated(ctx context.Context, customerID uint, email string) {
	masked := RedactedValue
	if email == "" {
		masked = ""
	}
	l.logger.InfoContext(ctx, "customer created",
		slog.String("event_type", "customer_created"),
		slog.Uint64("customer_id", uint64(customerID)),
		slog.String("email", masked),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", tracing.TraceID(ctx)),
	)
}
