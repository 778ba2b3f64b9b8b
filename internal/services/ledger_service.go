package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bank-ledger/internal/models"
	"bank-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount      = models.ErrInvalidAmount
	ErrAccountNotFound    = errors.New("account not found")
	ErrInsufficientFunds  = models.ErrInsufficientFunds
	ErrConflict           = errors.New("account was modified concurrently")
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
	ErrIntegrity          = repositories.ErrIntegrity
)

const (
	DefaultMaxConflictRetries = 3

	ledgerBreakerService = "ledger"
)

// ApplyMovementInput describes one deposit or withdrawal request. A zero
// TransactionDate is replaced by the commit time.
type ApplyMovementInput struct {
	AccountID         uint
	TransactionTypeID uint
	Amount            decimal.Decimal
	TransactionDate   time.Time
}

type LedgerConfig struct {
	// MaxConflictRetries bounds how often a version conflict is retried
	MaxConflictRetries int
	// LockTimeout bounds the wait for the in-process account lock; zero waits
	// as long as the request context allows
	LockTimeout time.Duration
}

// ledgerService implements LedgerServiceInterface
type ledgerService struct {
	accountRepo  repositories.AccountRepositoryInterface
	validator    ReferenceValidatorInterface
	locker       AccountLockerInterface
	breaker      CircuitBreakerInterface
	metrics      MetricsRecorderInterface
	ledgerLogger LedgerLoggerInterface
	config       LedgerConfig
}

// NewLedgerService creates the balance ledger
func NewLedgerService(
	accountRepo repositories.AccountRepositoryInterface,
	validator ReferenceValidatorInterface,
	locker AccountLockerInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	ledgerLogger LedgerLoggerInterface,
	config LedgerConfig,
) LedgerServiceInterface {
	if config.MaxConflictRetries < 0 {
		config.MaxConflictRetries = DefaultMaxConflictRetries
	}
	return &ledgerService{
		accountRepo:  accountRepo,
		validator:    validator,
		locker:       locker,
		breaker:      breaker,
		metrics:      metrics,
		ledgerLogger: ledgerLogger,
		config:       config,
	}
}

// ApplyMovement validates the request, then atomically records the movement
// and the new balance. Checks run in a fixed order and the first failure is
// returned: amount, account, transaction type, operation, funds.
func (s *ledgerService) ApplyMovement(ctx context.Context, input ApplyMovementInput) (*models.Movement, error) {
	start := time.Now()

	movement, kind, err := s.applyMovement(ctx, input)

	duration := time.Since(start)
	s.metrics.RecordProcessingTime(MetricMovementDuration, duration)

	operation := string(kind)
	if operation == "" {
		operation = "unknown"
	}

	if err != nil {
		reason := rejectionReason(err)
		s.metrics.IncrementCounter(MetricMovementRejected, map[string]string{
			"operation": operation,
			"reason":    reason,
		})
		s.ledgerLogger.LogMovementRejected(ctx, input.AccountID, operation, reason, duration.Milliseconds())
		return nil, err
	}

	s.metrics.IncrementCounter(MetricMovementApplied, map[string]string{"operation": operation})
	s.ledgerLogger.LogMovementApplied(ctx, movement, kind, duration.Milliseconds())
	return movement, nil
}

func (s *ledgerService) applyMovement(ctx context.Context, input ApplyMovementInput) (*models.Movement, models.OperationKind, error) {
	if err := models.ValidateAmount(input.Amount); err != nil {
		return nil, "", ErrInvalidAmount
	}

	stateBefore := s.breaker.GetState()
	defer s.reportBreakerState(ctx, stateBefore)

	if s.breaker.IsOpen() {
		return nil, "", ErrStorageUnavailable
	}

	movement, kind, err := s.execute(ctx, input)
	switch {
	case err == nil:
		s.breaker.RecordSuccess()
	case isCancellation(err):
		// says nothing about storage health
	case isStorageFailure(err):
		s.breaker.RecordFailure()
	default:
		s.breaker.RecordSuccess()
	}

	return movement, kind, err
}

func (s *ledgerService) execute(ctx context.Context, input ApplyMovementInput) (*models.Movement, models.OperationKind, error) {
	exists, err := s.accountRepo.Exists(ctx, input.AccountID)
	if err != nil {
		return nil, "", s.wrapStorageError(ctx, "failed to verify account", err)
	}
	if !exists {
		return nil, "", ErrAccountNotFound
	}

	kind, err := s.validator.ResolveOperation(ctx, input.TransactionTypeID)
	if err != nil {
		if errors.Is(err, ErrInvalidTransactionType) || errors.Is(err, ErrUnsupportedOperation) {
			return nil, "", err
		}
		return nil, "", s.wrapStorageError(ctx, "failed to resolve operation", err)
	}

	lockCtx := ctx
	if s.config.LockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, s.config.LockTimeout)
		defer cancel()
	}

	unlock, err := s.locker.Lock(lockCtx, input.AccountID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, kind, fmt.Errorf("movement cancelled: %w", ctx.Err())
		}
		return nil, kind, ErrConflict
	}
	defer unlock()

	for attempt := 0; ; attempt++ {
		movement := &models.Movement{
			AccountID:         input.AccountID,
			TransactionTypeID: input.TransactionTypeID,
			Amount:            input.Amount,
			TransactionDate:   input.TransactionDate,
		}

		_, err := s.accountRepo.ApplyMovement(ctx, kind, movement)
		if err == nil {
			return movement, kind, nil
		}

		if !errors.Is(err, repositories.ErrVersionConflict) {
			return nil, kind, s.translateApplyError(ctx, err)
		}
		if attempt >= s.config.MaxConflictRetries {
			return nil, kind, ErrConflict
		}
		if ctx.Err() != nil {
			return nil, kind, fmt.Errorf("movement cancelled: %w", ctx.Err())
		}

		s.metrics.IncrementCounter(MetricMovementConflictRetry, map[string]string{"operation": string(kind)})
		s.ledgerLogger.LogConflictRetry(ctx, input.AccountID, attempt+1)
	}
}

func (s *ledgerService) translateApplyError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, repositories.ErrAccountNotFound):
		return ErrAccountNotFound
	case errors.Is(err, ErrInsufficientFunds):
		return err
	case errors.Is(err, models.ErrInvalidAmount):
		return ErrInvalidAmount
	case errors.Is(err, models.ErrUnsupportedOperation):
		return ErrUnsupportedOperation
	case errors.Is(err, repositories.ErrIntegrity):
		return err
	default:
		return s.wrapStorageError(ctx, "failed to apply movement", err)
	}
}

func (s *ledgerService) wrapStorageError(ctx context.Context, msg string, err error) error {
	if ctx.Err() != nil && !isCancellation(err) {
		return fmt.Errorf("%s: %w: %v", msg, ctx.Err(), err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (s *ledgerService) reportBreakerState(ctx context.Context, before CircuitBreakerState) {
	after := s.breaker.GetState()
	if after == before {
		return
	}
	s.metrics.RecordGauge(MetricCircuitBreakerState, float64(after), map[string]string{"service": ledgerBreakerService})
	s.ledgerLogger.LogCircuitBreakerStateChange(ctx, ledgerBreakerService, before, after)
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// isStorageFailure reports whether err came from the store rather than from a
// business rule
func isStorageFailure(err error) bool {
	if err == nil || isCancellation(err) {
		return false
	}
	for _, business := range []error{
		ErrInvalidAmount,
		ErrAccountNotFound,
		ErrInvalidTransactionType,
		ErrUnsupportedOperation,
		ErrInsufficientFunds,
		ErrConflict,
		ErrIntegrity,
		ErrStorageUnavailable,
	} {
		if errors.Is(err, business) {
			return false
		}
	}
	return true
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, ErrInvalidTransactionType):
		return "invalid_transaction_type"
	case errors.Is(err, ErrUnsupportedOperation):
		return "unsupported_operation"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrIntegrity):
		return "integrity"
	case errors.Is(err, ErrStorageUnavailable):
		return "storage_unavailable"
	case isCancellation(err):
		return "cancelled"
	default:
		return "storage_error"
	}
}
