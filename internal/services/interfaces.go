package services

import (
	"context"
	"time"

	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerServiceInterface applies balance-changing movements to accounts
type LedgerServiceInterface interface {
	ApplyMovement(ctx context.Context, input ApplyMovementInput) (*models.Movement, error)
}

// ReferenceValidatorInterface checks that referenced entities exist before a write
type ReferenceValidatorInterface interface {
	ValidateCustomerReferences(ctx context.Context, statusID, genderID, addressID uint) error
	EnsureEmailAvailable(ctx context.Context, email string) error
	ValidateAccountReferences(ctx context.Context, statusID, customerID uint) error
	ResolveOperation(ctx context.Context, transactionTypeID uint) (models.OperationKind, error)
}

// QueryServiceInterface provides read-only views over accounts and customers
type QueryServiceInterface interface {
	GetAccount(ctx context.Context, accountID uint) (*models.Account, error)
	GetAccountBalance(ctx context.Context, accountID uint) (decimal.Decimal, error)
	ListMovements(ctx context.Context, accountID uint, offset, limit int) (*models.MovementPage, error)
	GetMovement(ctx context.Context, reference string) (*models.Movement, error)
	CustomerSummary(ctx context.Context, customerID uint) (*models.CustomerSummary, error)
}

// CustomerServiceInterface creates and reads customers and their accounts
type CustomerServiceInterface interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*models.Customer, error)
	OpenAccount(ctx context.Context, input OpenAccountInput) (*models.Account, error)
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	ListTransactionTypes(ctx context.Context) ([]models.TransactionType, error)
}

// AccountLockerInterface serializes work on a single account within the process
type AccountLockerInterface interface {
	Lock(ctx context.Context, accountID uint) (unlock func(), err error)
}

// LedgerLoggerInterface emits structured domain events
type LedgerLoggerInterface interface {
	LogMovementApplied(ctx context.Context, movement *models.Movement, operation models.OperationKind, durationMs int64)
	LogMovementRejected(ctx context.Context, accountID uint, operation string, reason string, durationMs int64)
	LogConflictRetry(ctx context.Context, accountID uint, attempt int)
	LogCircuitBreakerStateChange(ctx context.Context, service string, from, to CircuitBreakerState)
	LogAccountOpened(ctx context.Context, account *models.Account)
	LogCustomerCreated(ctx context.Context, customerID uint, email string)
}

// MetricsRecorderInterface records counters, timings and gauges
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// CircuitBreakerInterface guards calls to storage
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}
