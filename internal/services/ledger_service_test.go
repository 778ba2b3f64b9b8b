package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bank-ledger/internal/models"
	"bank-ledger/internal/repositories"
	"bank-ledger/internal/repositories/repository_mocks"
	"bank-ledger/internal/services"
	"bank-ledger/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	ledger        services.LedgerServiceInterface
	accountRepo   *repository_mocks.MockAccountRepositoryInterface
	validator     *service_mocks.MockReferenceValidatorInterface
	locker        *service_mocks.MockAccountLockerInterface
	breaker       *service_mocks.MockCircuitBreakerInterface
	metrics       *service_mocks.MockMetricsRecorderInterface
	ledgerLogger  *service_mocks.MockLedgerLoggerInterface
	accountID     uint
	transactionID uint
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.validator = service_mocks.NewMockReferenceValidatorInterface(s.ctrl)
	s.locker = service_mocks.NewMockAccountLockerInterface(s.ctrl)
	s.breaker = service_mocks.NewMockCircuitBreakerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.ledgerLogger = service_mocks.NewMockLedgerLoggerInterface(s.ctrl)

	s.ledger = services.NewLedgerService(
		s.accountRepo,
		s.validator,
		s.locker,
		s.breaker,
		s.metrics,
		s.ledgerLogger,
		services.LedgerConfig{MaxConflictRetries: 3},
	)

	s.accountID = uint(gofakeit.Number(1, 10000))
	s.transactionID = uint(gofakeit.Number(1, 10))

	s.metrics.EXPECT().RecordProcessingTime(services.MetricMovementDuration, gomock.Any()).AnyTimes()
	s.breaker.EXPECT().GetState().Return(services.StateClosed).AnyTimes()
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LedgerServiceTestSuite) input(amount string) services.ApplyMovementInput {
	return services.ApplyMovementInput{
		AccountID:         s.accountID,
		TransactionTypeID: s.transactionID,
		Amount:            decimal.RequireFromString(amount),
	}
}

func (s *LedgerServiceTestSuite) expectRejected(operation, reason string) {
	s.metrics.EXPECT().IncrementCounter(services.MetricMovementRejected, map[string]string{
		"operation": operation,
		"reason":    reason,
	}).Times(1)
	s.ledgerLogger.EXPECT().LogMovementRejected(gomock.Any(), s.accountID, operation, reason, gomock.Any()).Times(1)
}

func (s *LedgerServiceTestSuite) expectResolved(kind models.OperationKind) {
	s.breaker.EXPECT().IsOpen().Return(false)
	s.accountRepo.EXPECT().Exists(gomock.Any(), s.accountID).Return(true, nil)
	s.validator.EXPECT().ResolveOperation(gomock.Any(), s.transactionID).Return(kind, nil)
	s.locker.EXPECT().Lock(gomock.Any(), s.accountID).Return(func() {}, nil)
}

// applyAs simulates a committed movement against the given starting balance
func applyAs(kind models.OperationKind, balance string) func(context.Context, models.OperationKind, *models.Movement) (*models.Account, error) {
	return func(_ context.Context, _ models.OperationKind, movement *models.Movement) (*models.Account, error) {
		account := &models.Account{ID: movement.AccountID, Balance: decimal.RequireFromString(balance)}
		before, after, err := account.Apply(kind, movement.Amount)
		if err != nil {
			return nil, err
		}
		movement.ID = uint(gofakeit.Number(1, 1000))
		movement.Reference = models.GenerateMovementReference()
		movement.BalanceBefore = before
		movement.BalanceAfter = after
		movement.TransactionDate = time.Now().UTC()
		return account, nil
	}
}

func (s *LedgerServiceTestSuite) TestApplyMovement_Deposit_Success() {
	s.expectResolved(models.OperationDeposit)
	s.accountRepo.EXPECT().ApplyMovement(gomock.Any(), models.OperationDeposit, gomock.Any()).
		DoAndReturn(applyAs(models.OperationDeposit, "100.00"))
	s.breaker.EXPECT().RecordSuccess().Times(1)
	s.metrics.EXPECT().IncrementCounter(services.MetricMovementApplied, map[string]string{"operation": "deposit"}).Times(1)
	s.ledgerLogger.EXPECT().LogMovementApplied(gomock.Any(), gomock.Any(), models.OperationDeposit, gomock.Any()).Times(1)

	movement, err := s.ledger.ApplyMovement(s.ctx, s.input("50"))

	s.Require().NoError(err)
	s.NotZero(movement.ID)
	s.Equal(s.accountID, movement.AccountID)
	s.True(movement.BalanceBefore.Equal(decimal.RequireFromString("100")))
	s.True(movement.BalanceAfter.Equal(decimal.RequireFromString("150")))
}

func (s *LedgerServiceTestSuite) TestApplyMovement_InvalidAmount_NoStorageAccess() {
	for _, amount := range []string{"0", "-5", "10.001"} {
		s.Run(amount, func() {
			s.expectRejected("unknown", "invalid_amount")

			movement, err := s.ledger.ApplyMovement(s.ctx, s.input(amount))

			s.Nil(movement)
			s.ErrorIs(err, services.ErrInvalidAmount)
		})
	}
}

func (s *LedgerServiceTestSuite) TestApplyMovement_AccountNotFound() {
	s.breaker.EXPECT().IsOpen().Return(false)
	s.accountRepo.EXPECT().Exists(gomock.Any(), s.accountID).Return(false, nil)
	s.breaker.EXPECT().RecordSuccess()
	s.expectRejected("unknown", "account_not_found")

	_, err := s.ledger.ApplyMovement(s.ctx, s.input("10"))

	s.ErrorIs(err, services.ErrAccountNotFound)
}

func (s *LedgerServiceTestSuite) TestApplyMovement_InvalidTransactionType() {
	s.breaker.EXPECT().IsOpen().Return(false)
	s.accountRepo.EXPECT().Exists(gomock.Any(), s.accountID).Return(true, nil)
	s.validator.EXPECT().ResolveOperation(gomock.Any(), s.transactionID).Return(models.OperationKind(""), services.ErrInvalidTransactionType)
	s.breaker.EXPECT().RecordSuccess()
	s.expectRejected("unknown", "invalid_transaction_type")

	_, err := s.ledger.ApplyMovement(s.ctx, s.input("10"))

	s.ErrorIs(err, services.ErrInvalidTransactionType)
}

func (s *LedgerServiceTestSuite) TestApplyMovement_UnsupportedOperation() {
	s.breaker.EXPECT().IsOpen().Return(false)
	s.accountRepo.EXPECT().Exists(gomock.Any(), s.accountID).Return(true, nil)
	s.validator.EXPECT().ResolveOperation(gomock.Any(), s.transactionID).Return(models.OperationKind(""), services.ErrUnsupportedOperation)
	s.breaker.EXPECT().RecordSuccess()
	s.expectRejected("unknown", "unsupported_operation")

	_, err := s.ledger.ApplyMovement(s.ctx, s.input("10"))

	s.ErrorIs(err, services.ErrUnsupportedOperation)
}

func (s *LedgerServiceTestSuite) TestApplyMovement_InsufficientFunds_ExposesBalance() {
	s.expectResolved(models.OperationWithdrawal)
	s.accountRepo.EXPECT().ApplyMovement(gomock.Any(), models.OperationWithdrawal, gomock.Any()).
		DoAndReturn(applyAs(models.OperationWithdrawal, "100.00"))
	s.breaker.EXPECT().RecordSuccess()
	s.expectRejected("withdrawal", "insufficient_funds")

	_, err := s.ledger.ApplyMovement(s.ctx, s.input("150"))

	s.Require().ErrorIs(err, services.ErrInsufficientFunds)
	var fundsErr *models.InsufficientFundsError
	s.Require().True(errors.As(err, &fundsErr))
	s.True(fundsErr.Balance.Equal(decimal.RequireFromString("100")))
}

func (s *LedgerServiceTestSuite) TestApplyMovement_VersionConflict_RetriesThenSucceeds() {
	s.expectResolved(models.OperationDeposit)
	gomock.InOrder(
		s.accountRepo.EXPECT().ApplyMovement(gomock.Any(), models.OperationDeposit, gomock.Any()).Return(nil, repositories.ErrVersionConflict),
		s.accountRepo.EXPECT().ApplyMovement(gomock.Any(), models.OperationDeposit, gomock.Any()).Return(nil, repositories.ErrVersionConflict),
		s.accountRepo.EXPECT().ApplyMovement(gomock.Any(), models.OperationDeposit, gomock.Any()).
			DoAndReturn(applyAs(models.OperationDeposit, "0")),
	)
	s.metrics.EXPECT().IncrementCounter(services.MetricMovementConflictRetry, map[string]string{"operation": "deposit"}).Times(2)
	s.ledgerLogger.EXPECT().LogConflictRetry(gomock.Any(), s.accountID, 1)
	s.ledgerLogger.EXPECT().LogConflictRetry(gomock.Any(), s.accountID, 2)
	s.breaker.EXPECT().RecordSuccess()
	s.metrics.EXPECT().IncrementCounter(services.MetricMovementApplied, gomock.Any())
	s.ledgerLogger.EXPECT().LogMovementApplied(gomock.Any(), gomock.Any(), models.OperationDeposit, gomock.Any())

	movement, err := s.ledger.ApplyMovement(s.ctx, s.input("25.50"))

	s.Require().NoError(err)
	s.True(movement.BalanceAfter.Equal(decimal.RequireFromString("25.50")))
}

func (s *LedgerServiceTestSuite) TestApplyMovement_VersionConflict_ExhaustsRetries() {
	s.expectResolved(models.OperationDeposit)
	s.accountRepo.EXPECT().ApplyMovement(gomock.Any(), models.OperationDeposit, gomock.Any()).
		Return(nil, repositories.ErrVersionConflict).Times(4)
	s.metrics.EXPECT().IncrementCounter(services.MetricMovementConflictRetry, gomock.Any()).Times(3)
	s.ledgerLogger.EXPECT().LogConflictRetry(gomock.Any(), s.accountID, gomock.Any()).Times(3)
	s.breaker.EXPECT().RecordSuccess()
	s.expectRejected("deposit", "conflict")

	_, err := s.ledger.ApplyMovement(s.ctx, s.input("10"))

	s.ErrorIs(err, services.ErrConflict)
}

func (s *LedgerServiceTestSuite) TestApplyMovement_BreakerOpen_FailsFast() {
	s.breaker.EXPECT().IsOpen().Return(true)
	s.expectRejected("unknown", "storage_unavailable")

	_, err := s.ledger.ApplyMovement(s.ctx, s.input("10"))

	s.ErrorIs(err, services.ErrStorageUnavailable)
}

func (s *LedgerServiceTestSuite) TestApplyMovement_StorageFailure_TripsBreaker() {
	s.expectResolved(models.OperationWithdrawal)
	s.accountRepo.EXPECT().ApplyMovement(gomock.Any(), models.OperationWithdrawal, gomock.Any()).
		Return(nil, errors.New("connection reset by peer"))
	s.breaker.EXPECT().RecordFailure().Times(1)
	s.expectRejected("withdrawal", "storage_error")

	_, err := s.ledger.ApplyMovement(s.ctx, s.input("10"))

	s.Require().Error(err)
	s.Contains(err.Error(), "connection reset by peer")
}

func (s *LedgerServiceTestSuite) TestApplyMovement_LockCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)

	s.breaker.EXPECT().IsOpen().Return(false)
	s.accountRepo.EXPECT().Exists(gomock.Any(), s.accountID).Return(true, nil)
	s.validator.EXPECT().ResolveOperation(gomock.Any(), s.transactionID).Return(models.OperationDeposit, nil)
	s.locker.EXPECT().Lock(gomock.Any(), s.accountID).DoAndReturn(func(context.Context, uint) (func(), error) {
		cancel()
		return nil, context.Canceled
	})
	s.expectRejected("deposit", "cancelled")

	_, err := s.ledger.ApplyMovement(ctx, s.input("10"))

	s.ErrorIs(err, context.Canceled)
}

func (s *LedgerServiceTestSuite) TestApplyMovement_LockTimeout_IsConflict() {
	ledger := services.NewLedgerService(
		s.accountRepo, s.validator, s.locker, s.breaker, s.metrics, s.ledgerLogger,
		services.LedgerConfig{MaxConflictRetries: 3, LockTimeout: 10 * time.Millisecond},
	)

	s.breaker.EXPECT().IsOpen().Return(false)
	s.accountRepo.EXPECT().Exists(gomock.Any(), s.accountID).Return(true, nil)
	s.validator.EXPECT().ResolveOperation(gomock.Any(), s.transactionID).Return(models.OperationWithdrawal, nil)
	s.locker.EXPECT().Lock(gomock.Any(), s.accountID).DoAndReturn(func(ctx context.Context, _ uint) (func(), error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	s.breaker.EXPECT().RecordSuccess()
	s.expectRejected("withdrawal", "conflict")

	_, err := ledger.ApplyMovement(s.ctx, s.input("10"))

	s.ErrorIs(err, services.ErrConflict)
}
