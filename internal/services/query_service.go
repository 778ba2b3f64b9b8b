package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bank-ledger/internal/models"
	"bank-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPagination = errors.New("offset must be >= 0 and limit must be > 0")
	ErrMovementNotFound  = errors.New("movement not found")
)

const (
	DefaultMovementPageSize = 20
	MaxMovementPageSize     = 100
)

// queryService implements QueryServiceInterface. Reads take no application
// lock and see the last committed state.
type queryService struct {
	accountRepo  repositories.AccountRepositoryInterface
	movementRepo repositories.MovementRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
}

// NewQueryService creates a new query service
func NewQueryService(
	accountRepo repositories.AccountRepositoryInterface,
	movementRepo repositories.MovementRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
) QueryServiceInterface {
	return &queryService{
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		customerRepo: customerRepo,
	}
}

func (s *queryService) GetAccount(ctx context.Context, accountID uint) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetAccountBalance returns the committed balance of the account
func (s *queryService) GetAccountBalance(ctx context.Context, accountID uint) (decimal.Decimal, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// ListMovements returns one page of the account history ordered by
// transaction date, then id. Limits above MaxMovementPageSize are capped.
// An account without movements yields an empty page.
func (s *queryService) ListMovements(ctx context.Context, accountID uint, offset, limit int) (*models.MovementPage, error) {
	if offset < 0 || limit <= 0 {
		return nil, ErrInvalidPagination
	}
	if limit > MaxMovementPageSize {
		limit = MaxMovementPageSize
	}

	exists, err := s.accountRepo.Exists(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify account: %w", err)
	}
	if !exists {
		return nil, ErrAccountNotFound
	}

	movements, total, err := s.movementRepo.GetByAccountID(ctx, accountID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	if movements == nil {
		movements = []models.Movement{}
	}

	return &models.MovementPage{
		AccountID: accountID,
		Movements: movements,
		Offset:    offset,
		Limit:     limit,
		Total:     total,
	}, nil
}

// GetMovement looks up a committed movement by its reference
func (s *queryService) GetMovement(ctx context.Context, reference string) (*models.Movement, error) {
	movement, err := s.movementRepo.GetByReference(ctx, strings.TrimSpace(reference))
	if err != nil {
		if errors.Is(err, repositories.ErrMovementNotFound) {
			return nil, ErrMovementNotFound
		}
		return nil, fmt.Errorf("failed to get movement: %w", err)
	}
	return movement, nil
}

// CustomerSummary lists the customer's accounts with an exact total balance
func (s *queryService) CustomerSummary(ctx context.Context, customerID uint) (*models.CustomerSummary, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	accounts, err := s.accountRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer accounts: %w", err)
	}

	items := make([]models.AccountSummaryItem, 0, len(accounts))
	total := decimal.Zero
	for _, account := range accounts {
		items = append(items, models.AccountSummaryItem{
			ID:             account.ID,
			Status:         account.Status.Name,
			InitialBalance: account.InitialBalance,
			Balance:        account.Balance,
			CreatedAt:      account.CreatedAt,
		})
		total = total.Add(account.Balance)
	}

	return &models.CustomerSummary{
		CustomerID:   customer.ID,
		FullName:     customer.FullName(),
		Email:        customer.Email,
		TotalBalance: total,
		AccountCount: len(items),
		Accounts:     items,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}
