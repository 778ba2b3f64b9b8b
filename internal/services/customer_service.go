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
	ErrInvalidCustomer = errors.New("invalid customer data")
	ErrAddressRequired = errors.New("either address_id or address is required")
)

// CreateCustomerInput creates a customer at an existing address (AddressID)
// or at a new one (Address). Exactly one of them must be set.
type CreateCustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	BirthDate time.Time
	StatusID  uint
	GenderID  uint
	AddressID uint
	Address   *models.Address
}

// OpenAccountInput opens an account for a customer. A zero StatusID means
// the "active" status.
type OpenAccountInput struct {
	CustomerID     uint
	StatusID       uint
	InitialBalance decimal.Decimal
}

// customerService implements CustomerServiceInterface
type customerService struct {
	customerRepo  repositories.CustomerRepositoryInterface
	accountRepo   repositories.AccountRepositoryInterface
	referenceRepo repositories.ReferenceRepositoryInterface
	validator     ReferenceValidatorInterface
	metrics       MetricsRecorderInterface
	ledgerLogger  LedgerLoggerInterface
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repositories.CustomerRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	referenceRepo repositories.ReferenceRepositoryInterface,
	validator ReferenceValidatorInterface,
	metrics MetricsRecorderInterface,
	ledgerLogger LedgerLoggerInterface,
) CustomerServiceInterface {
	return &customerService{
		customerRepo:  customerRepo,
		accountRepo:   accountRepo,
		referenceRepo: referenceRepo,
		validator:     validator,
		metrics:       metrics,
		ledgerLogger:  ledgerLogger,
	}
}

// CreateCustomer validates references and email uniqueness, then stores the
// customer. A unique-email race lost at insert time still yields
// ErrDuplicateEmail.
func (s *customerService) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*models.Customer, error) {
	if (input.AddressID == 0) == (input.Address == nil) {
		return nil, ErrAddressRequired
	}

	customer := &models.Customer{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     models.NormalizeEmail(input.Email),
		BirthDate: input.BirthDate,
		StatusID:  input.StatusID,
		GenderID:  input.GenderID,
		AddressID: input.AddressID,
	}
	if err := customer.ValidateProfile(); err != nil {
		if errors.Is(err, models.ErrInvalidEmail) {
			return nil, ErrInvalidEmail
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCustomer, err)
	}
	if input.Address != nil {
		if err := input.Address.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCustomer, err)
		}
	}

	if err := s.validator.ValidateCustomerReferences(ctx, input.StatusID, input.GenderID, input.AddressID); err != nil {
		return nil, err
	}
	if err := s.validator.EnsureEmailAvailable(ctx, customer.Email); err != nil {
		return nil, err
	}

	var err error
	if input.Address != nil {
		err = s.customerRepo.CreateWithAddress(ctx, customer, input.Address)
	} else {
		err = s.customerRepo.Create(ctx, customer)
	}
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrEmailAlreadyExists):
			return nil, ErrDuplicateEmail
		case errors.Is(err, repositories.ErrIntegrity):
			return nil, err
		default:
			return nil, fmt.Errorf("failed to create customer: %w", err)
		}
	}

	s.metrics.IncrementCounter(MetricCustomerCreated, nil)
	s.ledgerLogger.LogCustomerCreated(ctx, customer.ID, customer.Email)
	return customer, nil
}

// OpenAccount creates an account whose balance starts at the initial balance
func (s *customerService) OpenAccount(ctx context.Context, input OpenAccountInput) (*models.Account, error) {
	if input.InitialBalance.IsNegative() || !models.HasMoneyScale(input.InitialBalance) {
		return nil, ErrInvalidAmount
	}

	statusID := input.StatusID
	if statusID == 0 {
		status, err := s.referenceRepo.GetStatusByName(ctx, models.StatusActive)
		if err != nil {
			if errors.Is(err, repositories.ErrStatusNotFound) {
				return nil, ErrStatusNotFound
			}
			return nil, fmt.Errorf("failed to resolve default status: %w", err)
		}
		statusID = status.ID
	}

	if err := s.validator.ValidateAccountReferences(ctx, statusID, input.CustomerID); err != nil {
		return nil, err
	}

	account := &models.Account{
		CustomerID:     input.CustomerID,
		StatusID:       statusID,
		InitialBalance: input.InitialBalance,
		Balance:        input.InitialBalance,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrIntegrity) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to open account: %w", err)
	}

	s.metrics.IncrementCounter(MetricAccountOpened, nil)
	s.ledgerLogger.LogAccountOpened(ctx, account)
	return account, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// ListTransactionTypes returns all transaction types ordered by id
func (s *customerService) ListTransactionTypes(ctx context.Context) ([]models.TransactionType, error) {
	types, err := s.referenceRepo.ListTransactionTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction types: %w", err)
	}
	return types, nil
}
