package repositories

import (
	"context"

	"bank-ledger/internal/models"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	GetByCustomerID(ctx context.Context, customerID uint) ([]models.Account, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ApplyMovement(ctx context.Context, kind models.OperationKind, movement *models.Movement) (*models.Account, error)
}

// MovementRepositoryInterface defines the contract for movement repository operations
type MovementRepositoryInterface interface {
	GetByReference(ctx context.Context, reference string) (*models.Movement, error)
	GetByAccountID(ctx context.Context, accountID uint, offset, limit int) ([]models.Movement, int64, error)
}

// CustomerRepositoryInterface defines the contract for customer repository operations
type CustomerRepositoryInterface interface {
	Create(ctx context.Context, customer *models.Customer) error
	CreateWithAddress(ctx context.Context, customer *models.Customer, address *models.Address) error
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ReferenceRepositoryInterface defines read access to reference data
type ReferenceRepositoryInterface interface {
	GetStatusByID(ctx context.Context, id uint) (*models.Status, error)
	GetStatusByName(ctx context.Context, name string) (*models.Status, error)
	GetGenderByID(ctx context.Context, id uint) (*models.Gender, error)
	GetAddressByID(ctx context.Context, id uint) (*models.Address, error)
	GetTransactionTypeByID(ctx context.Context, id uint) (*models.TransactionType, error)
	ListStatuses(ctx context.Context) ([]models.Status, error)
	ListTransactionTypes(ctx context.Context) ([]models.TransactionType, error)
}
