package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bank-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrIntegrity         = errors.New("storage constraint violated")
	ErrVersionConflict   = models.ErrOptimisticLockConflict
	ErrInsufficientFunds = models.ErrInsufficientFunds
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %v", ErrIntegrity, err)
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByCustomerID retrieves all accounts of a customer, oldest first
func (r *accountRepository) GetByCustomerID(ctx context.Context, customerID uint) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).
		Preload("Status").
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for customer: %w", err)
	}
	return accounts, nil
}

// Exists reports whether an account with the id exists
func (r *accountRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return count > 0, nil
}

// ApplyMovement locks the account row, applies the operation to the balance
// and inserts the movement in one database transaction. The balance update is
// guarded by the version read under the lock; a lost race returns
// ErrVersionConflict and nothing is written. On success the movement carries
// its id and balances, and the updated account is returned.
func (r *accountRepository) ApplyMovement(ctx context.Context, kind models.OperationKind, movement *models.Movement) (*models.Account, error) {
	var updated *models.Account

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.Account

		// Row-level locking prevents concurrent balance modifications
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&account, movement.AccountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to get account for update: %w", err)
		}

		readVersion := account.Version
		before, after, err := account.Apply(kind, movement.Amount)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		result := tx.Model(&models.Account{}).
			Where("id = ? AND version = ?", account.ID, readVersion).
			UpdateColumns(map[string]interface{}{
				"balance":    after,
				"version":    gorm.Expr("version + 1"),
				"updated_at": now,
			})
		if result.Error != nil {
			if isConstraintViolation(result.Error) {
				return fmt.Errorf("%w: %v", ErrIntegrity, result.Error)
			}
			return fmt.Errorf("failed to update account balance: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrVersionConflict
		}

		movement.BalanceBefore = before
		movement.BalanceAfter = after
		if err := tx.Create(movement).Error; err != nil {
			if isConstraintViolation(err) {
				return fmt.Errorf("%w: %v", ErrIntegrity, err)
			}
			return fmt.Errorf("failed to create movement: %w", err)
		}

		account.Version = readVersion + 1
		account.UpdatedAt = now
		updated = &account
		return nil
	})
	if err != nil {
		movement.ID = 0
		return nil, err
	}

	return updated, nil
}
