package repositories

import (
	"context"
	"errors"
	"fmt"

	"bank-ledger/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMovementNotFound = errors.New("movement not found")
)

// movementRepository implements MovementRepositoryInterface. Movements are
// written only through AccountRepositoryInterface.ApplyMovement.
type movementRepository struct {
	db *gorm.DB
}

// NewMovementRepository creates a new movement repository
func NewMovementRepository(db *gorm.DB) MovementRepositoryInterface {
	return &movementRepository{
		db: db,
	}
}

// GetByReference retrieves a movement by reference
func (r *movementRepository) GetByReference(ctx context.Context, reference string) (*models.Movement, error) {
	var movement models.Movement
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&movement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovementNotFound
		}
		return nil, fmt.Errorf("failed to get movement by reference: %w", err)
	}
	return &movement, nil
}

// GetByAccountID retrieves movements for an account in application order
// (transaction date, then id) with pagination
func (r *movementRepository) GetByAccountID(ctx context.Context, accountID uint, offset, limit int) ([]models.Movement, int64, error) {
	var movements []models.Movement
	var total int64

	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Movement{}).
		Where("account_id = ?", accountID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count movements: %w", err)
	}

	if err := db.Where("account_id = ?", accountID).
		Order("transaction_date ASC").
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&movements).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get movements: %w", err)
	}

	return movements, total, nil
}
