package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bank-ledger/internal/models"

	"gorm.io/gorm"
)

var (
	ErrStatusNotFound          = errors.New("status not found")
	ErrGenderNotFound          = errors.New("gender not found")
	ErrAddressNotFound         = errors.New("address not found")
	ErrTransactionTypeNotFound = errors.New("transaction type not found")
)

// referenceRepository implements ReferenceRepositoryInterface
type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository creates a new reference data repository
func NewReferenceRepository(db *gorm.DB) ReferenceRepositoryInterface {
	return &referenceRepository{
		db: db,
	}
}

func (r *referenceRepository) first(ctx context.Context, dest interface{}, notFound error, what string, conds ...interface{}) error {
	if err := r.db.WithContext(ctx).First(dest, conds...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return fmt.Errorf("failed to get %s: %w", what, err)
	}
	return nil
}

func (r *referenceRepository) GetStatusByID(ctx context.Context, id uint) (*models.Status, error) {
	var status models.Status
	if err := r.first(ctx, &status, ErrStatusNotFound, "status", id); err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *referenceRepository) GetStatusByName(ctx context.Context, name string) (*models.Status, error) {
	var status models.Status
	if err := r.first(ctx, &status, ErrStatusNotFound, "status", "name = ?", strings.ToLower(strings.TrimSpace(name))); err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *referenceRepository) GetGenderByID(ctx context.Context, id uint) (*models.Gender, error) {
	var gender models.Gender
	if err := r.first(ctx, &gender, ErrGenderNotFound, "gender", id); err != nil {
		return nil, err
	}
	return &gender, nil
}

func (r *referenceRepository) GetAddressByID(ctx context.Context, id uint) (*models.Address, error) {
	var address models.Address
	if err := r.first(ctx, &address, ErrAddressNotFound, "address", id); err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *referenceRepository) GetTransactionTypeByID(ctx context.Context, id uint) (*models.TransactionType, error) {
	var transactionType models.TransactionType
	if err := r.first(ctx, &transactionType, ErrTransactionTypeNotFound, "transaction type", id); err != nil {
		return nil, err
	}
	return &transactionType, nil
}

func (r *referenceRepository) ListStatuses(ctx context.Context) ([]models.Status, error) {
	var statuses []models.Status
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return statuses, nil
}

func (r *referenceRepository) ListTransactionTypes(ctx context.Context) ([]models.TransactionType, error) {
	var types []models.TransactionType
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list transaction types: %w", err)
	}
	return types, nil
}
