package services

import (
	"context"
	"errors"
	"fmt"

	"bank-ledger/internal/models"
	"bank-ledger/internal/repositories"
)

var (
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrStatusNotFound         = errors.New("status not found")
	ErrGenderNotFound         = errors.New("gender not found")
	ErrAddressNotFound        = errors.New("address not found")
	ErrInvalidTransactionType = errors.New("transaction type not found")
	ErrUnsupportedOperation   = models.ErrUnsupportedOperation
	ErrInvalidEmail           = models.ErrInvalidEmail
	ErrDuplicateEmail         = errors.New("email already registered")
)

// referenceValidator implements ReferenceValidatorInterface. It only reads,
// so a passing check can be invalidated by a concurrent writer; storage
// constraints remain the final guard.
type referenceValidator struct {
	referenceRepo repositories.ReferenceRepositoryInterface
	customerRepo  repositories.CustomerRepositoryInterface
}

// NewReferenceValidator creates a new reference validator
func NewReferenceValidator(
	referenceRepo repositories.ReferenceRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
) ReferenceValidatorInterface {
	return &referenceValidator{
		referenceRepo: referenceRepo,
		customerRepo:  customerRepo,
	}
}

// ValidateCustomerReferences checks status, gender and address in that order.
// A zero addressID skips the address check for customers created with an
// inline address.
func (v *referenceValidator) ValidateCustomerReferences(ctx context.Context, statusID, genderID, addressID uint) error {
	if err := v.checkStatus(ctx, statusID); err != nil {
		return err
	}

	if _, err := v.referenceRepo.GetGenderByID(ctx, genderID); err != nil {
		if errors.Is(err, repositories.ErrGenderNotFound) {
			return ErrGenderNotFound
		}
		return fmt.Errorf("failed to verify gender: %w", err)
	}

	if addressID == 0 {
		return nil
	}
	if _, err := v.referenceRepo.GetAddressByID(ctx, addressID); err != nil {
		if errors.Is(err, repositories.ErrAddressNotFound) {
			return ErrAddressNotFound
		}
		return fmt.Errorf("failed to verify address: %w", err)
	}

	return nil
}

// EnsureEmailAvailable rejects malformed or already registered emails.
// Comparison is case-insensitive.
func (v *referenceValidator) EnsureEmailAvailable(ctx context.Context, email string) error {
	normalized := models.NormalizeEmail(email)
	if !models.IsValidEmail(normalized) {
		return ErrInvalidEmail
	}

	exists, err := v.customerRepo.ExistsByEmail(ctx, normalized)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return ErrDuplicateEmail
	}

	return nil
}

func (v *referenceValidator) ValidateAccountReferences(ctx context.Context, statusID, customerID uint) error {
	if err := v.checkStatus(ctx, statusID); err != nil {
		return err
	}

	if _, err := v.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to verify customer: %w", err)
	}

	return nil
}

// ResolveOperation loads the transaction type and returns its operation kind
func (v *referenceValidator) ResolveOperation(ctx context.Context, transactionTypeID uint) (models.OperationKind, error) {
	transactionType, err := v.referenceRepo.GetTransactionTypeByID(ctx, transactionTypeID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionTypeNotFound) {
			return "", ErrInvalidTransactionType
		}
		return "", fmt.Errorf("failed to verify transaction type: %w", err)
	}

	kind, err := transactionType.Kind()
	if err != nil {
		return "", ErrUnsupportedOperation
	}
	return kind, nil
}

func (v *referenceValidator) checkStatus(ctx context.Context, statusID uint) error {
	if _, err := v.referenceRepo.GetStatusByID(ctx, statusID); err != nil {
		if errors.Is(err, repositories.ErrStatusNotFound) {
			return ErrStatusNotFound
		}
		return fmt.Errorf("failed to verify status: %w", err)
	}
	return nil
}
