package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MoneyScale is the number of fractional digits a monetary value may carry
const MoneyScale = 2

var (
	ErrInvalidAmount          = errors.New("amount must be positive with at most two decimal places")
	ErrInvalidBalance         = errors.New("balance cannot be negative")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrOptimisticLockConflict = errors.New("optimistic lock conflict: version mismatch")
)

// InsufficientFundsError reports a rejected withdrawal together with the
// balance observed under the account lock.
type InsufficientFundsError struct {
	AccountID uint
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: account %d has %s, requested %s",
		e.AccountID, e.Balance.StringFixed(MoneyScale), e.Requested.StringFixed(MoneyScale))
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Account represents a bank account
type Account struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	CustomerID     uint            `gorm:"not null;index" json:"customer_id"`
	StatusID       uint            `gorm:"not null" json:"status_id"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0;check:chk_accounts_initial_balance,initial_balance >= 0" json:"initial_balance"`
	Balance        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0;check:chk_accounts_balance,balance >= 0" json:"balance"`
	Version        int             `gorm:"not null;default:1" json:"version"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Customer  Customer   `gorm:"foreignKey:CustomerID" json:"-"`
	Status    Status     `gorm:"foreignKey:StatusID" json:"-"`
	Movements []Movement `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.Version == 0 {
		a.Version = 1
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.CustomerID == 0 {
		return errors.New("customer ID is required")
	}

	if a.StatusID == 0 {
		return errors.New("status ID is required")
	}

	if a.Balance.IsNegative() || a.InitialBalance.IsNegative() {
		return ErrInvalidBalance
	}

	if !HasMoneyScale(a.Balance) || !HasMoneyScale(a.InitialBalance) {
		return ErrInvalidAmount
	}

	return nil
}

// Credit credits the account
func (a *Account) Credit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// Debit debits the account
func (a *Account) Debit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	if a.Balance.LessThan(amount) {
		return &InsufficientFundsError{AccountID: a.ID, Balance: a.Balance, Requested: amount}
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Apply applies an operation to the in-memory balance and returns the
// balances before and after. The account is left untouched on error.
func (a *Account) Apply(kind OperationKind, amount decimal.Decimal) (before, after decimal.Decimal, err error) {
	before = a.Balance

	switch kind {
	case OperationDeposit:
		err = a.Credit(amount)
	case OperationWithdrawal:
		err = a.Debit(amount)
	default:
		err = ErrUnsupportedOperation
	}
	if err != nil {
		return before, before, err
	}

	return before, a.Balance, nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// ValidateAmount checks that a movement amount is strictly positive and has
// no more than two fractional digits
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !HasMoneyScale(amount) {
		return ErrInvalidAmount
	}
	return nil
}

// HasMoneyScale reports whether the value is exactly representable in cents
func HasMoneyScale(v decimal.Decimal) bool {
	return v.Equal(v.Truncate(MoneyScale))
}
