package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrMovementImmutable is returned by the update hook; movements are append-only
var ErrMovementImmutable = errors.New("movements cannot be modified")

// Movement is one deposit or withdrawal applied to an account.
type Movement struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	AccountID         uint            `gorm:"not null;index:idx_movements_account_date,priority:1" json:"account_id"`
	TransactionTypeID uint            `gorm:"not null" json:"transaction_type_id"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null;check:chk_movements_amount,amount > 0" json:"amount"`
	BalanceBefore     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance_before"`
	BalanceAfter      decimal.Decimal `gorm:"type:decimal(15,2);not null;check:chk_movements_balance_after,balance_after >= 0" json:"balance_after"`
	TransactionDate   time.Time       `gorm:"not null;index:idx_movements_account_date,priority:2" json:"transaction_date"`
	Reference         string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"reference"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`

	// Associations
	Account         Account         `gorm:"foreignKey:AccountID" json:"-"`
	TransactionType TransactionType `gorm:"foreignKey:TransactionTypeID" json:"-"`
}

// BeforeCreate hook for Movement
func (m *Movement) BeforeCreate(tx *gorm.DB) error {
	if m.Reference == "" {
		m.Reference = GenerateMovementReference()
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if m.TransactionDate.IsZero() {
		m.TransactionDate = m.CreatedAt
	}
	// transaction_date is always stored in UTC
	m.TransactionDate = m.TransactionDate.UTC()

	return m.Validate()
}

func (m *Movement) BeforeUpdate(tx *gorm.DB) error {
	return ErrMovementImmutable
}

func (m *Movement) BeforeDelete(tx *gorm.DB) error {
	return ErrMovementImmutable
}

// Validate validates the movement fields
func (m *Movement) Validate() error {
	if m.AccountID == 0 {
		return errors.New("account ID is required")
	}

	if m.TransactionTypeID == 0 {
		return errors.New("transaction type ID is required")
	}

	if err := ValidateAmount(m.Amount); err != nil {
		return err
	}

	if m.BalanceAfter.IsNegative() {
		return ErrInvalidBalance
	}

	if !m.BalanceAfter.Sub(m.BalanceBefore).Abs().Equal(m.Amount) {
		return errors.New("balance calculation mismatch")
	}

	return nil
}

// TableName returns the table name for Movement
func (m *Movement) TableName() string {
	return "movements"
}

// GenerateMovementReference generates a unique movement reference
func GenerateMovementReference() string {
	return "MOV-" + uuid.NewString()
}
