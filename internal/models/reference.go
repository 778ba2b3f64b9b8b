package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// OperationKind is the balance effect a transaction type has on an account.
type OperationKind string

const (
	OperationDeposit    OperationKind = "deposit"
	OperationWithdrawal OperationKind = "withdrawal"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusBlocked  = "blocked"
)

var (
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrInvalidReferenceName = errors.New("reference name is required")
)

// ParseOperationKind normalizes a stored or submitted operation name.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseOperationKind(s string) (OperationKind, error) {
	switch OperationKind(strings.ToLower(strings.TrimSpace(s))) {
	case OperationDeposit:
		return OperationDeposit, nil
	case OperationWithdrawal:
		return OperationWithdrawal, nil
	default:
		return "", ErrUnsupportedOperation
	}
}

// Status is a lifecycle state shared by customers and accounts
type Status struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (s *Status) BeforeCreate(tx *gorm.DB) error {
	s.Name = strings.ToLower(strings.TrimSpace(s.Name))
	if s.Name == "" {
		return ErrInvalidReferenceName
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	return nil
}

func (s *Status) TableName() string {
	return "statuses"
}

type Gender struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (g *Gender) BeforeCreate(tx *gorm.DB) error {
	g.Name = strings.ToLower(strings.TrimSpace(g.Name))
	if g.Name == "" {
		return ErrInvalidReferenceName
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	return nil
}

func (g *Gender) TableName() string {
	return "genders"
}

// TransactionType names a kind of movement and the operation it applies.
// Rows are reference data and never change once seeded.
type TransactionType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Operation string    `gorm:"type:varchar(20);not null" json:"operation"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate lower-cases the operation name. Unknown operations are stored
// as-is and rejected when a movement tries to use them.
func (t *TransactionType) BeforeCreate(tx *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return ErrInvalidReferenceName
	}
	t.Operation = strings.ToLower(strings.TrimSpace(t.Operation))
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	return nil
}

// Kind resolves the operation of the transaction type
func (t *TransactionType) Kind() (OperationKind, error) {
	return ParseOperationKind(t.Operation)
}

func (t *TransactionType) TableName() string {
	return "transaction_types"
}

// Default reference data loaded on a fresh database
var (
	DefaultStatuses = []string{StatusActive, StatusInactive, StatusBlocked}
	DefaultGenders  = []string{"female", "male", "non_binary", "undisclosed"}

	DefaultTransactionTypes = []TransactionType{
		{Name: "Cash Deposit", Operation: string(OperationDeposit)},
		{Name: "Wire Transfer In", Operation: string(OperationDeposit)},
		{Name: "Cash Withdrawal", Operation: string(OperationWithdrawal)},
		{Name: "Bill Payment", Operation: string(OperationWithdrawal)},
	}
)
