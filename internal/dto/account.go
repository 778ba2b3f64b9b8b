package dto

import (
	"time"

	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest opens an account. StatusID defaults to "active".
type CreateAccountRequest struct {
	CustomerID     uint            `json:"customer_id" validate:"required,gt=0"`
	StatusID       uint            `json:"status_id,omitempty"`
	InitialBalance decimal.Decimal `json:"initial_balance" validate:"money"`
}

// AccountResponse represents an account
type AccountResponse struct {
	ID             uint      `json:"id"`
	CustomerID     uint      `json:"customer_id"`
	StatusID       uint      `json:"status_id"`
	InitialBalance string    `json:"initial_balance"`
	Balance        string    `json:"balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BalanceResponse is the committed balance of an account
type BalanceResponse struct {
	AccountID uint   `json:"account_id"`
	Balance   string `json:"balance"`
}

func NewAccountResponse(a *models.Account) AccountResponse {
	return AccountResponse{
		ID:             a.ID,
		CustomerID:     a.CustomerID,
		StatusID:       a.StatusID,
		InitialBalance: a.InitialBalance.StringFixed(models.MoneyScale),
		Balance:        a.Balance.StringFixed(models.MoneyScale),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
