package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountSummaryItem struct {
	ID             uint            `json:"id"`
	Status         string          `json:"status"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Balance        decimal.Decimal `json:"balance"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CustomerSummary aggregates a customer's accounts. TotalBalance is the exact
// sum of the listed balances.
type CustomerSummary struct {
	CustomerID   uint                 `json:"customer_id"`
	FullName     string               `json:"full_name"`
	Email        string               `json:"email"`
	TotalBalance decimal.Decimal      `json:"total_balance"`
	AccountCount int                  `json:"account_count"`
	Accounts     []AccountSummaryItem `json:"accounts"`
	GeneratedAt  time.Time            `json:"generated_at"`
}

// MovementPage is one window of an account's movement history
type MovementPage struct {
	AccountID uint       `json:"account_id"`
	Movements []Movement `json:"movements"`
	Offset    int        `json:"offset"`
	Limit     int        `json:"limit"`
	Total     int64      `json:"total"`
}
