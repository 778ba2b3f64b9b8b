package dto

import (
	"time"

	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// ApplyMovementRequest is the payload of POST /movements. Amount accepts a
// JSON number or string.
type ApplyMovementRequest struct {
	AccountID         uint            `json:"account_id" validate:"required,gt=0"`
	TransactionTypeID uint            `json:"transaction_type_id" validate:"required,gt=0"`
	Amount            decimal.Decimal `json:"amount"`
	TransactionDate   *time.Time      `json:"transaction_date,omitempty"`
}

// MovementResponse is a committed movement
type MovementResponse struct {
	ID                uint      `json:"id"`
	Reference         string    `json:"reference"`
	AccountID         uint      `json:"account_id"`
	TransactionTypeID uint      `json:"transaction_type_id"`
	Amount            string    `json:"amount"`
	BalanceBefore     string    `json:"balance_before"`
	BalanceAfter      string    `json:"balance_after"`
	TransactionDate   time.Time `json:"transaction_date"`
	CreatedAt         time.Time `json:"created_at"`
}

// PaginationMeta represents offset pagination metadata
type PaginationMeta struct {
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"has_more"`
}

// ListMovementsResponse is one page of an account's movement history
type ListMovementsResponse struct {
	AccountID  uint               `json:"account_id"`
	Movements  []MovementResponse `json:"movements"`
	Pagination PaginationMeta     `json:"pagination"`
}

func NewMovementResponse(m *models.Movement) MovementResponse {
	return MovementResponse{
		ID:                m.ID,
		Reference:         m.Reference,
		AccountID:         m.AccountID,
		TransactionTypeID: m.TransactionTypeID,
		Amount:            m.Amount.StringFixed(models.MoneyScale),
		BalanceBefore:     m.BalanceBefore.StringFixed(models.MoneyScale),
		BalanceAfter:      m.BalanceAfter.StringFixed(models.MoneyScale),
		TransactionDate:   m.TransactionDate,
		CreatedAt:         m.CreatedAt,
	}
}

func NewListMovementsResponse(page *models.MovementPage) ListMovementsResponse {
	movements := make([]MovementResponse, 0, len(page.Movements))
	for i := range page.Movements {
		movements = append(movements, NewMovementResponse(&page.Movements[i]))
	}

	return ListMovementsResponse{
		AccountID: page.AccountID,
		Movements: movements,
		Pagination: PaginationMeta{
			Offset:  page.Offset,
			Limit:   page.Limit,
			Total:   page.Total,
			HasMore: int64(page.Offset+len(page.Movements)) < page.Total,
		},
	}
}
