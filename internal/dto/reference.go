package dto

import "bank-ledger/internal/models"

// TransactionTypeResponse represents a transaction type
type TransactionTypeResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Operation string `json:"operation"`
}

func NewTransactionTypeResponses(types []models.TransactionType) []TransactionTypeResponse {
	out := make([]TransactionTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, TransactionTypeResponse{ID: t.ID, Name: t.Name, Operation: t.Operation})
	}
	return out
}
