package dto

import (
	"time"

	"bank-ledger/internal/models"
)

// AddressRequest describes a new address created together with a customer
type AddressRequest struct {
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
}

// CreateCustomerRequest creates a customer at an existing address
// (address_id) or a new one (address)
type CreateCustomerRequest struct {
	FirstName string          `json:"first_name" validate:"required,max=100"`
	LastName  string          `json:"last_name" validate:"required,max=100"`
	Email     string          `json:"email" validate:"required,email,max=255"`
	BirthDate string          `json:"birth_date" validate:"required,past_date"`
	StatusID  uint            `json:"status_id" validate:"required,gt=0"`
	GenderID  uint            `json:"gender_id" validate:"required,gt=0"`
	AddressID uint            `json:"address_id,omitempty" validate:"required_without=Address"`
	Address   *AddressRequest `json:"address,omitempty" validate:"required_without=AddressID"`
}

func (r *AddressRequest) ToModel() *models.Address {
	return &models.Address{
		Street:     r.Street,
		City:       r.City,
		Country:    r.Country,
		PostalCode: r.PostalCode,
	}
}

// CustomerResponse represents a customer
type CustomerResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	BirthDate string    `json:"birth_date"`
	StatusID  uint      `json:"status_id"`
	GenderID  uint      `json:"gender_id"`
	AddressID uint      `json:"address_id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCustomerResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Email:     c.Email,
		BirthDate: c.BirthDate.Format("2006-01-02"),
		StatusID:  c.StatusID,
		GenderID:  c.GenderID,
		AddressID: c.AddressID,
		CreatedAt: c.CreatedAt,
	}
}

// AccountSummaryResponse is one account inside a customer summary
type AccountSummaryResponse struct {
	ID             uint      `json:"id"`
	Status         string    `json:"status"`
	InitialBalance string    `json:"initial_balance"`
	Balance        string    `json:"balance"`
	CreatedAt      time.Time `json:"created_at"`
}

// CustomerSummaryResponse aggregates a customer's accounts
type CustomerSummaryResponse struct {
	CustomerID   uint                     `json:"customer_id"`
	FullName     string                   `json:"full_name"`
	Email        string                   `json:"email"`
	TotalBalance string                   `json:"total_balance"`
	AccountCount int                      `json:"account_count"`
	Accounts     []AccountSummaryResponse `json:"accounts"`
	GeneratedAt  time.Time                `json:"generated_at"`
}

func NewCustomerSummaryResponse(s *models.CustomerSummary) CustomerSummaryResponse {
	accounts := make([]AccountSummaryResponse, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		accounts = append(accounts, AccountSummaryResponse{
			ID:             a.ID,
			Status:         a.Status,
			InitialBalance: a.InitialBalance.StringFixed(models.MoneyScale),
			Balance:        a.Balance.StringFixed(models.MoneyScale),
			CreatedAt:      a.CreatedAt,
		})
	}

	return CustomerSummaryResponse{
		CustomerID:   s.CustomerID,
		FullName:     s.FullName,
		Email:        s.Email,
		TotalBalance: s.TotalBalance.StringFixed(models.MoneyScale),
		AccountCount: s.AccountCount,
		Accounts:     accounts,
		GeneratedAt:  s.GeneratedAt,
	}
}
