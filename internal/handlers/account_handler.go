package handlers

import (
	stderrors "errors"
	"net/http"

	"bank-ledger/internal/dto"
	"bank-ledger/internal/errors"
	"bank-ledger/internal/models"
	"bank-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	customers services.CustomerServiceInterface
	query     services.QueryServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(customers services.CustomerServiceInterface, query services.QueryServiceInterface) *AccountHandler {
	return &AccountHandler{customers: customers, query: query}
}

// CreateAccount opens an account for an existing customer
// @Summary Open account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account"
// @Success 201 {object} dto.AccountResponse "Account opened"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 or REFERENCE_001"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	account, err := h.customers.OpenAccount(c.Request().Context(), services.OpenAccountInput{
		CustomerID:     req.CustomerID,
		StatusID:       req.StatusID,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidAmount) {
			return SendError(c, errors.AccountInvalidBalance)
		}
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewAccountResponse(account))
}

// GetAccount returns an account
// @Summary Get account
// @Tags Accounts
// @Produce json
// @Param accountId path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 - Invalid account ID"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	account, err := h.query.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// GetBalance returns the committed balance of an account
// @Summary Get balance
// @Tags Accounts
// @Produce json
// @Param accountId path int true "Account ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 - Invalid account ID"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId}/balance [get]
func (h *AccountHandler) GetBalance(c echo.Context) error {
	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	balance, err := h.query.GetAccountBalance(c.Request().Context(), accountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID: accountID,
		Balance:   balance.StringFixed(models.MoneyScale),
	})
}

// ListMovements returns a page of the account's movements, oldest first
// @Summary List movements
// @Tags Accounts
// @Produce json
// @Param accountId path int true "Account ID"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 or VALIDATION_004"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId}/movements [get]
func (h *AccountHandler) ListMovements(c echo.Context) error {
	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	offset, err := getIntParam(c, "offset", 0)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	limit, err := getIntParam(c, "limit", services.DefaultMovementPageSize)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	page, err := h.query.ListMovements(c.Request().Context(), accountID, offset, limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListMovementsResponse(page))
}
