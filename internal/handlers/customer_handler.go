package handlers

import (
	"net/http"
	"time"

	"bank-ledger/internal/dto"
	"bank-ledger/internal/errors"
	"bank-ledger/internal/services"
	"bank-ledger/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customers services.CustomerServiceInterface
	query     services.QueryServiceInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customers services.CustomerServiceInterface, query services.QueryServiceInterface) *CustomerHandler {
	return &CustomerHandler{customers: customers, query: query}
}

// CreateCustomer registers a customer
// @Summary Create customer
// @Description Creates a customer at an existing address or together with a new one
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Customer"
// @Success 201 {object} dto.CustomerResponse "Customer created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 404 {object} errors.ErrorResponse "REFERENCE_001 - Unknown status, gender or address"
// @Failure 409 {object} errors.ErrorResponse "CUSTOMER_002 - Email already registered"
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req dto.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	birthDate, err := time.Parse(validation.DateLayout, req.BirthDate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("birth_date: must be YYYY-MM-DD"))
	}

	input := services.CreateCustomerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		BirthDate: birthDate,
		StatusID:  req.StatusID,
		GenderID:  req.GenderID,
		AddressID: req.AddressID,
	}
	if req.Address != nil {
		input.Address = req.Address.ToModel()
	}

	customer, err := h.customers.CreateCustomer(c.Request().Context(), input)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCustomerResponse(customer))
}

// GetCustomer returns a customer
// @Summary Get customer
// @Tags Customers
// @Produce json
// @Param customerId path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_003 - Invalid customer ID"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{customerId} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID, err := parseIDParam(c, "customerId")
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	customer, err := h.customers.GetCustomer(c.Request().Context(), customerID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCustomerResponse(customer))
}

// GetSummary returns the customer's accounts and their total balance
// @Summary Customer summary
// @Tags Customers
// @Produce json
// @Param customerId path int true "Customer ID"
// @Success 200 {object} dto.CustomerSummaryResponse
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_003 - Invalid customer ID"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{customerId}/summary [get]
func (h *CustomerHandler) GetSummary(c echo.Context) error {
	customerID, err := parseIDParam(c, "customerId")
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	summary, err := h.query.CustomerSummary(c.Request().Context(), customerID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCustomerSummaryResponse(summary))
}
