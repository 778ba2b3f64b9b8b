package handlers

import (
	"net/http"

	"bank-ledger/internal/dto"
	"bank-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// ReferenceHandler exposes read-only reference data
type ReferenceHandler struct {
	customers services.CustomerServiceInterface
}

func NewReferenceHandler(customers services.CustomerServiceInterface) *ReferenceHandler {
	return &ReferenceHandler{customers: customers}
}

// ListTransactionTypes lists the transaction types movements can use
// @Summary List transaction types
// @Tags Reference
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.TransactionTypeResponse}
// @Router /transaction-types [get]
func (h *ReferenceHandler) ListTransactionTypes(c echo.Context) error {
	types, err := h.customers.ListTransactionTypes(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewTransactionTypeResponses(types)})
}
