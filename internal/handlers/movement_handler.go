package handlers

import (
	"net/http"
	"strings"
	"time"

	"bank-ledger/internal/dto"
	"bank-ledger/internal/errors"
	"bank-ledger/internal/models"
	"bank-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// MovementHandler handles movement-related HTTP requests
type MovementHandler struct {
	ledger services.LedgerServiceInterface
	query  services.QueryServiceInterface
}

// NewMovementHandler creates a new movement handler
func NewMovementHandler(ledger services.LedgerServiceInterface, query services.QueryServiceInterface) *MovementHandler {
	return &MovementHandler{ledger: ledger, query: query}
}

// ApplyMovement applies a deposit or withdrawal to an account
// @Summary Apply movement
// @Description Applies a deposit or withdrawal and returns the recorded movement
// @Tags Movements
// @Accept json
// @Produce json
// @Param request body dto.ApplyMovementRequest true "Movement"
// @Success 201 {object} dto.MovementResponse "Movement applied"
// @Failure 400 {object} errors.ErrorResponse "MOVEMENT_001, VALIDATION_001, MOVEMENT_002 or MOVEMENT_004"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 or MOVEMENT_003"
// @Failure 409 {object} errors.ErrorResponse "MOVEMENT_005 - Concurrent modification"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Storage unavailable"
// @Router /movements [post]
func (h *MovementHandler) ApplyMovement(c echo.Context) error {
	var req dto.ApplyMovementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	// the amount is judged before anything else, as the ledger does
	if err := models.ValidateAmount(req.Amount); err != nil {
		return SendServiceError(c, services.ErrInvalidAmount)
	}

	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	input := services.ApplyMovementInput{
		AccountID:         req.AccountID,
		TransactionTypeID: req.TransactionTypeID,
		Amount:            req.Amount,
	}
	if req.TransactionDate != nil {
		input.TransactionDate = *req.TransactionDate
	} else {
		input.TransactionDate = time.Now().UTC()
	}

	movement, err := h.ledger.ApplyMovement(c.Request().Context(), input)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewMovementResponse(movement))
}

// GetMovement returns a committed movement by its reference
// @Summary Get movement
// @Tags Movements
// @Produce json
// @Param reference path string true "Movement reference"
// @Success 200 {object} dto.MovementResponse
// @Failure 404 {object} errors.ErrorResponse "MOVEMENT_006 - Movement not found"
// @Router /movements/{reference} [get]
func (h *MovementHandler) GetMovement(c echo.Context) error {
	reference := strings.TrimSpace(c.Param("reference"))
	if reference == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("reference is required"))
	}

	movement, err := h.query.GetMovement(c.Request().Context(), reference)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMovementResponse(movement))
}
