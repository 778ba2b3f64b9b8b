package handlers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"

	"bank-ledger/internal/errors"
	"bank-ledger/internal/models"
	"bank-ledger/internal/services"
	"bank-ledger/internal/validation"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// 1. SendError - client and business errors (4xx), e.g.
//    SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//
// 2. SendServiceError - any error returned by a service. Known sentinels are
//    mapped to their code, everything else goes through SendSystemError.
//
// 3. SendSystemError - internal errors. The cause is logged, never returned.
//
// Do not use echo.NewHTTPError or c.JSON directly for errors.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs the internal error and sends a generic 500 response
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "internal error",
		"error", cause,
		"request_id", traceID,
		"path", c.Path(),
		"client_ip", getClientIP(c),
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError reports request validation failures as field details
func SendValidationError(c echo.Context, err error) error {
	errorResponse := errors.NewValidationErrorFromList(validation.FormatErrors(err), getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// SendServiceError maps a service error onto its API error code
func SendServiceError(c echo.Context, err error) error {
	var fundsErr *models.InsufficientFundsError
	if stderrors.As(err, &fundsErr) {
		return SendError(c, errors.MovementInsufficientFunds,
			errors.WithMetadata("current_balance", fundsErr.Balance.StringFixed(models.MoneyScale)),
			errors.WithMetadata("requested", fundsErr.Requested.StringFixed(models.MoneyScale)),
		)
	}

	code, ok := serviceErrorCode(err)
	if !ok {
		return SendSystemError(c, err)
	}
	return SendError(c, code)
}

func serviceErrorCode(err error) (errors.ErrorCode, bool) {
	switch {
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.SystemRequestTimeout, true
	case stderrors.Is(err, services.ErrInvalidAmount):
		return errors.MovementInvalidAmount, true
	case stderrors.Is(err, services.ErrInvalidTransactionType):
		return errors.MovementInvalidType, true
	case stderrors.Is(err, services.ErrUnsupportedOperation):
		return errors.MovementUnsupportedOperation, true
	case stderrors.Is(err, services.ErrConflict):
		return errors.MovementConflict, true
	case stderrors.Is(err, services.ErrMovementNotFound):
		return errors.MovementNotFound, true
	case stderrors.Is(err, services.ErrAccountNotFound):
		return errors.AccountNotFound, true
	case stderrors.Is(err, services.ErrCustomerNotFound):
		return errors.CustomerNotFound, true
	case stderrors.Is(err, services.ErrDuplicateEmail):
		return errors.CustomerAlreadyExists, true
	case stderrors.Is(err, services.ErrInvalidEmail):
		return errors.ValidationInvalidEmail, true
	case stderrors.Is(err, services.ErrInvalidCustomer), stderrors.Is(err, services.ErrAddressRequired):
		return errors.ValidationGeneral, true
	case stderrors.Is(err, services.ErrInvalidPagination):
		return errors.ValidationOutOfRange, true
	case stderrors.Is(err, services.ErrStatusNotFound),
		stderrors.Is(err, services.ErrGenderNotFound),
		stderrors.Is(err, services.ErrAddressNotFound):
		return errors.ReferenceNotFound, true
	case stderrors.Is(err, services.ErrIntegrity):
		return errors.ReferenceIntegrity, true
	case stderrors.Is(err, services.ErrStorageUnavailable):
		return errors.SystemServiceUnavailable, true
	}
	return "", false
}
