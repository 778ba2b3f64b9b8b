package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound      ErrorCode = "CUSTOMER_001"
	CustomerAlreadyExists ErrorCode = "CUSTOMER_002"
	CustomerInvalidID     ErrorCode = "CUSTOMER_003"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound       ErrorCode = "ACCOUNT_001"
	AccountInvalidID      ErrorCode = "ACCOUNT_002"
	AccountInvalidBalance ErrorCode = "ACCOUNT_003"
)

// Movement error codes (MOVEMENT_*)
const (
	MovementInvalidAmount        ErrorCode = "MOVEMENT_001"
	MovementInsufficientFunds    ErrorCode = "MOVEMENT_002"
	MovementInvalidType          ErrorCode = "MOVEMENT_003"
	MovementUnsupportedOperation ErrorCode = "MOVEMENT_004"
	MovementConflict             ErrorCode = "MOVEMENT_005"
	MovementNotFound             ErrorCode = "MOVEMENT_006"
)

// Reference data error codes (REFERENCE_*)
const (
	ReferenceNotFound  ErrorCode = "REFERENCE_001"
	ReferenceIntegrity ErrorCode = "REFERENCE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRequestTimeout     ErrorCode = "SYSTEM_007"
	SystemRouteNotFound      ErrorCode = "SYSTEM_008"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",

	// Customer errors
	CustomerNotFound:      "Customer not found",
	CustomerAlreadyExists: "A customer with this email already exists",
	CustomerInvalidID:     "Invalid customer ID format",

	// Account errors
	AccountNotFound:       "Account not found",
	AccountInvalidID:      "Invalid account ID format",
	AccountInvalidBalance: "Initial balance must be zero or positive with at most two decimal places",

	// Movement errors
	MovementInvalidAmount:        "Movement amount must be positive with at most two decimal places",
	MovementInsufficientFunds:    "Insufficient account balance for this withdrawal",
	MovementInvalidType:          "Transaction type not found",
	MovementUnsupportedOperation: "Transaction type has an unsupported operation",
	MovementConflict:             "The account was modified concurrently. Please retry",
	MovementNotFound:             "Movement not found",

	// Reference data errors
	ReferenceNotFound:  "Referenced entity not found",
	ReferenceIntegrity: "The request violates a storage constraint",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRequestTimeout:     "The request was cancelled before it completed",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
