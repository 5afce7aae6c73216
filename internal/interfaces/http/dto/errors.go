package dto

import "net/http"

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation and input error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// Domain error codes surfaced by the transfer core. These pass through the
// HTTP layer unchanged so API clients see the same taxonomy the domain
// raises.
const (
	// ErrCodeBankAccountNotFound is used when no account matches the
	// submitted identity triple
	ErrCodeBankAccountNotFound = "BANK_ACCOUNT_NOT_FOUND"
	// ErrCodeInsufficientBalance is used when the balance cannot cover the
	// batch total
	ErrCodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	// ErrCodeInvalidAmount is used when an amount does not parse as a
	// non-negative decimal
	ErrCodeInvalidAmount = "INVALID_AMOUNT"
	// ErrCodeAmountOverflow is used when an amount or batch total exceeds
	// the representable range of minor units
	ErrCodeAmountOverflow = "AMOUNT_OVERFLOW"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation and input errors -> 400 Bad Request
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound: http.StatusNotFound,
	ErrCodeConflict: http.StatusConflict,

	// Domain errors
	ErrCodeBankAccountNotFound: http.StatusNotFound,
	ErrCodeInsufficientBalance: http.StatusUnprocessableEntity,
	ErrCodeInvalidAmount:       http.StatusUnprocessableEntity,
	ErrCodeAmountOverflow:      http.StatusUnprocessableEntity,

	// Generic domain sentinels
	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"INVALID_INPUT":        http.StatusBadRequest,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
