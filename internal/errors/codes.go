package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral                 ErrorCode = "VALIDATION_001"
	ValidationRequiredField           ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat           ErrorCode = "VALIDATION_003"
	ValidationOutOfRange              ErrorCode = "VALIDATION_004"
	ValidationInvalidDate             ErrorCode = "VALIDATION_005"
	ValidationInvalidFrequency        ErrorCode = "VALIDATION_006"
	ValidationConflictingEndCondition ErrorCode = "VALIDATION_007"
	ValidationNonPositiveInterval     ErrorCode = "VALIDATION_008"
	ValidationNonPositiveOccurrences  ErrorCode = "VALIDATION_009"
	ValidationInvalidAmount           ErrorCode = "VALIDATION_010"
	ValidationInvalidInstallments     ErrorCode = "VALIDATION_011"
	ValidationInvalidOrigin           ErrorCode = "VALIDATION_012"
)

// Resource error codes (RESOURCE_*)
const (
	ResourceNotFound ErrorCode = "RESOURCE_001"
)

// Consistency error codes (CONSISTENCY_*)
const (
	ConsistencyDuplicateInstance       ErrorCode = "CONSISTENCY_001"
	ConsistencyImmutablePlanField      ErrorCode = "CONSISTENCY_002"
	ConsistencyInstallmentOccurrence   ErrorCode = "CONSISTENCY_003"
	ConsistencyNotArchived             ErrorCode = "CONSISTENCY_004"
	ConsistencyDuplicateAllocationSlot ErrorCode = "CONSISTENCY_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

const unknownCodeMessage = "An error occurred"

type codeSpec struct {
	status  int
	message string
}

// registry holds the HTTP status and default message of every code.
// Missing and foreign resources share RESOURCE_001 so existence never leaks.
var registry = map[ErrorCode]codeSpec{
	AuthMissingToken:       {http.StatusUnauthorized, "Authorization token is required"},
	AuthExpiredToken:       {http.StatusUnauthorized, "Authorization token has expired"},
	AuthInvalidTokenFormat: {http.StatusUnauthorized, "Invalid authorization token format"},

	ValidationGeneral:                 {http.StatusBadRequest, "Validation failed"},
	ValidationRequiredField:           {http.StatusBadRequest, "Required field is missing"},
	ValidationInvalidFormat:           {http.StatusBadRequest, "Invalid field format"},
	ValidationOutOfRange:              {http.StatusBadRequest, "Field value is out of allowed range"},
	ValidationInvalidDate:             {http.StatusBadRequest, "Dates must use the YYYY-MM-DD format"},
	ValidationInvalidFrequency:        {http.StatusBadRequest, "Frequency must be one of daily, weekly, monthly, bi-monthly, quarterly, semi-annually, annually"},
	ValidationConflictingEndCondition: {http.StatusBadRequest, "An end date and an occurrence count cannot both be set"},
	ValidationNonPositiveInterval:     {http.StatusBadRequest, "Interval must be a positive integer"},
	ValidationNonPositiveOccurrences:  {http.StatusBadRequest, "Occurrences must be a positive integer"},
	ValidationInvalidAmount:           {http.StatusBadRequest, "Amount must be a positive decimal with at most two fraction digits"},
	ValidationInvalidInstallments:     {http.StatusBadRequest, "Number of installments is out of the allowed range"},
	ValidationInvalidOrigin:           {http.StatusBadRequest, "Transaction origin is inconsistent"},

	ResourceNotFound: {http.StatusNotFound, "Resource not found"},

	ConsistencyDuplicateInstance:       {http.StatusConflict, "A transaction already exists for this schedule date"},
	ConsistencyImmutablePlanField:      {http.StatusConflict, "Installment totals cannot be changed once installments exist"},
	ConsistencyInstallmentOccurrence:   {http.StatusConflict, "A single installment cannot be removed, delete the whole plan instead"},
	ConsistencyNotArchived:             {http.StatusConflict, "Resource is not archived"},
	ConsistencyDuplicateAllocationSlot: {http.StatusConflict, "A budget allocation already exists for this period"},

	SystemInternalError:      {http.StatusInternalServerError, "An unexpected error occurred. Please contact support with trace ID"},
	SystemDatabaseError:      {http.StatusInternalServerError, "Database connection error"},
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Service temporarily unavailable"},
	SystemUnexpectedError:    {http.StatusInternalServerError, "An unexpected error occurred"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
}

// GetErrorMessage returns the default message for code.
func GetErrorMessage(code ErrorCode) string {
	if spec, ok := registry[code]; ok {
		return spec.message
	}
	return unknownCodeMessage
}

// GetHTTPStatus returns the status for code; unregistered codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if spec, ok := registry[code]; ok {
		return spec.status
	}
	return http.StatusInternalServerError
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := registry[code]
	return ok
}
