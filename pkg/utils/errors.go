package utils

import (
	"fmt"
	"net/http"
)

// CustomError represents a custom application error. Kind is the stable
// machine-readable label surfaced in error responses.
type CustomError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Common error constructors
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Kind:    "invalid_request",
		Message: message,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Kind:    "internal_error",
		Message: message,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Kind:    "validation_failed",
		Message: "Validation failed",
		Detail:  detail,
	}
}

// NewConfigurationError indicates the upstream credential is missing or the
// provider is otherwise unconfigured. Returned before any network call is made.
func NewConfigurationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusServiceUnavailable,
		Kind:    "provider_not_configured",
		Message: "Provider not configured",
		Detail:  detail,
	}
}

// NewUpstreamError indicates the completion provider call failed
func NewUpstreamError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Kind:    "upstream_failed",
		Message: "Completion request failed",
		Detail:  detail,
	}
}

// NewContractViolationError indicates the provider returned output that does
// not satisfy the declared response shape (e.g. invalid JSON)
func NewContractViolationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Kind:    "upstream_contract_violation",
		Message: "Provider response violated contract",
		Detail:  detail,
	}
}
