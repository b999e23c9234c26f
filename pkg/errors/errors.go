package errors

import (
	stderrors "errors"
	"fmt"
)

type ErrorType int

// Domain errors
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound

	// Provider side: ErrorTypeProvider carries a message the weather provider
	// reported itself, ErrorTypeExternalAPI anything else that went wrong talking to it.
	ErrorTypeProvider
	ErrorTypeExternalAPI
	ErrorTypeRateLimit

	// System/Configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeProvider:
		return "PROVIDER_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeRateLimit:
		return "RATE_LIMIT_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	ProviderError      = ErrorTypeProvider
	ExternalAPIError   = ErrorTypeExternalAPI
	RateLimitError     = ErrorTypeRateLimit
	ConfigurationError = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// NewProviderError wraps a human-readable message reported by the weather provider.
// The message is shown to the user verbatim.
func NewProviderError(message string) *AppError {
	return New(ProviderError, message)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

func NewRateLimitError(message string, cause error) *AppError {
	return Wrap(RateLimitError, message, cause)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// MessageOf returns the user-facing message of err: the AppError message when
// there is one in the chain, err.Error() otherwise.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsProviderError(err error) bool {
	return TypeOf(err) == ProviderError
}

func IsExternalAPIError(err error) bool {
	return TypeOf(err) == ExternalAPIError
}

func IsRateLimitError(err error) bool {
	return TypeOf(err) == RateLimitError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
