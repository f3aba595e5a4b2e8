package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to business rules and validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound

	// Infrastructure Errors - errors related to remote services and platform capabilities
	ErrorTypeExternalAPI
	ErrorTypeFetch
	ErrorTypeParse
	ErrorTypeGeolocationDenied

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeFetch:
		return "FETCH_ERROR"
	case ErrorTypeParse:
		return "PARSE_ERROR"
	case ErrorTypeGeolocationDenied:
		return "GEOLOCATION_DENIED"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across adapters
const (
	ValidationError        = ErrorTypeValidation
	NotFoundError          = ErrorTypeNotFound
	ExternalAPIError       = ErrorTypeExternalAPI
	FetchError             = ErrorTypeFetch
	ParseError             = ErrorTypeParse
	GeolocationDeniedError = ErrorTypeGeolocationDenied
	ConfigurationError     = ErrorTypeConfiguration
)

// Remote resources named by fetch errors
const (
	ResourceTimings        = "timings"
	ResourceAddress        = "address"
	ResourceGeocodeForward = "geocode-forward"
	ResourceGeolocation    = "geolocation"
)

type AppError struct {
	Type     ErrorType
	Message  string
	Resource string
	Cause    error
}

func (e *AppError) Error() string {
	prefix := e.Type.String()
	if e.Resource != "" {
		prefix = fmt.Sprintf("%s(%s)", prefix, e.Resource)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
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

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// Infrastructure Error Constructors
func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

// NewFetchError reports a failed call to the named remote resource.
func NewFetchError(resource string, cause error) *AppError {
	return &AppError{
		Type:     FetchError,
		Message:  "failed to fetch " + resource,
		Resource: resource,
		Cause:    cause,
	}
}

func NewParseError(message string, cause error) *AppError {
	return Wrap(ParseError, message, cause)
}

func NewGeolocationDeniedError(message string, cause error) *AppError {
	return &AppError{
		Type:     GeolocationDeniedError,
		Message:  message,
		Resource: ResourceGeolocation,
		Cause:    cause,
	}
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// As returns the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func isType(err error, errorType ErrorType) bool {
	if appErr, ok := As(err); ok {
		return appErr.Type == errorType
	}
	return false
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return isType(err, NotFoundError)
}

func IsValidationError(err error) bool {
	return isType(err, ValidationError)
}

func IsParseError(err error) bool {
	return isType(err, ParseError)
}

func IsGeolocationDenied(err error) bool {
	return isType(err, GeolocationDeniedError)
}

func IsConfigurationError(err error) bool {
	return isType(err, ConfigurationError)
}

// IsFetchError reports whether err is a fetch failure; an empty resource matches any.
func IsFetchError(err error, resource string) bool {
	appErr, ok := As(err)
	if !ok || appErr.Type != FetchError {
		return false
	}
	return resource == "" || appErr.Resource == resource
}
