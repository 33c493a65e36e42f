package errors

import (
	"net/http"

	"pairup/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// NewDatabaseExecuteError wraps an unexpected store failure, keeping the
// proximate cause string for diagnosis while presenting a generic message.
func NewDatabaseExecuteError(err error, message string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)

	return errors.Wrap(base, message)
}

// Predefined error types
var (
	// Generic errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Permission denied",
		"",
	)

	// Account-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet strength requirements",
		"",
	)

	ErrConsentRequired = NewBaseError(
		http.StatusBadRequest,
		"CONSENT_REQUIRED",
		"You must agree to the data consent to create an account",
		"",
	)

	// OAuth-related errors
	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"OAuth authentication failed",
		"",
	)

	ErrOAuthCodeInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_CODE_INVALID",
		"Invalid authorization code",
		"",
	)

	// Age-gate errors
	ErrAgeTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"AGE_TOKEN_INVALID",
		"Age verification is missing or expired",
		"",
	)

	ErrUnderage = NewBaseError(
		http.StatusForbidden,
		"UNDERAGE",
		"You must be of legal drinking age to use PairUp",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"Username is already taken",
		"",
	)

	// Pairing-related errors
	ErrPairingNotFound = NewBaseError(
		http.StatusNotFound,
		"PAIRING_NOT_FOUND",
		"Pairing not found",
		"",
	)

	ErrNotPairingAuthor = NewBaseError(
		http.StatusForbidden,
		"NOT_PAIRING_AUTHOR",
		"Only the pairing's author can do this",
		"",
	)

	ErrRealityScoreRange = NewBaseError(
		http.StatusBadRequest,
		"REALITY_SCORE_RANGE",
		"Reality score must be between 1 and 5",
		"",
	)

	ErrSubmissionTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"SUBMISSION_TIMEOUT",
		"Publishing the pairing timed out, please try again",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Annotation-related errors
	ErrAnnotationNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"ANNOTATION_NOT_CONFIGURED",
		"Gemini API key not configured",
		"",
	)

	ErrAnnotationMalformed = NewBaseError(
		http.StatusInternalServerError,
		"ANNOTATION_MALFORMED",
		"Failed to parse AI response",
		"",
	)

	ErrAnnotationTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"ANNOTATION_TIMEOUT",
		"Image analysis timed out, please try again",
		"",
	)
)
