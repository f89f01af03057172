package usecase

import (
	"errors"
)

// Error categories. Handlers map them to HTTP status codes.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrAuthentication = errors.New("authentication failed")
	ErrProvider       = errors.New("notification provider failed")
	ErrInternal       = errors.New("internal error")
)

// ServiceError carries the message shown to the client and the category it
// belongs to. The underlying cause, if any, is kept for logging.
type ServiceError struct {
	Kind    error
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, message string) *ServiceError {
	return &ServiceError{Kind: kind, Message: message}
}

func wrapError(kind error, message string, err error) *ServiceError {
	return &ServiceError{Kind: kind, Message: message, Err: err}
}

// Auth
var (
	ErrCredentialsRequired = newError(ErrValidation, "Email/Phone and password required")
	ErrIdentifierRequired  = newError(ErrValidation, "Email or Phone required")
	ErrOTPRequired         = newError(ErrValidation, "Phone and OTP required")
	ErrNewPasswordRequired = newError(ErrValidation, "Email/Phone and new password required")
	ErrInvalidIdentifier   = newError(ErrValidation, "Enter valid email or 10-digit phone number")
	ErrAlreadyRegistered   = newError(ErrConflict, "This email or phone number is already registered. Please login instead.")
	ErrUserNotFound        = newError(ErrNotFound, "User not found")
	ErrInvalidPassword     = newError(ErrAuthentication, "Invalid password")
	ErrInvalidOTP          = newError(ErrValidation, "Invalid OTP")
	ErrSamePassword        = newError(ErrValidation, "New password cannot be the same as the old password")
	ErrPasswordReused      = newError(ErrValidation, "You cannot reuse an old password")
)

// Catalog
var (
	ErrUnknownCollection = newError(ErrNotFound, "Unknown collection")
	ErrInvalidPayload    = newError(ErrValidation, "Request body must be a JSON object")
)
