package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
	ErrInternal     = errors.New("internal error")
)

// Registration and login errors. Each wraps one of the categories above.
var (
	ErrValidation            = fmt.Errorf("validation failed: %w", ErrBadRequest)
	ErrNoPendingRegistration = fmt.Errorf("no pending registration for this email: %w", ErrBadRequest)
	ErrInvalidOTP            = fmt.Errorf("invalid OTP: %w", ErrBadRequest)
	ErrTooManyOTPAttempts    = fmt.Errorf("too many invalid OTP attempts: %w", ErrBadRequest)
	ErrUserNotFound          = fmt.Errorf("user not found: %w", ErrNotFound)
	ErrInvalidCredentials    = fmt.Errorf("invalid password: %w", ErrUnauthorized)
	ErrEmailTaken            = fmt.Errorf("email already registered: %w", ErrConflict)
	ErrPersistence           = fmt.Errorf("database error: %w", ErrInternal)
	ErrNotification          = fmt.Errorf("could not send OTP: %w", ErrInternal)
)

// Token verification errors.
var (
	ErrTokenExpired     = fmt.Errorf("token expired: %w", ErrUnauthorized)
	ErrInvalidSignature = fmt.Errorf("invalid token signature: %w", ErrUnauthorized)
)

// NotFound returns an ErrNotFound whose message names the missing resource.
func NotFound(resource string) error {
	return fmt.Errorf("%s not found: %w", resource, ErrNotFound)
}

// Invalid returns an ErrValidation carrying a client-facing reason.
func Invalid(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrValidation)
}
