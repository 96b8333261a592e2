package domain

import (
	"errors"
	"fmt"

	"berry_buddy/pkg/errcodes"
)

// Kind classifies an AppError and decides the HTTP status it is reported with.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindRateLimited
	KindUnavailable
)

// AppError is a domain error of the application.
type AppError struct {
	Kind    Kind
	Code    errcodes.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// NewError creates an internal error with the given code.
func NewError(code errcodes.ErrorCode, message string) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    code,
		Message: message,
	}
}

// WrapError wraps err as an internal error with the given code.
func WrapError(err error, code errcodes.ErrorCode, message string) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: errcodes.NotFound, Message: message}
}

func NewInvalidArgumentError(message string) *AppError {
	return &AppError{Kind: KindInvalidArgument, Code: errcodes.BadRequest, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Code: errcodes.Unauthorized, Message: message}
}

// NewConfigError reports a backend that was never configured for this process.
func NewConfigError(message string) *AppError {
	return &AppError{Kind: KindUnavailable, Code: errcodes.ConfigError, Message: message}
}

// WithKind returns a copy of e with the kind replaced.
func (e *AppError) WithKind(kind Kind) *AppError {
	c := *e
	c.Kind = kind

	return &c
}

// IsAppError reports whether err is or wraps an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode extracts the code of the outermost AppError in err's chain.
func GetCode(err error) (errcodes.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}

	return "", false
}

// IsNotFound reports whether err is a NotFound AppError.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound
}

const (
	MessageNotFoundOrNotOwner    = "Not found or not owner"
	MessageAuthRequired          = "Authorization header required"
	MessageDatabaseNotConfigured = "Database is not configured. Set PG_DSN in .env."
	MessageAuthNotConfigured     = "Supabase publishable key is not configured. Set SUPABASE_PUBLISHABLE_KEY in .env."
	MessageStorageNotConfigured  = "Photo storage is not configured. Set STORAGE_S3_ACCESS_KEY_ID and STORAGE_S3_SECRET_ACCESS_KEY in .env."
	MessageRouteNotFound         = "Resource not found"
)
