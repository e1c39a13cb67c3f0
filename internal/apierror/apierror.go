package apierror

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrConflict          ErrorCode = "CONFLICT"
	ErrInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrTransactionFailed ErrorCode = "TRANSACTION_FAILED"
	ErrInternalServer    ErrorCode = "INTERNAL_SERVER_ERROR"
)

type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause when Details carries one, so a
// TRANSACTION_FAILED error still answers errors.Is/As questions about the
// failure that aborted the scope.
func (e APIError) Unwrap() error {
	if cause, ok := e.Details.(error); ok {
		return cause
	}
	return nil
}

func NewAPIError(code ErrorCode, message string, details interface{}) APIError {
	logrus.Error(details)
	return APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewTransactionError wraps a failure raised between begin and commit. The
// original cause is kept so callers can still distinguish a missing record
// from a storage fault.
func NewTransactionError(cause error) APIError {
	return APIError{
		Code:    ErrTransactionFailed,
		Message: fmt.Sprintf("transaction failed: %v", cause),
		Details: cause,
	}
}

// Code returns the outermost APIError code. Errors outside the taxonomy map
// to ErrInternalServer.
func Code(err error) ErrorCode {
	if apiErr, ok := err.(APIError); ok {
		return apiErr.Code
	}
	return ErrInternalServer
}

// RootCode walks the wrapped causes and returns the innermost APIError code.
// Errors outside the taxonomy map to ErrInternalServer.
func RootCode(err error) ErrorCode {
	code := ErrInternalServer
	for err != nil {
		if apiErr, ok := err.(APIError); ok {
			code = apiErr.Code
			err = apiErr.Unwrap()
			continue
		}
		break
	}
	return code
}

func MapErrorToHTTPStatus(err error) int {
	switch RootCode(err) {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	case ErrInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
