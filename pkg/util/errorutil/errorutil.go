package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// Client-facing messages. Kept in Portuguese to match the public API.
const (
	MsgUserExists         = "Usuário já existe"
	MsgInvalidCredentials = "Credenciais inválidas"
	MsgServerFault        = "Erro no servidor"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

// NewUserExists signals a registration attempt with an already-taken email.
func NewUserExists() error {
	return NewDomainError("USER_EXISTS", MsgUserExists, http.StatusBadRequest)
}

// NewInvalidCredentials signals a failed login. The message is deliberately
// identical for unknown email and wrong password, so a caller cannot tell
// which field was wrong.
func NewInvalidCredentials() error {
	return NewDomainError("INVALID_CREDENTIALS", MsgInvalidCredentials, http.StatusBadRequest)
}

// NewValidationError signals a request body missing required fields.
func NewValidationError(message string) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest)
}

// NewInternalError wraps an unexpected fault. The original error is retained
// for logging but never reaches the client.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    MsgServerFault,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError, defaulting to an
// internal fault for anything unrecognized.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    MsgServerFault,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
