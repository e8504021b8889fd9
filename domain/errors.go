package domain

import (
	"errors"
	"fmt"
)

// DomainError represents errors in the domain layer
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e DomainError) Unwrap() error {
	return e.Cause
}

// Domain error codes
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeFormatError  = "FORMAT_ERROR"
	ErrCodeFileNotFound = "FILE_NOT_FOUND"
	ErrCodeConfigError  = "CONFIG_ERROR"
	ErrCodeOutputError  = "OUTPUT_ERROR"
)

// NewDomainError creates a new domain error
func NewDomainError(code, message string, cause error) error {
	return DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates an invalid argument error
func NewValidationError(message string) error {
	return NewDomainError(ErrCodeInvalidInput, message, nil)
}

// NewFormatError creates a malformed bracketed text error
func NewFormatError(message string, cause error) error {
	return NewDomainError(ErrCodeFormatError, message, cause)
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string, cause error) error {
	return NewDomainError(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path), cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) error {
	return NewDomainError(ErrCodeConfigError, message, cause)
}

// NewOutputError creates an output error
func NewOutputError(message string, cause error) error {
	return NewDomainError(ErrCodeOutputError, message, cause)
}

// IsFormatError reports whether err carries the FORMAT_ERROR code.
func IsFormatError(err error) bool {
	return hasCode(err, ErrCodeFormatError)
}

// IsValidationError reports whether err carries the INVALID_INPUT code.
func IsValidationError(err error) bool {
	return hasCode(err, ErrCodeInvalidInput)
}

func hasCode(err error, code string) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
