package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeParsing  ErrorType = "PARSING"
	ErrTypeStorage  ErrorType = "STORAGE"
	ErrTypeNotFound ErrorType = "NOT_FOUND"
	ErrTypeConfig   ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration-related error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// MissingInputError reports a required input table that could not be read.
// The pipeline treats it as fatal: no outputs are written when any of the
// five source tables is absent.
type MissingInputError struct {
	Table string
	Path  string
	Cause error
}

// Error implements the error interface
func (e *MissingInputError) Error() string {
	return fmt.Sprintf("[%s] required input table %q not found at %s", ErrTypeNotFound, e.Table, e.Path)
}

// Unwrap allows errors.Is and errors.As to work with MissingInputError
func (e *MissingInputError) Unwrap() error {
	return e.Cause
}

// NewMissingInputError creates a missing-input error for a named table
func NewMissingInputError(table, path string, cause error) *MissingInputError {
	return &MissingInputError{Table: table, Path: path, Cause: cause}
}

// IsMissingInput reports whether err is (or wraps) a MissingInputError
func IsMissingInput(err error) bool {
	var target *MissingInputError
	return errors.As(err, &target)
}
