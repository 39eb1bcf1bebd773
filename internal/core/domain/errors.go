package domain

import (
	"errors"
	"fmt"
)

// DomainError is a coded error reported to the operator.
//
// Code identifies the error class and drives errors.Is; Details carries
// the operator-facing sentence for one occurrence.
type DomainError struct {
	Code    string // e.g. "VM-DATA-4040"
	Message string // short class description
	Details string // operator-facing sentence, optional
	Cause   error  // underlying error, optional
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// Detailf is WithDetails with fmt.Sprintf formatting.
func (e *DomainError) Detailf(format string, args ...any) *DomainError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Describe returns the single line shown to the operator for err.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var de *DomainError
	if errors.As(err, &de) {
		if de.Details != "" {
			return de.Details
		}
		if de.Cause != nil {
			return de.Message + ": " + de.Cause.Error()
		}
		return de.Message
	}
	return err.Error()
}

// Command errors (CMD).
var (
	// ErrInvalidSyntax indicates a wrong argument count or argument shape.
	ErrInvalidSyntax = NewDomainError("VM-CMD-4000", "invalid syntax")

	// ErrUnknownCommand indicates no registry entry matched the input.
	ErrUnknownCommand = NewDomainError("VM-CMD-4040", "unknown command")

	// ErrMisconfiguredCommand indicates a registry action with no handler.
	ErrMisconfiguredCommand = NewDomainError("VM-CMD-5000", "misconfigured command")
)

// Data errors (DATA).
var (
	// ErrNotFound indicates a referenced context, folder or mailbox does not exist.
	ErrNotFound = NewDomainError("VM-DATA-4040", "not found")

	// ErrConflict indicates a duplicate domain, folder name, DTMF or mailbox.
	ErrConflict = NewDomainError("VM-DATA-4090", "conflict")

	// ErrDependentRecords indicates a delete blocked by child records.
	ErrDependentRecords = NewDomainError("VM-DATA-4091", "dependent records exist")
)

// System errors (SYS).
var (
	// ErrStorage indicates a failure inside the data-access layer.
	ErrStorage = NewDomainError("VM-SYS-5001", "storage error")
)

// Store integrity errors, returned by the data-access layer.
var (
	// ErrRecordNotSaved indicates Remove was given a record without an ID.
	ErrRecordNotSaved = ErrStorage.WithDetails("instance has no id.")

	// ErrRecordMissing indicates the record's ID is not in the store.
	ErrRecordMissing = ErrStorage.WithDetails("instance does not exist in database.")
)
