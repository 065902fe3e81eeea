// Package error defines domain-specific errors for the BookMate application.
package error

import "errors"

// Ledger entry domain errors.
var (
	// ErrEntryNotFound is returned when a ledger entry is not found.
	ErrEntryNotFound = errors.New("ledger entry not found")

	// ErrEntryInvalidAmount is returned when the debit/credit columns are inconsistent.
	ErrEntryInvalidAmount = errors.New("invalid entry amount")

	// ErrEntryMissingFields is returned when required entry fields are missing.
	ErrEntryMissingFields = errors.New("missing required entry fields")

	// ErrNotAuthorizedEntry is returned when a user touches another user's entry.
	ErrNotAuthorizedEntry = errors.New("not authorized to modify entry")
)

// EntryErrorCode defines error codes for ledger entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	ErrCodeEntryInvalidAmount EntryErrorCode = "ENT-010001"
	ErrCodeEntryMissingFields EntryErrorCode = "ENT-010002"
	ErrCodeEntryInvalidDate   EntryErrorCode = "ENT-010003"
	ErrCodeEntryNotFound      EntryErrorCode = "ENT-020001"
	ErrCodeNotAuthorizedEntry EntryErrorCode = "ENT-020002"
)

// EntryError represents a ledger entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
