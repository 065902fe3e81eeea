package error

import "errors"

// Option catalog domain errors.
var (
	// ErrOptionSetNotFound is returned when no option set exists for a field.
	ErrOptionSetNotFound = errors.New("option set not found")

	// ErrUnknownOptionField is returned for a field outside property/operation/payment.
	ErrUnknownOptionField = errors.New("unknown option field")

	// ErrOptionValuesEmpty is returned when an option set update carries no values.
	ErrOptionValuesEmpty = errors.New("option values must not be empty")
)

// OptionErrorCode defines error codes for option catalog errors.
// Format: OPT-XXYYYY where XX is category and YYYY is specific error.
type OptionErrorCode string

const (
	ErrCodeUnknownOptionField OptionErrorCode = "OPT-010001"
	ErrCodeOptionValuesEmpty  OptionErrorCode = "OPT-010002"
	ErrCodeOptionSetNotFound  OptionErrorCode = "OPT-020001"
)

// OptionError represents an option catalog error with code and message.
type OptionError struct {
	Code    OptionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OptionError) Unwrap() error {
	return e.Err
}

// NewOptionError creates a new OptionError with the given code and message.
func NewOptionError(code OptionErrorCode, message string, err error) *OptionError {
	return &OptionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
