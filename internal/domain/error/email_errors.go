package error

import "errors"

// Email delivery domain errors.
var (
	// ErrEmailSendFailed is returned when an email could not be delivered.
	ErrEmailSendFailed = errors.New("failed to send email")
)

// EmailErrorCode defines error codes for email delivery errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Permanent failures must not be retried.
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-010001"
	// Temporary failures may be retried.
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-010002"
)

// EmailError represents an email delivery error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// IsPermanent reports whether the failure should not be retried.
func (e *EmailError) IsPermanent() bool {
	return e.Code == ErrCodePermanentEmailFailure
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
