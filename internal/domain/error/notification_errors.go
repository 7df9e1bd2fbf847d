// Package error defines domain-specific errors for the LifeHub application.
package error

import "errors"

// Notification delivery errors.
var (
	// ErrNotificationJobNotFound is returned when a notification job is not found.
	ErrNotificationJobNotFound = errors.New("notification job not found")

	// ErrInvalidTemplate is returned when a notification template type is unknown.
	ErrInvalidTemplate = errors.New("invalid notification template")

	// ErrSendFailed is returned when the delivery provider rejects a send.
	ErrSendFailed = errors.New("failed to send notification")

	// ErrProviderNotConfigured is returned when no delivery provider API key is set.
	ErrProviderNotConfigured = errors.New("notification provider not configured")
)

// NotificationErrorCode defines error codes for notification errors.
// Format: NTF-XXYYYY where XX is category and YYYY is specific error.
type NotificationErrorCode string

const (
	ErrCodeNotificationJobNotFound NotificationErrorCode = "NTF-010001"
	ErrCodeInvalidTemplate         NotificationErrorCode = "NTF-010002"
	ErrCodeTransientSendFailure    NotificationErrorCode = "NTF-020001"
	ErrCodePermanentSendFailure    NotificationErrorCode = "NTF-020002"
	ErrCodeProviderNotConfigured   NotificationErrorCode = "NTF-020003"
)

// NotificationError represents a notification error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
