// Package error defines domain-specific errors for the LifeHub application.
package error

import "errors"

// Assistant errors.
var (
	// ErrAssistantNotConfigured is returned when no assistant model API key is set.
	ErrAssistantNotConfigured = errors.New("assistant is not configured")

	// ErrEmptyMessage is returned when an inbound message is empty.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrUnknownIntent is returned when a message cannot be mapped to a command.
	ErrUnknownIntent = errors.New("could not understand the message")

	// ErrAmbiguousTarget is returned when a message matches no or multiple goals/habits.
	ErrAmbiguousTarget = errors.New("could not match the message to a single goal or habit")
)

// AssistantErrorCode defines error codes for assistant errors.
// Format: AST-XXYYYY where XX is category and YYYY is specific error.
type AssistantErrorCode string

const (
	ErrCodeAssistantNotConfigured AssistantErrorCode = "AST-010001"
	ErrCodeEmptyMessage           AssistantErrorCode = "AST-010002"
	ErrCodeUnknownIntent          AssistantErrorCode = "AST-020001"
	ErrCodeAmbiguousTarget        AssistantErrorCode = "AST-020002"
)

// AssistantError represents an assistant error with code and message.
type AssistantError struct {
	Code    AssistantErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AssistantError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AssistantError) Unwrap() error {
	return e.Err
}

// NewAssistantError creates a new AssistantError with the given code and message.
func NewAssistantError(code AssistantErrorCode, message string, err error) *AssistantError {
	return &AssistantError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
