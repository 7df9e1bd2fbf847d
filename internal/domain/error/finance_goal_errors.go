// Package error defines domain-specific errors for the LifeHub application.
package error

import "errors"

// Finance goal domain errors.
var (
	// ErrFinanceGoalNotFound is returned when a finance goal is not found in the system.
	ErrFinanceGoalNotFound = errors.New("finance goal not found")

	// ErrUnauthorizedFinanceGoalAccess is returned when user is not authorized to access a finance goal.
	ErrUnauthorizedFinanceGoalAccess = errors.New("unauthorized access to finance goal")

	// ErrInvalidFinanceGoalType is returned when the finance goal type is invalid.
	ErrInvalidFinanceGoalType = errors.New("invalid finance goal type")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrInvalidCurrentAmount is returned when a current amount correction is negative.
	ErrInvalidCurrentAmount = errors.New("current amount cannot be negative")
)

// FinanceGoalErrorCode defines error codes for finance goal errors.
// Format: FIN-XXYYYY where XX is category and YYYY is specific error.
type FinanceGoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeFinanceGoalNotFound      FinanceGoalErrorCode = "FIN-010001"
	ErrCodeUnauthorizedFinanceGoal  FinanceGoalErrorCode = "FIN-010002"
	ErrCodeInvalidFinanceGoalType   FinanceGoalErrorCode = "FIN-010003"
	ErrCodeInvalidTargetAmount      FinanceGoalErrorCode = "FIN-010004"
	ErrCodeInvalidCurrentAmount     FinanceGoalErrorCode = "FIN-010005"
	ErrCodeMissingFinanceGoalFields FinanceGoalErrorCode = "FIN-010006"
)

// FinanceGoalError represents a finance goal error with code and message.
type FinanceGoalError struct {
	Code    FinanceGoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FinanceGoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinanceGoalError) Unwrap() error {
	return e.Err
}

// NewFinanceGoalError creates a new FinanceGoalError with the given code and message.
func NewFinanceGoalError(code FinanceGoalErrorCode, message string, err error) *FinanceGoalError {
	return &FinanceGoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
