// Package error defines domain-specific errors for the LifeHub application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrInvalidGoalType is returned when the goal type is invalid.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrInvalidTargetValue is returned when the target value is invalid (negative).
	ErrInvalidTargetValue = errors.New("invalid target value")

	// ErrInvalidProgressDelta is returned when a progress delta is zero or negative.
	ErrInvalidProgressDelta = errors.New("progress delta must be greater than zero")

	// ErrProgressNotFound is returned when a progress ledger entry is not found.
	ErrProgressNotFound = errors.New("progress entry not found")

	// ErrGoalNotActive is returned when attempting to log progress against a non-active goal.
	ErrGoalNotActive = errors.New("goal is not active")

	// ErrGoalTitleTooLong is returned when the goal title exceeds the maximum length.
	ErrGoalTitleTooLong = errors.New("goal title too long")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalType        GoalErrorCode = "GOL-010003"
	ErrCodeInvalidTargetValue     GoalErrorCode = "GOL-010004"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010005"
	ErrCodeGoalTitleTooLong       GoalErrorCode = "GOL-010006"

	// Progress ledger errors (02XXXX)
	ErrCodeInvalidProgressDelta GoalErrorCode = "GOL-020001"
	ErrCodeProgressNotFound     GoalErrorCode = "GOL-020002"
	ErrCodeGoalNotActive        GoalErrorCode = "GOL-020003"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
