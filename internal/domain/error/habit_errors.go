// Package error defines domain-specific errors for the LifeHub application.
package error

import "errors"

// Habit domain errors.
var (
	// ErrHabitNotFound is returned when a habit is not found in the system.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrUnauthorizedHabitAccess is returned when user is not authorized to access a habit.
	ErrUnauthorizedHabitAccess = errors.New("unauthorized access to habit")

	// ErrInvalidHabitFrequency is returned when the habit frequency is invalid.
	ErrInvalidHabitFrequency = errors.New("invalid habit frequency")

	// ErrInvalidWeeklyTarget is returned when the weekly target count is out of range.
	ErrInvalidWeeklyTarget = errors.New("weekly target must be between 1 and 7")

	// ErrHabitArchived is returned when attempting to check in against an archived habit.
	ErrHabitArchived = errors.New("habit is archived")

	// ErrCheckinInFuture is returned when a check-in date lies in the future.
	ErrCheckinInFuture = errors.New("check-in date cannot be in the future")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HAB-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeHabitNotFound           HabitErrorCode = "HAB-010001"
	ErrCodeUnauthorizedHabitAccess HabitErrorCode = "HAB-010002"
	ErrCodeInvalidHabitFrequency   HabitErrorCode = "HAB-010003"
	ErrCodeInvalidWeeklyTarget     HabitErrorCode = "HAB-010004"
	ErrCodeMissingHabitFields      HabitErrorCode = "HAB-010005"

	// Check-in errors (02XXXX)
	ErrCodeHabitArchived   HabitErrorCode = "HAB-020001"
	ErrCodeCheckinInFuture HabitErrorCode = "HAB-020002"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
