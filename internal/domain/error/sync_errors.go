// Package error defines domain-specific errors for the LifeHub application.
package error

import "errors"

// Sync orchestrator errors. Mirror failures are best-effort by contract: they
// are logged at the orchestrator boundary and never propagated to the caller
// of the primary mutation.
var (
	// ErrMirrorWriteFailed is returned when a mirror create/update/delete fails.
	ErrMirrorWriteFailed = errors.New("mirror write failed")

	// ErrMirrorMissing is returned when a cross-reference points at a missing entity.
	ErrMirrorMissing = errors.New("mirrored entity not found")

	// ErrRecomputeFailed is returned when recomputing a finance goal's current amount fails.
	ErrRecomputeFailed = errors.New("finance goal recompute failed")
)

// SyncErrorCode defines error codes for sync orchestrator errors.
// Format: SYN-XXYYYY where XX is category and YYYY is specific error.
type SyncErrorCode string

const (
	ErrCodeMirrorWriteFailed SyncErrorCode = "SYN-010001"
	ErrCodeMirrorMissing     SyncErrorCode = "SYN-010002"
	ErrCodeRecomputeFailed   SyncErrorCode = "SYN-010003"
)

// SyncError represents a best-effort sync failure with code and message.
type SyncError struct {
	Code    SyncErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError with the given code and message.
func NewSyncError(code SyncErrorCode, message string, err error) *SyncError {
	return &SyncError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
