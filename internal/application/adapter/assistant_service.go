// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// AssistantIntent classifies what an inbound assistant message asks for.
type AssistantIntent string

const (
	IntentLogProgress   AssistantIntent = "log_progress"
	IntentToggleCheckin AssistantIntent = "toggle_checkin"
	IntentUnknown       AssistantIntent = "unknown"
)

// AssistantParseRequest carries the message plus the user's goals and habits
// so the model can resolve free-text names to known targets.
type AssistantParseRequest struct {
	Message string
	Goals   []AssistantTarget
	Habits  []AssistantTarget
}

// AssistantTarget is a candidate goal or habit the message may refer to.
type AssistantTarget struct {
	ID   string
	Name string
	Unit string
}

// AssistantCommand is the structured command parsed from a message.
type AssistantCommand struct {
	Intent     AssistantIntent
	TargetID   string  // ID of the matched goal or habit
	DeltaValue float64 // For log_progress
	Note       string
	Reply      string // Suggested reply text for the sender
}

// AssistantService defines the interface for parsing assistant messages.
type AssistantService interface {
	// Parse maps a free-text message to a structured command.
	Parse(ctx context.Context, request *AssistantParseRequest) (*AssistantCommand, error)

	// IsAvailable checks if the assistant model is configured.
	IsAvailable() bool
}
