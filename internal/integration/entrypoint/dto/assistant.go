package dto

import (
	"github.com/lifehub/backend/internal/application/usecase/assistant"
)

// AssistantMessageRequest represents an inbound assistant chat message.
type AssistantMessageRequest struct {
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

// AssistantMessageResponse represents the assistant's reply.
type AssistantMessageResponse struct {
	Intent string `json:"intent"`
	Reply  string `json:"reply"`
}

// ToAssistantMessageResponse converts the assistant output to its DTO.
func ToAssistantMessageResponse(out *assistant.HandleMessageOutput) AssistantMessageResponse {
	return AssistantMessageResponse{
		Intent: string(out.Intent),
		Reply:  out.Reply,
	}
}
