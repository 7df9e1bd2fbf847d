package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifehub/backend/internal/application/usecase/assistant"
	domainerror "github.com/lifehub/backend/internal/domain/error"
	"github.com/lifehub/backend/internal/integration/entrypoint/dto"
	"github.com/lifehub/backend/internal/integration/entrypoint/middleware"
)

// AssistantController handles the conversational assistant endpoint.
type AssistantController struct {
	handleMessageUseCase *assistant.HandleMessageUseCase
}

// NewAssistantController creates a new assistant controller instance.
func NewAssistantController(handleMessageUseCase *assistant.HandleMessageUseCase) *AssistantController {
	return &AssistantController{
		handleMessageUseCase: handleMessageUseCase,
	}
}

// HandleMessage handles POST /assistant/message requests.
func (c *AssistantController) HandleMessage(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AssistantMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyMessage),
		})
		return
	}

	output, err := c.handleMessageUseCase.Execute(ctx.Request.Context(), assistant.HandleMessageInput{
		UserID:  userID,
		Message: req.Message,
	})
	if err != nil {
		c.handleAssistantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssistantMessageResponse(output))
}

// handleAssistantError handles assistant errors and returns appropriate HTTP
// responses.
func (c *AssistantController) handleAssistantError(ctx *gin.Context, err error) {
	var assistantErr *domainerror.AssistantError
	if errors.As(err, &assistantErr) {
		statusCode := c.getStatusCodeForAssistantError(assistantErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: assistantErr.Message,
			Code:  string(assistantErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAssistantError maps assistant error codes to HTTP status
// codes.
func (c *AssistantController) getStatusCodeForAssistantError(code domainerror.AssistantErrorCode) int {
	switch code {
	case domainerror.ErrCodeAssistantNotConfigured:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeEmptyMessage:
		return http.StatusBadRequest
	case domainerror.ErrCodeUnknownIntent,
		domainerror.ErrCodeAmbiguousTarget:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
