package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifehub/backend/internal/application/usecase/summary"
	domainerror "github.com/lifehub/backend/internal/domain/error"
	"github.com/lifehub/backend/internal/integration/entrypoint/dto"
	"github.com/lifehub/backend/internal/integration/entrypoint/middleware"
)

// SummaryController handles dashboard summary endpoints.
type SummaryController struct {
	goalsSummaryUseCase  *summary.GoalsSummaryUseCase
	habitsSummaryUseCase *summary.HabitsSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	goalsSummaryUseCase *summary.GoalsSummaryUseCase,
	habitsSummaryUseCase *summary.HabitsSummaryUseCase,
) *SummaryController {
	return &SummaryController{
		goalsSummaryUseCase:  goalsSummaryUseCase,
		habitsSummaryUseCase: habitsSummaryUseCase,
	}
}

// GoalsSummary handles GET /summaries/goals requests.
func (c *SummaryController) GoalsSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.goalsSummaryUseCase.Execute(ctx.Request.Context(), summary.GoalsSummaryInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalsSummaryResponse(output))
}

// HabitsSummary handles GET /summaries/habits requests.
func (c *SummaryController) HabitsSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.habitsSummaryUseCase.Execute(ctx.Request.Context(), summary.HabitsSummaryInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitsSummaryResponse(output))
}
