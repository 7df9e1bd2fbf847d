package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/usecase/habit"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
	"github.com/lifehub/backend/internal/integration/entrypoint/dto"
	"github.com/lifehub/backend/internal/integration/entrypoint/middleware"
)

// HabitController handles habit and check-in ledger endpoints.
type HabitController struct {
	createUseCase        *habit.CreateHabitUseCase
	listUseCase          *habit.ListHabitsUseCase
	updateUseCase        *habit.UpdateHabitUseCase
	deleteUseCase        *habit.DeleteHabitUseCase
	toggleCheckinUseCase *habit.ToggleCheckinUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	createUseCase *habit.CreateHabitUseCase,
	listUseCase *habit.ListHabitsUseCase,
	updateUseCase *habit.UpdateHabitUseCase,
	deleteUseCase *habit.DeleteHabitUseCase,
	toggleCheckinUseCase *habit.ToggleCheckinUseCase,
) *HabitController {
	return &HabitController{
		createUseCase:        createUseCase,
		listUseCase:          listUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		toggleCheckinUseCase: toggleCheckinUseCase,
	}
}

// Create handles POST /habits requests.
func (c *HabitController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingHabitFields),
		})
		return
	}

	input := habit.CreateHabitInput{
		UserID:       userID,
		Name:         req.Name,
		Category:     req.Category,
		WeeklyTarget: req.WeeklyTarget,
		Color:        req.Color,
	}
	if req.Frequency != "" {
		frequency := entity.HabitFrequency(req.Frequency)
		input.Frequency = &frequency
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHabitResponse(output.Habit))
}

// List handles GET /habits requests.
func (c *HabitController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := habit.ListHabitsInput{
		UserID:     userID,
		OnlyActive: ctx.Query("active") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitListResponse(output.Habits))
}

// Update handles PATCH /habits/:id requests.
func (c *HabitController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID",
			Code:  string(domainerror.ErrCodeHabitNotFound),
		})
		return
	}

	var req dto.UpdateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingHabitFields),
		})
		return
	}

	input := habit.UpdateHabitInput{
		UserID:       userID,
		HabitID:      habitID,
		Name:         req.Name,
		Category:     req.Category,
		WeeklyTarget: req.WeeklyTarget,
		Color:        req.Color,
		Active:       req.Active,
	}
	if req.Frequency != nil {
		frequency := entity.HabitFrequency(*req.Frequency)
		input.Frequency = &frequency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit))
}

// Delete handles DELETE /habits/:id requests.
func (c *HabitController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID",
			Code:  string(domainerror.ErrCodeHabitNotFound),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), habit.DeleteHabitInput{
		UserID:  userID,
		HabitID: habitID,
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteHabitResponse{
		Archived: output.Archived,
	})
}

// ToggleCheckin handles POST /habits/:id/checkin requests.
func (c *HabitController) ToggleCheckin(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID",
			Code:  string(domainerror.ErrCodeHabitNotFound),
		})
		return
	}

	// An empty body is valid; the toggle then applies to today.
	var req dto.ToggleCheckinRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
				Code:  string(domainerror.ErrCodeMissingHabitFields),
			})
			return
		}
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingHabitFields),
		})
		return
	}

	input := habit.ToggleCheckinInput{
		UserID:  userID,
		HabitID: habitID,
		Date:    date,
		Note:    req.Note,
		Source:  entity.SourceApp,
	}

	output, err := c.toggleCheckinUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCheckinResponse(output.Checkin))
}

// handleHabitError handles habit errors and returns appropriate HTTP responses.
func (c *HabitController) handleHabitError(ctx *gin.Context, err error) {
	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		statusCode := c.getStatusCodeForHabitError(habitErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHabitError maps habit error codes to HTTP status codes.
func (c *HabitController) getStatusCodeForHabitError(code domainerror.HabitErrorCode) int {
	switch code {
	case domainerror.ErrCodeHabitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedHabitAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidHabitFrequency,
		domainerror.ErrCodeInvalidWeeklyTarget,
		domainerror.ErrCodeMissingHabitFields,
		domainerror.ErrCodeCheckinInFuture:
		return http.StatusBadRequest
	case domainerror.ErrCodeHabitArchived:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
