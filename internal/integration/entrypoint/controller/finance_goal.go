package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/application/usecase/financegoal"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
	"github.com/lifehub/backend/internal/integration/entrypoint/dto"
	"github.com/lifehub/backend/internal/integration/entrypoint/middleware"
)

// FinanceGoalController handles finance goal endpoints.
type FinanceGoalController struct {
	createUseCase *financegoal.CreateFinanceGoalUseCase
	listUseCase   *financegoal.ListFinanceGoalsUseCase
	updateUseCase *financegoal.UpdateFinanceGoalUseCase
	deleteUseCase *financegoal.DeleteFinanceGoalUseCase
}

// NewFinanceGoalController creates a new finance goal controller instance.
func NewFinanceGoalController(
	createUseCase *financegoal.CreateFinanceGoalUseCase,
	listUseCase *financegoal.ListFinanceGoalsUseCase,
	updateUseCase *financegoal.UpdateFinanceGoalUseCase,
	deleteUseCase *financegoal.DeleteFinanceGoalUseCase,
) *FinanceGoalController {
	return &FinanceGoalController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /finance-goals requests.
func (c *FinanceGoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateFinanceGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFinanceGoalFields),
		})
		return
	}

	targetAmount, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target amount",
			Code:  string(domainerror.ErrCodeInvalidTargetAmount),
		})
		return
	}

	deadline, err := parseOptionalDate(req.Deadline)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid deadline, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingFinanceGoalFields),
		})
		return
	}

	input := financegoal.CreateFinanceGoalInput{
		UserID:       userID,
		Name:         req.Name,
		Type:         entity.FinanceGoalType(req.Type),
		TargetAmount: targetAmount,
		Deadline:     deadline,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFinanceGoalResponse(output.FinanceGoal))
}

// List handles GET /finance-goals requests.
func (c *FinanceGoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := financegoal.ListFinanceGoalsInput{
		UserID:     userID,
		OnlyActive: ctx.Query("active") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinanceGoalListResponse(output.FinanceGoals))
}

// Update handles PATCH /finance-goals/:id requests.
func (c *FinanceGoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	financeGoalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid finance goal ID",
			Code:  string(domainerror.ErrCodeFinanceGoalNotFound),
		})
		return
	}

	var req dto.UpdateFinanceGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFinanceGoalFields),
		})
		return
	}

	targetAmount, err := parseOptionalDecimal(req.TargetAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target amount",
			Code:  string(domainerror.ErrCodeInvalidTargetAmount),
		})
		return
	}

	currentAmount, err := parseOptionalDecimal(req.CurrentAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid current amount",
			Code:  string(domainerror.ErrCodeInvalidCurrentAmount),
		})
		return
	}

	deadline, err := parseOptionalDate(req.Deadline)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid deadline, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingFinanceGoalFields),
		})
		return
	}

	input := financegoal.UpdateFinanceGoalInput{
		UserID:        userID,
		FinanceGoalID: financeGoalID,
		Name:          req.Name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      deadline,
		ClearDeadline: req.ClearDeadline,
		IsActive:      req.IsActive,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinanceGoalResponse(output.FinanceGoal))
}

// Delete handles DELETE /finance-goals/:id requests.
func (c *FinanceGoalController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	financeGoalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid finance goal ID",
			Code:  string(domainerror.ErrCodeFinanceGoalNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), financegoal.DeleteFinanceGoalInput{
		UserID:        userID,
		FinanceGoalID: financeGoalID,
	}); err != nil {
		c.handleFinanceGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Finance goal deleted successfully",
	})
}

// parseOptionalDecimal parses an optional decimal request field.
func parseOptionalDecimal(value *string) (*decimal.Decimal, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := decimal.NewFromString(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// handleFinanceGoalError handles finance goal errors and returns appropriate
// HTTP responses.
func (c *FinanceGoalController) handleFinanceGoalError(ctx *gin.Context, err error) {
	var financeGoalErr *domainerror.FinanceGoalError
	if errors.As(err, &financeGoalErr) {
		statusCode := c.getStatusCodeForFinanceGoalError(financeGoalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: financeGoalErr.Message,
			Code:  string(financeGoalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFinanceGoalError maps finance goal error codes to HTTP
// status codes.
func (c *FinanceGoalController) getStatusCodeForFinanceGoalError(code domainerror.FinanceGoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeFinanceGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedFinanceGoal:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidFinanceGoalType,
		domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidCurrentAmount,
		domainerror.ErrCodeMissingFinanceGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
