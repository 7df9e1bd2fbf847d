package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifehub/backend/internal/application/usecase/sync"
	domainerror "github.com/lifehub/backend/internal/domain/error"
	"github.com/lifehub/backend/internal/integration/entrypoint/dto"
	"github.com/lifehub/backend/internal/integration/entrypoint/middleware"
)

// SyncController exposes the mirror-pair reconciliation pass.
type SyncController struct {
	orchestrator *sync.Orchestrator
}

// NewSyncController creates a new sync controller instance.
func NewSyncController(orchestrator *sync.Orchestrator) *SyncController {
	return &SyncController{
		orchestrator: orchestrator,
	}
}

// Reconcile handles POST /sync/reconcile requests.
func (c *SyncController) Reconcile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	result, err := c.orchestrator.Reconcile(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReconcileResponse(result))
}
