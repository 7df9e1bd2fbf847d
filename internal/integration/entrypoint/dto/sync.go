package dto

import (
	"github.com/lifehub/backend/internal/application/usecase/sync"
)

// ReconcileResponse summarizes a mirror-pair reconciliation pass.
type ReconcileResponse struct {
	PairsChecked   int `json:"pairs_checked"`
	MirrorsCreated int `json:"mirrors_created"`
	LinksRepaired  int `json:"links_repaired"`
	FieldsSynced   int `json:"fields_synced"`
}

// ToReconcileResponse converts a reconcile result to its DTO.
func ToReconcileResponse(result *sync.ReconcileResult) ReconcileResponse {
	return ReconcileResponse{
		PairsChecked:   result.PairsChecked,
		MirrorsCreated: result.MirrorsCreated,
		LinksRepaired:  result.LinksRepaired,
		FieldsSynced:   result.FieldsSynced,
	}
}
