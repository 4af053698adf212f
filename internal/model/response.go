package model

import json "github.com/goccy/go-json"

type ConsolidationResponse struct {
	ConsolidationMetadata ConsolidationMetadata `json:"consolidation_metadata"`
	ConsolidationResult   ConsolidationResult   `json:"consolidation_result"`
}

type ConsolidationMetadata struct {
	ConsolidationID          string `json:"consolidation_id"`
	TenantID                 string `json:"tenant_id"`
	ConsolidationStartedAt   string `json:"consolidation_started_at"`
	ConsolidationCompletedAt string `json:"consolidation_completed_at"`
	ConsolidationDurationMs  int64  `json:"consolidation_duration_ms"`
	ConsolidationOutcome     string `json:"consolidation_outcome"`
}

type ConsolidationResult struct {
	Messages []ConsolidationMessage `json:"messages"`
	Document *RawExtraction         `json:"document"`
	Changes  []PatchOperation       `json:"changes"`
	Summary  DocumentSummary        `json:"summary"`
}

// PatchOperation is one RFC 6902 operation describing how consolidation
// changed the input document.
type PatchOperation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value"`
}

// MarshalJSON omits value only for remove operations; add and replace
// keep it even when it is null.
func (p PatchOperation) MarshalJSON() ([]byte, error) {
	if p.Op == "remove" {
		return json.Marshal(struct {
			Op   string `json:"op"`
			Path string `json:"path"`
		}{p.Op, p.Path})
	}
	type op PatchOperation
	return json.Marshal(op(p))
}

// DocumentSummary is the display view of a consolidated document.
type DocumentSummary struct {
	PolicyHolderName   *string   `json:"policy_holder_name"`
	PolicyHolderRUT    string    `json:"policy_holder_rut,omitempty"`
	VehicleDescription string    `json:"vehicle_description,omitempty"`
	PlanCount          int       `json:"plan_count"`
	Insurers           []string  `json:"insurers"`
	CheapestOffer      *OfferRef `json:"cheapest_offer"`
}

type OfferRef struct {
	PlanIndex       int      `json:"plan_index"`
	InsurerName     *string  `json:"insurer_name"`
	PlanName        *string  `json:"plan_name"`
	DeductibleUF    *float64 `json:"deductible_uf"`
	AnnualPremiumUF float64  `json:"annual_premium_uf"`
}

type BatchConsolidationResponse struct {
	Results []*ConsolidationResponse `json:"results"`
}

type ParseNumericResponse struct {
	Results []*float64 `json:"results"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
