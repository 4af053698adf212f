package model

type ConsolidationMessage struct {
	ID        int    `json:"id"`
	Level     string `json:"level"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	PlanIndex *int   `json:"plan_index,omitempty"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
	LevelInfo     = "INFO"
)

const (
	CodeUpstreamError           = "UPSTREAM_ERROR"
	CodeInsufficientVehicleData = "INSUFFICIENT_VEHICLE_DATA"
	CodeInsurerNormalized       = "INSURER_NORMALIZED"
	CodeOfferDropped            = "OFFER_DROPPED"
	CodeDuplicateDeductible     = "DUPLICATE_DEDUCTIBLE"
	CodeRCOnlyPlan              = "RC_ONLY_PLAN"
)

// ErrInsufficientVehicleData is the document error set when the vehicle
// cannot be identified.
const ErrInsufficientVehicleData = "insufficient vehicle data"
