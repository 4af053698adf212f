package model

import (
	"strconv"
	"strings"
)

// RawExtraction is one quote document as produced by the upstream
// OCR/LLM extraction. Consolidation mutates it in place.
type RawExtraction struct {
	Error          *string        `json:"error"`
	DocumentType   *string        `json:"document_type"`
	PolicyHolder   *PolicyHolder  `json:"policy_holder"`
	Vehicle        *Vehicle       `json:"vehicle_info"`
	PolicyAnalyses []PlanAnalysis `json:"policy_analyses"`
}

type PolicyHolder struct {
	InsuredName *string `json:"insured_name"`
	InsuredRUT  *string `json:"insured_rut"`
}

type Vehicle struct {
	Make  *string `json:"make"`
	Model *string `json:"model"`
	Year  *int    `json:"year"`
}

// Valid reports whether make, model and year are all present and non-zero.
func (v *Vehicle) Valid() bool {
	if v == nil {
		return false
	}
	return v.Make != nil && *v.Make != "" &&
		v.Model != nil && *v.Model != "" &&
		v.Year != nil && *v.Year != 0
}

// Description renders the vehicle as "Make Model Year", skipping missing parts.
func (v *Vehicle) Description() string {
	if v == nil {
		return ""
	}
	var parts []string
	if v.Make != nil && *v.Make != "" {
		parts = append(parts, *v.Make)
	}
	if v.Model != nil && *v.Model != "" {
		parts = append(parts, *v.Model)
	}
	if v.Year != nil && *v.Year != 0 {
		parts = append(parts, strconv.Itoa(*v.Year))
	}
	return strings.Join(parts, " ")
}

// PlanAnalysis is one insurance plan detected in a document.
type PlanAnalysis struct {
	InsurerName               *string                        `json:"insurer_name"`
	PlanName                  *string                        `json:"plan_name"`
	WorkshopInfo              *WorkshopInfo                  `json:"workshop_info"`
	ReplacementCarInfo        *ReplacementCarCoverage        `json:"replacement_car_info"`
	NewVehicleReplacementInfo *NewVehicleReplacementCoverage `json:"new_vehicle_replacement_info"`
	SmartDeductibleInfo       *SmartDeductibleCoverage       `json:"smart_deductible_info"`
	DeductiblePremiums        []PremiumOffer                 `json:"deductible_premiums"`
}

// PremiumOffer is a quoted annual premium for one deductible tier. The
// raw strings come from extraction; DeductibleUF and AnnualPremiumUF are
// derived from them during consolidation.
type PremiumOffer struct {
	DeductibleOriginalStr    *string  `json:"deductible_original_str"`
	AnnualPremiumOriginalStr *string  `json:"annual_premium_original_str"`
	RCCoverageOriginalStr    *string  `json:"rc_coverage_original_str"`
	DeductibleUF             *float64 `json:"deductible_uf"`
	AnnualPremiumUF          *float64 `json:"annual_premium_uf"`
}
