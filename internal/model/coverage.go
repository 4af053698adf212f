package model

import json "github.com/goccy/go-json"

// coverageFlag is the single place where an absent has_coverage value
// becomes false.
func coverageFlag(v *bool) bool {
	return v != nil && *v
}

type WorkshopInfo struct {
	HasCoverage            bool    `json:"has_coverage"`
	WorkshopType           *string `json:"workshop_type"`
	ConditionsObservations *string `json:"conditions_observations"`
}

func NewWorkshopInfo(hasCoverage *bool, workshopType, conditions *string) *WorkshopInfo {
	return &WorkshopInfo{
		HasCoverage:            coverageFlag(hasCoverage),
		WorkshopType:           workshopType,
		ConditionsObservations: conditions,
	}
}

func (w *WorkshopInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		HasCoverage            *bool   `json:"has_coverage"`
		WorkshopType           *string `json:"workshop_type"`
		ConditionsObservations *string `json:"conditions_observations"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*w = *NewWorkshopInfo(raw.HasCoverage, raw.WorkshopType, raw.ConditionsObservations)
	return nil
}

type ReplacementCarCoverage struct {
	HasCoverage            bool    `json:"has_coverage"`
	DailyCopayOriginalStr  *string `json:"daily_copay_original_str"`
	DaysLimitStr           *string `json:"days_limit_str"`
	ConditionsObservations *string `json:"conditions_observations"`
}

func NewReplacementCarCoverage(hasCoverage *bool, dailyCopay, daysLimit, conditions *string) *ReplacementCarCoverage {
	return &ReplacementCarCoverage{
		HasCoverage:            coverageFlag(hasCoverage),
		DailyCopayOriginalStr:  dailyCopay,
		DaysLimitStr:           daysLimit,
		ConditionsObservations: conditions,
	}
}

func (r *ReplacementCarCoverage) UnmarshalJSON(data []byte) error {
	var raw struct {
		HasCoverage            *bool   `json:"has_coverage"`
		DailyCopayOriginalStr  *string `json:"daily_copay_original_str"`
		DaysLimitStr           *string `json:"days_limit_str"`
		ConditionsObservations *string `json:"conditions_observations"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = *NewReplacementCarCoverage(raw.HasCoverage, raw.DailyCopayOriginalStr, raw.DaysLimitStr, raw.ConditionsObservations)
	return nil
}

type NewVehicleReplacementCoverage struct {
	HasCoverage            bool    `json:"has_coverage"`
	ConditionsObservations *string `json:"conditions_observations"`
}

func NewNewVehicleReplacementCoverage(hasCoverage *bool, conditions *string) *NewVehicleReplacementCoverage {
	return &NewVehicleReplacementCoverage{
		HasCoverage:            coverageFlag(hasCoverage),
		ConditionsObservations: conditions,
	}
}

func (n *NewVehicleReplacementCoverage) UnmarshalJSON(data []byte) error {
	var raw conditionalCoverage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = *NewNewVehicleReplacementCoverage(raw.HasCoverage, raw.ConditionsObservations)
	return nil
}

type SmartDeductibleCoverage struct {
	HasCoverage            bool    `json:"has_coverage"`
	ConditionsObservations *string `json:"conditions_observations"`
}

func NewSmartDeductibleCoverage(hasCoverage *bool, conditions *string) *SmartDeductibleCoverage {
	return &SmartDeductibleCoverage{
		HasCoverage:            coverageFlag(hasCoverage),
		ConditionsObservations: conditions,
	}
}

func (s *SmartDeductibleCoverage) UnmarshalJSON(data []byte) error {
	var raw conditionalCoverage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = *NewSmartDeductibleCoverage(raw.HasCoverage, raw.ConditionsObservations)
	return nil
}

// conditionalCoverage is the wire shape shared by the sections that only
// carry a flag and free-text conditions.
type conditionalCoverage struct {
	HasCoverage            *bool   `json:"has_coverage"`
	ConditionsObservations *string `json:"conditions_observations"`
}
