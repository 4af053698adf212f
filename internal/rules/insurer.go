package rules

import (
	"fmt"

	"quote-engine/internal/insurer"
	"quote-engine/internal/model"
)

type InsurerNameRule struct {
	Insurers *insurer.Normalizer
}

func (r *InsurerNameRule) Name() string { return "insurer_name" }

func (r *InsurerNameRule) Apply(plan *model.PlanAnalysis) []model.ConsolidationMessage {
	if plan.InsurerName == nil {
		return nil
	}
	before := *plan.InsurerName
	plan.InsurerName = r.Insurers.Normalize(plan.InsurerName)
	if *plan.InsurerName == before {
		return nil
	}
	return []model.ConsolidationMessage{{
		Level:   model.LevelInfo,
		Code:    model.CodeInsurerNormalized,
		Message: fmt.Sprintf("Insurer %q normalized to %q", before, *plan.InsurerName),
	}}
}
