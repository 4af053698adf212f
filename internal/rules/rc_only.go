package rules

import (
	"strings"

	"quote-engine/internal/model"
)

// rcOnlyKeywords mark plan names that only offer third-party civil
// liability coverage.
var rcOnlyKeywords = [...]string{
	"elemental",
	"r. civil",
	"responsabilidad civil",
	"(rc)",
	"basic",
	"rc)",
	"solo rc",
}

// IsRCOnly reports whether a plan name denotes a civil-liability-only plan.
func IsRCOnly(planName *string) bool {
	if planName == nil {
		return false
	}
	name := strings.ToLower(*planName)
	for _, kw := range rcOnlyKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// RCOnlyRule clears the workshop and replacement sections that do not
// apply to civil-liability-only plans. Smart deductible and premiums are
// left as they are.
type RCOnlyRule struct{}

func (r *RCOnlyRule) Name() string { return "rc_only" }

func (r *RCOnlyRule) Apply(plan *model.PlanAnalysis) []model.ConsolidationMessage {
	if !IsRCOnly(plan.PlanName) {
		return nil
	}

	plan.WorkshopInfo = nil
	if plan.ReplacementCarInfo != nil {
		plan.ReplacementCarInfo.HasCoverage = false
	}
	plan.NewVehicleReplacementInfo = nil

	return []model.ConsolidationMessage{{
		Level:   model.LevelInfo,
		Code:    model.CodeRCOnlyPlan,
		Message: "Plan " + *plan.PlanName + " is civil liability only; workshop and replacement coverage removed",
	}}
}
