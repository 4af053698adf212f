package rules

import "quote-engine/internal/model"

// PlanRule is one step of plan consolidation. Apply mutates the plan in
// place and reports what it changed or discarded.
type PlanRule interface {
	Name() string
	Apply(plan *model.PlanAnalysis) []model.ConsolidationMessage
}
