package rules

import "quote-engine/internal/insurer"

// Pipeline returns the plan rules in the order they must run: insurer
// names and premium selection apply to every plan before RC-only plans
// have their inapplicable sections suppressed.
func Pipeline(insurers *insurer.Normalizer) []PlanRule {
	if insurers == nil {
		insurers = insurer.Default()
	}
	return []PlanRule{
		&InsurerNameRule{Insurers: insurers},
		&PremiumSelectionRule{},
		&RCOnlyRule{},
	}
}
