package rules

import (
	"fmt"

	"quote-engine/internal/model"
	"quote-engine/internal/numeric"
)

// PremiumSelectionRule parses every offer and keeps, per deductible value,
// the offer with the lowest annual premium.
type PremiumSelectionRule struct{}

func (r *PremiumSelectionRule) Name() string { return "premium_selection" }

// deductibleKey lets a missing deductible act as its own group.
type deductibleKey struct {
	present bool
	value   float64
}

func keyOf(v *float64) deductibleKey {
	if v == nil {
		return deductibleKey{}
	}
	return deductibleKey{present: true, value: *v}
}

type premiumGroup struct {
	best int
	size int
}

func (r *PremiumSelectionRule) Apply(plan *model.PlanAnalysis) []model.ConsolidationMessage {
	offers := plan.DeductiblePremiums
	if len(offers) == 0 {
		return nil
	}

	var msgs []model.ConsolidationMessage
	for i := range offers {
		offers[i].DeductibleUF = numeric.Parse(offers[i].DeductibleOriginalStr)
		offers[i].AnnualPremiumUF = numeric.Parse(offers[i].AnnualPremiumOriginalStr)
	}

	// Groups keep first-seen order; the best offer of a group only changes
	// on a strictly lower premium so the first minimum wins.
	var order []deductibleKey
	groups := make(map[deductibleKey]*premiumGroup)
	for i := range offers {
		if offers[i].AnnualPremiumUF == nil {
			msgs = append(msgs, model.ConsolidationMessage{
				Level:   model.LevelWarning,
				Code:    model.CodeOfferDropped,
				Message: fmt.Sprintf("Offer %d dropped: annual premium %s is not a number", i, quote(offers[i].AnnualPremiumOriginalStr)),
			})
			continue
		}

		k := keyOf(offers[i].DeductibleUF)
		g, ok := groups[k]
		if !ok {
			groups[k] = &premiumGroup{best: i, size: 1}
			order = append(order, k)
			continue
		}
		g.size++
		if *offers[i].AnnualPremiumUF < *offers[g.best].AnnualPremiumUF {
			g.best = i
		}
	}

	selected := make([]model.PremiumOffer, 0, len(order))
	for _, k := range order {
		g := groups[k]
		selected = append(selected, offers[g.best])
		if g.size > 1 {
			msgs = append(msgs, model.ConsolidationMessage{
				Level:   model.LevelInfo,
				Code:    model.CodeDuplicateDeductible,
				Message: fmt.Sprintf("%d offers for deductible %s collapsed to premium %s", g.size, describeDeductible(k), formatUF(*offers[g.best].AnnualPremiumUF)),
			})
		}
	}
	plan.DeductiblePremiums = selected

	return msgs
}

func describeDeductible(k deductibleKey) string {
	if !k.present {
		return "unknown"
	}
	return formatUF(k.value)
}

func formatUF(v float64) string {
	return fmt.Sprintf("UF %g", v)
}

func quote(s *string) string {
	if s == nil {
		return "null"
	}
	return fmt.Sprintf("%q", *s)
}
