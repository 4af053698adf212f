package engine

import (
	"quote-engine/internal/model"
	"quote-engine/internal/rut"
)

// Summarize builds the display summary of a consolidated document: who and
// what is insured, which insurers quoted, and the cheapest retained offer.
func Summarize(doc *model.RawExtraction) model.DocumentSummary {
	summary := model.DocumentSummary{Insurers: []string{}}
	if doc == nil {
		return summary
	}

	if doc.PolicyHolder != nil {
		summary.PolicyHolderName = doc.PolicyHolder.InsuredName
		if doc.PolicyHolder.InsuredRUT != nil {
			summary.PolicyHolderRUT = rut.Normalize(*doc.PolicyHolder.InsuredRUT)
		}
	}
	summary.VehicleDescription = doc.Vehicle.Description()
	summary.PlanCount = len(doc.PolicyAnalyses)

	seen := make(map[string]bool)
	for i, plan := range doc.PolicyAnalyses {
		if plan.InsurerName != nil && !seen[*plan.InsurerName] {
			seen[*plan.InsurerName] = true
			summary.Insurers = append(summary.Insurers, *plan.InsurerName)
		}

		for _, offer := range plan.DeductiblePremiums {
			if offer.AnnualPremiumUF == nil {
				continue
			}
			if summary.CheapestOffer != nil && *offer.AnnualPremiumUF >= summary.CheapestOffer.AnnualPremiumUF {
				continue
			}
			summary.CheapestOffer = &model.OfferRef{
				PlanIndex:       i,
				InsurerName:     plan.InsurerName,
				PlanName:        plan.PlanName,
				DeductibleUF:    offer.DeductibleUF,
				AnnualPremiumUF: *offer.AnnualPremiumUF,
			}
		}
	}

	return summary
}
