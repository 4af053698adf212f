package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-engine/internal/insurer"
	"quote-engine/internal/model"
)

func strPtr(s string) *string { return &s }

func offer(deductible, premium string) model.PremiumOffer {
	return model.PremiumOffer{
		DeductibleOriginalStr:    strPtr(deductible),
		AnnualPremiumOriginalStr: strPtr(premium),
	}
}

func TestPipelineOrder(t *testing.T) {
	var names []string
	for _, r := range Pipeline(nil) {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"insurer_name", "premium_selection", "rc_only"}, names)
}

func TestInsurerNameRule(t *testing.T) {
	rule := &InsurerNameRule{Insurers: insurer.Default()}

	plan := &model.PlanAnalysis{InsurerName: strPtr("HDI Seguros S.A.")}
	msgs := rule.Apply(plan)
	require.NotNil(t, plan.InsurerName)
	assert.Equal(t, "HDI", *plan.InsurerName)
	require.Len(t, msgs, 1)
	assert.Equal(t, model.CodeInsurerNormalized, msgs[0].Code)

	unchanged := &model.PlanAnalysis{InsurerName: strPtr("HDI")}
	assert.Empty(t, rule.Apply(unchanged))
	assert.Equal(t, "HDI", *unchanged.InsurerName)

	absent := &model.PlanAnalysis{}
	assert.Empty(t, rule.Apply(absent))
	assert.Nil(t, absent.InsurerName)
}

func TestPremiumSelectionKeepsCheapestPerDeductible(t *testing.T) {
	plan := &model.PlanAnalysis{
		DeductiblePremiums: []model.PremiumOffer{
			offer("500", "10,5"),
			offer("500", "8,0"),
		},
	}

	msgs := (&PremiumSelectionRule{}).Apply(plan)

	require.Len(t, plan.DeductiblePremiums, 1)
	got := plan.DeductiblePremiums[0]
	require.NotNil(t, got.AnnualPremiumUF)
	assert.InDelta(t, 8.0, *got.AnnualPremiumUF, 1e-9)
	require.NotNil(t, got.DeductibleUF)
	assert.InDelta(t, 500.0, *got.DeductibleUF, 1e-9)
	assert.Equal(t, "8,0", *got.AnnualPremiumOriginalStr)

	require.Len(t, msgs, 1)
	assert.Equal(t, model.CodeDuplicateDeductible, msgs[0].Code)
}

func TestPremiumSelectionGroupsInFirstSeenOrder(t *testing.T) {
	plan := &model.PlanAnalysis{
		DeductiblePremiums: []model.PremiumOffer{
			offer("UF 10", "UF 20,1"),
			offer("UF 3", "UF 25,4"),
			offer("UF 10", "UF 19,9"),
			offer("Sin deducible", "UF 30"),
			offer("UF 3", "UF 26"),
			offer("UF 0", "UF 29,5"),
		},
	}

	(&PremiumSelectionRule{}).Apply(plan)

	require.Len(t, plan.DeductiblePremiums, 3)
	want := []struct{ deductible, premium float64 }{
		{10, 19.9},
		{3, 25.4},
		{0, 29.5},
	}
	for i, w := range want {
		got := plan.DeductiblePremiums[i]
		require.NotNil(t, got.DeductibleUF)
		require.NotNil(t, got.AnnualPremiumUF)
		assert.InDelta(t, w.deductible, *got.DeductibleUF, 1e-9)
		assert.InDelta(t, w.premium, *got.AnnualPremiumUF, 1e-9)
	}
}

func TestPremiumSelectionFirstMinimumWins(t *testing.T) {
	first := offer("5", "12")
	first.RCCoverageOriginalStr = strPtr("first")
	second := offer("5", "12,0")
	second.RCCoverageOriginalStr = strPtr("second")

	plan := &model.PlanAnalysis{DeductiblePremiums: []model.PremiumOffer{first, second}}
	(&PremiumSelectionRule{}).Apply(plan)

	require.Len(t, plan.DeductiblePremiums, 1)
	assert.Equal(t, "first", *plan.DeductiblePremiums[0].RCCoverageOriginalStr)
}

func TestPremiumSelectionDropsUnparseablePremiums(t *testing.T) {
	plan := &model.PlanAnalysis{
		DeductiblePremiums: []model.PremiumOffer{
			offer("5", "consultar"),
			{DeductibleOriginalStr: strPtr("5")},
			offer("10", "15,2"),
		},
	}

	msgs := (&PremiumSelectionRule{}).Apply(plan)

	require.Len(t, plan.DeductiblePremiums, 1)
	assert.InDelta(t, 10.0, *plan.DeductiblePremiums[0].DeductibleUF, 1e-9)

	var dropped int
	for _, m := range msgs {
		if m.Code == model.CodeOfferDropped {
			dropped++
			assert.Equal(t, model.LevelWarning, m.Level)
		}
	}
	assert.Equal(t, 2, dropped)
}

func TestPremiumSelectionMissingDeductibleIsOneGroup(t *testing.T) {
	plan := &model.PlanAnalysis{
		DeductiblePremiums: []model.PremiumOffer{
			{AnnualPremiumOriginalStr: strPtr("14")},
			offer("a convenir", "13,5"),
			offer("5", "20"),
		},
	}

	(&PremiumSelectionRule{}).Apply(plan)

	require.Len(t, plan.DeductiblePremiums, 2)
	assert.Nil(t, plan.DeductiblePremiums[0].DeductibleUF)
	assert.InDelta(t, 13.5, *plan.DeductiblePremiums[0].AnnualPremiumUF, 1e-9)
	assert.InDelta(t, 5.0, *plan.DeductiblePremiums[1].DeductibleUF, 1e-9)
}

func TestPremiumSelectionNoOffers(t *testing.T) {
	plan := &model.PlanAnalysis{}
	assert.Empty(t, (&PremiumSelectionRule{}).Apply(plan))
	assert.Nil(t, plan.DeductiblePremiums)
}

func TestPremiumSelectionInvariant(t *testing.T) {
	offers := []model.PremiumOffer{
		offer("3", "22,1"), offer("5", "18"), offer("3", "21,9"), offer("10", "15"),
		offer("5", "17,5"), offer("10", "15"), offer("3", "x"), offer("5", "1.234"),
	}
	plan := &model.PlanAnalysis{DeductiblePremiums: offers}
	(&PremiumSelectionRule{}).Apply(plan)

	seen := make(map[float64]bool)
	for _, kept := range plan.DeductiblePremiums {
		d := *kept.DeductibleUF
		assert.False(t, seen[d], "duplicate deductible %v", d)
		seen[d] = true

		for _, o := range offers {
			if o.DeductibleUF != nil && *o.DeductibleUF == d && o.AnnualPremiumUF != nil {
				assert.LessOrEqual(t, *kept.AnnualPremiumUF, *o.AnnualPremiumUF)
			}
		}
	}
	assert.Len(t, seen, 3)
}

func TestIsRCOnly(t *testing.T) {
	tests := []struct {
		name string
		plan *string
		want bool
	}{
		{name: "elemental", plan: strPtr("Plan Elemental RC"), want: true},
		{name: "r. civil", plan: strPtr("Seguro R. Civil"), want: true},
		{name: "responsabilidad civil", plan: strPtr("Responsabilidad Civil Plus"), want: true},
		{name: "parenthesized rc", plan: strPtr("Auto (RC)"), want: true},
		{name: "basic", plan: strPtr("Basic"), want: true},
		{name: "solo rc", plan: strPtr("Solo RC"), want: true},
		{name: "full coverage", plan: strPtr("Full Cobertura Deducible UF 5"), want: false},
		{name: "bare rc without marker", plan: strPtr("Plan RC"), want: false},
		{name: "absent", plan: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRCOnly(tt.plan))
		})
	}
}

func TestRCOnlyRuleSuppressesSections(t *testing.T) {
	yes := true
	plan := &model.PlanAnalysis{
		PlanName:                  strPtr("Plan Elemental RC"),
		WorkshopInfo:              model.NewWorkshopInfo(&yes, strPtr("Taller marca"), nil),
		ReplacementCarInfo:        model.NewReplacementCarCoverage(&yes, nil, strPtr("15"), nil),
		NewVehicleReplacementInfo: model.NewNewVehicleReplacementCoverage(&yes, nil),
		SmartDeductibleInfo:       model.NewSmartDeductibleCoverage(&yes, nil),
		DeductiblePremiums:        []model.PremiumOffer{offer("0", "4,5")},
	}

	msgs := (&RCOnlyRule{}).Apply(plan)

	assert.Nil(t, plan.WorkshopInfo)
	require.NotNil(t, plan.ReplacementCarInfo)
	assert.False(t, plan.ReplacementCarInfo.HasCoverage)
	assert.Equal(t, "15", *plan.ReplacementCarInfo.DaysLimitStr)
	assert.Nil(t, plan.NewVehicleReplacementInfo)
	require.NotNil(t, plan.SmartDeductibleInfo)
	assert.True(t, plan.SmartDeductibleInfo.HasCoverage)
	assert.Len(t, plan.DeductiblePremiums, 1)

	require.Len(t, msgs, 1)
	assert.Equal(t, model.CodeRCOnlyPlan, msgs[0].Code)
}

func TestRCOnlyRuleWithoutReplacementSection(t *testing.T) {
	plan := &model.PlanAnalysis{PlanName: strPtr("Solo RC")}
	(&RCOnlyRule{}).Apply(plan)
	assert.Nil(t, plan.ReplacementCarInfo)
}

func TestRCOnlyRuleLeavesOtherPlans(t *testing.T) {
	yes := true
	plan := &model.PlanAnalysis{
		PlanName:     strPtr("Full"),
		WorkshopInfo: model.NewWorkshopInfo(&yes, nil, nil),
	}
	assert.Empty(t, (&RCOnlyRule{}).Apply(plan))
	require.NotNil(t, plan.WorkshopInfo)
	assert.True(t, plan.WorkshopInfo.HasCoverage)
}
