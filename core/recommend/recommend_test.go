package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/carboncompare/core/factors"
	"github.com/kilianp07/carboncompare/core/lca"
	"github.com/kilianp07/carboncompare/core/model"
)

func computeFor(t *testing.T, vt model.VehicleType) model.LifecycleResult {
	t.Helper()
	cfg := model.VehicleConfiguration{
		VehicleType: vt,
		AnnualKm:    15000,
		Years:       10,
		GridFactor:  0.233,
		VehicleSize: model.SizeMedium,
	}
	res, err := lca.Compute(cfg, factors.NewDefaultSource())
	require.NoError(t, err)
	return res
}

func TestRecommendPicksMinimumTotal(t *testing.T) {
	bev := computeFor(t, model.VehicleBEV)
	ice := computeFor(t, model.VehicleICEVp)

	rec, err := Recommend([]model.LifecycleResult{ice, bev})
	require.NoError(t, err)

	assert.Equal(t, model.VehicleBEV, rec.RecommendedVehicle)
	assert.Equal(t, bev.Total, rec.TotalEmissionsKg)
	assert.GreaterOrEqual(t, rec.SavingsVsWorstKg, 0.0)
	assert.InDelta(t, ice.Total-bev.Total, rec.SavingsVsWorstKg, 0.1)
	assert.InDelta(t, (ice.Total-bev.Total)/ice.Total*100, rec.SavingsVsWorstPct, 0.1)
}

func TestRecommendConfidenceBounds(t *testing.T) {
	results := []model.LifecycleResult{
		computeFor(t, model.VehicleBEV),
		computeFor(t, model.VehicleHEV),
		computeFor(t, model.VehicleICEVp),
		computeFor(t, model.VehicleICEVd),
	}
	rec, err := Recommend(results)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rec.ConfidencePercentage, 0.0)
	assert.LessOrEqual(t, rec.ConfidencePercentage, 100.0)
}

func TestRecommendNearTieHasLowConfidence(t *testing.T) {
	a := model.LifecycleResult{VehicleType: model.VehicleBEV, Total: 25000, Manufacturing: 17000, UsePhase: 6600, Disposal: 1400, PerKm: 167}
	b := model.LifecycleResult{VehicleType: model.VehicleHEV, Total: 25010, Manufacturing: 10300, UsePhase: 14400, Disposal: 310, PerKm: 167}

	rec, err := Recommend([]model.LifecycleResult{a, b})
	require.NoError(t, err)
	assert.InDelta(t, 50.0, rec.ConfidencePercentage, 0.5)
}

func TestRecommendWideGapCapsAt99(t *testing.T) {
	a := model.LifecycleResult{VehicleType: model.VehicleBEV, Total: 10000, Manufacturing: 9000, UsePhase: 800, Disposal: 200, PerKm: 67}
	b := model.LifecycleResult{VehicleType: model.VehicleICEVd, Total: 40000, Manufacturing: 10700, UsePhase: 28900, Disposal: 400, PerKm: 267}

	rec, err := Recommend([]model.LifecycleResult{b, a})
	require.NoError(t, err)
	assert.Equal(t, 99.0, rec.ConfidencePercentage)
}

func TestRecommendReasoningDeterministic(t *testing.T) {
	results := []model.LifecycleResult{
		computeFor(t, model.VehicleICEVp),
		computeFor(t, model.VehicleBEV),
	}
	first, err := Recommend(results)
	require.NoError(t, err)
	second, err := Recommend(results)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first.Reasoning, "BEV")
	assert.Contains(t, first.Reasoning, "ICEV-p")
}

func TestRecommendFlagsGreenwashedWinner(t *testing.T) {
	winner := model.LifecycleResult{
		VehicleType:        model.VehicleBEV,
		Manufacturing:      19000,
		UsePhase:           500,
		Disposal:           500,
		Total:              20000,
		PerKm:              400,
		GreenwashingFlag:   true,
		GreenwashingReason: "burden front-loaded into manufacturing",
	}
	other := model.LifecycleResult{VehicleType: model.VehicleICEVp, Total: 37560, Manufacturing: 10300, UsePhase: 26910, Disposal: 350, PerKm: 250}

	rec, err := Recommend([]model.LifecycleResult{other, winner})
	require.NoError(t, err)
	assert.Contains(t, rec.Reasoning, "Greenwashing alert")
}

func TestRecommendTooFewResults(t *testing.T) {
	_, err := Recommend([]model.LifecycleResult{computeFor(t, model.VehicleBEV)})
	assert.ErrorIs(t, err, ErrTooFewResults)
}
