package breakeven

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

// Under the shared usage profile the BEV's higher manufacturing burden is
// overtaken by the petrol car's use-phase accrual strictly inside the
// ownership horizon.
func TestAnalyzeBEVVersusPetrol(t *testing.T) {
	bev := computeFor(t, model.VehicleBEV)
	ice := computeFor(t, model.VehicleICEVp)

	analysis, err := Analyze([]model.LifecycleResult{ice, bev}, 10)
	require.NoError(t, err)

	assert.Equal(t, model.VehicleBEV, analysis.BestVehicle)
	require.Len(t, analysis.Pairs, 1)

	pair := analysis.Pairs[0]
	assert.Equal(t, model.VehicleBEV, pair.BestVehicle)
	assert.Equal(t, model.VehicleICEVp, pair.ComparisonVehicle)
	require.NotNil(t, pair.Year)
	assert.Greater(t, *pair.Year, 0)
	assert.Less(t, *pair.Year, 10)
	assert.Equal(t, 4, *pair.Year)
}

func TestAnalyzeCurveShape(t *testing.T) {
	bev := computeFor(t, model.VehicleBEV)
	ice := computeFor(t, model.VehicleICEVp)

	analysis, err := Analyze([]model.LifecycleResult{bev, ice}, 10)
	require.NoError(t, err)
	require.Len(t, analysis.Pairs, 1)
	pair := analysis.Pairs[0]

	require.Len(t, pair.YearlyBestCumulative, 11)
	require.Len(t, pair.YearlyComparisonCumulative, 11)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, analysis.YearsRange)

	// Year 0 books manufacturing only; the final year reaches the total.
	assert.InDelta(t, bev.Manufacturing, pair.YearlyBestCumulative[0], 0.1)
	assert.InDelta(t, bev.Total, pair.YearlyBestCumulative[10], 0.1)
	assert.InDelta(t, ice.Total, pair.YearlyComparisonCumulative[10], 0.1)

	// Curves are non-decreasing.
	for y := 1; y < len(pair.YearlyBestCumulative); y++ {
		assert.GreaterOrEqual(t, pair.YearlyBestCumulative[y], pair.YearlyBestCumulative[y-1])
	}
}

func TestAnalyzeImmediateLead(t *testing.T) {
	// Best vehicle starts at or below the comparison already at year 0.
	best := model.LifecycleResult{VehicleType: model.VehicleHEV, Manufacturing: 9000, UsePhase: 5000, Disposal: 300, Total: 14300}
	other := model.LifecycleResult{VehicleType: model.VehicleICEVd, Manufacturing: 10700, UsePhase: 20000, Disposal: 370, Total: 31070}

	analysis, err := Analyze([]model.LifecycleResult{other, best}, 10)
	require.NoError(t, err)
	require.Len(t, analysis.Pairs, 1)
	require.NotNil(t, analysis.Pairs[0].Year)
	assert.Equal(t, 0, *analysis.Pairs[0].Year)
}

func TestAnalyzeMultipleComparisons(t *testing.T) {
	results := []model.LifecycleResult{
		computeFor(t, model.VehicleICEVd),
		computeFor(t, model.VehicleBEV),
		computeFor(t, model.VehicleICEVp),
		computeFor(t, model.VehicleHEV),
	}
	analysis, err := Analyze(results, 10)
	require.NoError(t, err)
	assert.Equal(t, model.VehicleBEV, analysis.BestVehicle)
	assert.Len(t, analysis.Pairs, 3)
	for _, pair := range analysis.Pairs {
		assert.Equal(t, model.VehicleBEV, pair.BestVehicle)
		assert.NotEqual(t, model.VehicleBEV, pair.ComparisonVehicle)
		if pair.Year != nil {
			assert.GreaterOrEqual(t, *pair.Year, 0)
			assert.LessOrEqual(t, *pair.Year, 10)
		}
	}
}

func TestAnalyzeTooFewResults(t *testing.T) {
	_, err := Analyze([]model.LifecycleResult{computeFor(t, model.VehicleBEV)}, 10)
	assert.ErrorIs(t, err, ErrTooFewResults)
}

func TestCrossoverYearNeverReached(t *testing.T) {
	best := []float64{5, 6, 7}
	comparison := []float64{1, 2, 3}
	assert.Nil(t, crossoverYear(best, comparison))
}
