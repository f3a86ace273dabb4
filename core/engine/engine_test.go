package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/carboncompare/core/factors"
	"github.com/kilianp07/carboncompare/core/model"
)

func testEngine() *Engine {
	return New(factors.NewDefaultSource())
}

func cfgFor(vt model.VehicleType) model.VehicleConfiguration {
	return model.VehicleConfiguration{
		VehicleType: vt,
		AnnualKm:    15000,
		Years:       10,
		GridFactor:  0.233,
		VehicleSize: model.SizeMedium,
	}
}

func TestCalculateDefaultsSize(t *testing.T) {
	cfg := cfgFor(model.VehicleBEV)
	cfg.VehicleSize = ""
	res, err := testEngine().Calculate(cfg)
	require.NoError(t, err)
	// Medium default: matches the explicit medium result.
	explicit, err := testEngine().Calculate(cfgFor(model.VehicleBEV))
	require.NoError(t, err)
	assert.Equal(t, explicit, res)
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	cfg := cfgFor(model.VehicleBEV)
	cfg.AnnualKm = -5
	_, err := testEngine().Calculate(cfg)
	assert.ErrorIs(t, err, model.ErrInvalid)
}

func TestCompareProducesFullResult(t *testing.T) {
	res, err := testEngine().Compare([]model.VehicleConfiguration{
		cfgFor(model.VehicleBEV),
		cfgFor(model.VehicleICEVp),
	})
	require.NoError(t, err)

	assert.Len(t, res.Results, 2)
	require.NotNil(t, res.BreakEven)
	assert.Equal(t, model.VehicleBEV, res.BreakEven.BestVehicle)
	assert.Len(t, res.BreakEven.Pairs, 1)
	assert.Equal(t, model.VehicleBEV, res.Recommendation.RecommendedVehicle)
	assert.GreaterOrEqual(t, res.Recommendation.SavingsVsWorstKg, 0.0)
}

func TestCompareVehicleCountBounds(t *testing.T) {
	e := testEngine()

	_, err := e.Compare([]model.VehicleConfiguration{cfgFor(model.VehicleBEV)})
	assert.ErrorIs(t, err, model.ErrInvalid)

	six := make([]model.VehicleConfiguration, 6)
	for i := range six {
		six[i] = cfgFor(model.VehicleBEV)
	}
	_, err = e.Compare(six)
	assert.ErrorIs(t, err, model.ErrInvalid)
}

func TestCompareRequiresUniformYears(t *testing.T) {
	a := cfgFor(model.VehicleBEV)
	b := cfgFor(model.VehicleICEVp)
	b.Years = 8
	_, err := testEngine().Compare([]model.VehicleConfiguration{a, b})
	assert.ErrorIs(t, err, model.ErrInvalid)
}

func TestCompareSurfacesFactorErrors(t *testing.T) {
	e := New(factors.NewStaticSource(map[model.VehicleType]factors.Factors{}))
	_, err := e.Compare([]model.VehicleConfiguration{
		cfgFor(model.VehicleBEV),
		cfgFor(model.VehicleICEVp),
	})
	assert.ErrorIs(t, err, factors.ErrNotFound)
}
