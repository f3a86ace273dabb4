// Package engine orchestrates the lifecycle calculator, break-even
// analyzer and recommendation engine behind the two operations the
// transport layer exposes.
package engine

import (
	"fmt"

	"github.com/kilianp07/carboncompare/core/breakeven"
	"github.com/kilianp07/carboncompare/core/factors"
	"github.com/kilianp07/carboncompare/core/lca"
	"github.com/kilianp07/carboncompare/core/model"
	"github.com/kilianp07/carboncompare/core/recommend"
)

const (
	// MinVehicles and MaxVehicles bound a comparison request.
	MinVehicles = 2
	MaxVehicles = 5
)

// Engine binds the pure calculation functions to one factor source. It is
// stateless beyond that: every call computes fresh value objects.
type Engine struct {
	src factors.Source
}

// New returns an Engine reading from the given factor source.
func New(src factors.Source) *Engine {
	return &Engine{src: src}
}

// Calculate computes the lifecycle result for a single vehicle.
func (e *Engine) Calculate(cfg model.VehicleConfiguration) (model.LifecycleResult, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return model.LifecycleResult{}, err
	}
	return lca.Compute(cfg, e.src)
}

// Compare computes results for 2..5 vehicles and derives the break-even
// analysis and recommendation across the set. All vehicles must share the
// same ownership period, otherwise the shared year axis is meaningless.
func (e *Engine) Compare(cfgs []model.VehicleConfiguration) (model.ComparisonResult, error) {
	if len(cfgs) < MinVehicles || len(cfgs) > MaxVehicles {
		return model.ComparisonResult{}, fmt.Errorf("comparison requires %d to %d vehicles, got %d: %w",
			MinVehicles, MaxVehicles, len(cfgs), model.ErrInvalid)
	}
	years := cfgs[0].Years
	for _, cfg := range cfgs[1:] {
		if cfg.Years != years {
			return model.ComparisonResult{}, fmt.Errorf("all vehicles must share the same years value: %w", model.ErrInvalid)
		}
	}

	results := make([]model.LifecycleResult, 0, len(cfgs))
	for _, cfg := range cfgs {
		res, err := e.Calculate(cfg)
		if err != nil {
			return model.ComparisonResult{}, err
		}
		results = append(results, res)
	}

	analysis, err := breakeven.Analyze(results, years)
	if err != nil {
		return model.ComparisonResult{}, err
	}
	recommendation, err := recommend.Recommend(results)
	if err != nil {
		return model.ComparisonResult{}, err
	}

	return model.ComparisonResult{
		Results:        results,
		BreakEven:      &analysis,
		Recommendation: recommendation,
	}, nil
}
