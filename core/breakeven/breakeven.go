// Package breakeven builds year-by-year cumulative emission trajectories
// and finds the ownership year at which the lowest-emission vehicle
// overtakes each alternative.
package breakeven

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/carboncompare/core/model"
)

// ErrTooFewResults is returned when fewer than two results are supplied.
var ErrTooFewResults = errors.New("break-even analysis requires at least two results")

// Analyze compares the best (lowest total) vehicle pairwise against every
// other result over ownership years 0..years.
//
// Manufacturing is booked entirely at year 0; use phase and disposal
// amortize linearly across the horizon. Disposal is amortized rather than
// booked up front: it is a sunk future cost, not a purchase-time event.
func Analyze(results []model.LifecycleResult, years int) (model.BreakEvenAnalysis, error) {
	if len(results) < 2 {
		return model.BreakEvenAnalysis{}, ErrTooFewResults
	}

	sorted := make([]model.LifecycleResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Total < sorted[j].Total })
	best := sorted[0]

	yearsRange := make([]int, years+1)
	for y := range yearsRange {
		yearsRange[y] = y
	}

	bestCurve := cumulativeCurve(best, years)
	pairs := make([]model.BreakEvenPair, 0, len(sorted)-1)
	for _, other := range sorted[1:] {
		curve := cumulativeCurve(other, years)
		pairs = append(pairs, model.BreakEvenPair{
			Year:                       crossoverYear(bestCurve, curve),
			BestVehicle:                best.VehicleType,
			ComparisonVehicle:          other.VehicleType,
			YearlyBestCumulative:       bestCurve,
			YearlyComparisonCumulative: curve,
		})
	}

	return model.BreakEvenAnalysis{
		BestVehicle: best.VehicleType,
		YearsRange:  yearsRange,
		Pairs:       pairs,
	}, nil
}

// cumulativeCurve returns cumulative emissions for years 0..years:
// manufacturing at year 0 plus the linear accrual of use and disposal.
func cumulativeCurve(r model.LifecycleResult, years int) []float64 {
	curve := make([]float64, years+1)
	floats.Span(curve, 0, float64(years))
	floats.Scale((r.UsePhase+r.Disposal)/float64(years), curve)
	floats.AddConst(r.Manufacturing, curve)
	for i, v := range curve {
		curve[i] = math.Round(v*10) / 10
	}
	return curve
}

// crossoverYear returns the first year where best is at or below
// comparison, or nil if parity is never reached within the curves.
func crossoverYear(best, comparison []float64) *int {
	for y := range best {
		if y >= len(comparison) {
			break
		}
		if best[y] <= comparison[y] {
			year := y
			return &year
		}
	}
	return nil
}
