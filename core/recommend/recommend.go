// Package recommend ranks compared vehicles by total lifecycle emissions
// and produces a recommendation with a spread-based confidence score.
package recommend

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/kilianp07/carboncompare/core/model"
)

// ErrTooFewResults is returned when fewer than two results are supplied.
var ErrTooFewResults = errors.New("recommendation requires at least two results")

// Recommend picks the vehicle with the lowest lifecycle total. Confidence
// grows with the gap between best and second-best so a near-tie is not
// reported as certainty. Deterministic for identical inputs.
func Recommend(results []model.LifecycleResult) (model.RecommendationResult, error) {
	if len(results) < 2 {
		return model.RecommendationResult{}, ErrTooFewResults
	}

	sorted := make([]model.LifecycleResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Total < sorted[j].Total })
	best := sorted[0]
	worst := sorted[len(sorted)-1]

	confidence := confidenceFromSpread(best, sorted[1])

	savingsKg := worst.Total - best.Total
	savingsPct := 0.0
	if worst.Total > 0 {
		savingsPct = savingsKg / worst.Total * 100
	}

	return model.RecommendationResult{
		RecommendedVehicle:   best.VehicleType,
		TotalEmissionsKg:     best.Total,
		ConfidencePercentage: round1(confidence),
		SavingsVsWorstKg:     round1(savingsKg),
		SavingsVsWorstPct:    round1(savingsPct),
		Reasoning:            buildReasoning(best, worst, savingsKg, savingsPct),
	}, nil
}

// confidenceFromSpread maps the relative gap between best and second-best
// totals to [0, 100]: no gap reads as a coin flip, a 30% gap approaches
// the 99 cap.
func confidenceFromSpread(best, second model.LifecycleResult) float64 {
	if second.Total <= 0 {
		return 50
	}
	gapPct := (second.Total - best.Total) / second.Total * 100
	confidence := 50 + gapPct*1.65
	if confidence > 99 {
		confidence = 99
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}

func buildReasoning(best, worst model.LifecycleResult, savingsKg, savingsPct float64) string {
	parts := []string{
		fmt.Sprintf("%s produces the lowest total lifecycle emissions at %.0f kg CO2-eq (%.0f g/km lifetime average).",
			best.VehicleType, best.Total, best.PerKm),
	}
	if savingsKg > 0 && worst.VehicleType != best.VehicleType {
		parts = append(parts, fmt.Sprintf("This saves %.0f kg CO2-eq (%.0f%%) compared to the highest-emission option (%s).",
			savingsKg, savingsPct, worst.VehicleType))
	}
	switch {
	case best.Manufacturing > best.UsePhase:
		parts = append(parts, "Manufacturing dominates this vehicle's footprint; a longer ownership period improves its lifecycle efficiency.")
	case best.UsePhase > best.Manufacturing*2:
		parts = append(parts, "Use-phase energy is the primary driver; grid decarbonisation will improve this footprint over time.")
	}
	if best.GreenwashingFlag {
		parts = append(parts, "Greenwashing alert: "+best.GreenwashingReason)
	}
	return strings.Join(parts, " ")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
