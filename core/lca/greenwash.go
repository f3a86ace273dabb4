package lca

import (
	"fmt"

	"github.com/kilianp07/carboncompare/core/factors"
	"github.com/kilianp07/carboncompare/core/model"
)

// Detect applies the greenwashing heuristics to a computed result. Rules
// are evaluated in order and the first match wins, so at most one reason
// is ever attached.
func Detect(r model.LifecycleResult) (bool, string) {
	if r.Total <= 0 {
		return false, ""
	}
	operationalShare := r.UsePhase / r.Total

	// Manufacturing dominance: near-zero operational emissions on top of a
	// substantial lifecycle burden means the footprint is front-loaded
	// into production and a zero-emission label is misleading.
	if operationalShare < factors.GreenwashingOperationalShare && r.Total > factors.GreenwashingTotalThresholdKg {
		reason := fmt.Sprintf(
			"%s emits only %.0f kg CO2-eq in operation (%.1f%% of lifecycle) against a total of %.0f kg; "+
				"the burden is front-loaded into manufacturing, so a 'zero emission' label is misleading",
			r.VehicleType, r.UsePhase, operationalShare*100, r.Total,
		)
		return true, reason
	}

	// Grid dependency: a BEV whose use phase outweighs manufacturing is
	// drawing on carbon-intensive electricity, undermining the claimed
	// zero-tailpipe benefit.
	if r.VehicleType == model.VehicleBEV && r.UsePhase > r.Manufacturing {
		reason := fmt.Sprintf(
			"use-phase emissions (%.0f kg CO2-eq) exceed manufacturing (%.0f kg) on this grid; "+
				"the zero-tailpipe benefit depends on the grid factor, not the vehicle",
			r.UsePhase, r.Manufacturing,
		)
		return true, reason
	}

	return false, ""
}
