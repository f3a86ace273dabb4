// Package lca implements the lifecycle emissions calculation: a pure,
// closed-form transformation from one vehicle configuration plus the
// emission-factor table into a phase-by-phase breakdown.
package lca

import (
	"fmt"
	"math"

	"github.com/kilianp07/carboncompare/core/factors"
	"github.com/kilianp07/carboncompare/core/model"
)

// Compute calculates full lifecycle CO2-eq emissions for one vehicle.
//
// Precondition: cfg has passed validation at the boundary, so TotalKm is
// strictly positive. Factor resolution failures are returned as-is so the
// caller can distinguish data faults from caller faults.
func Compute(cfg model.VehicleConfiguration, src factors.Source) (model.LifecycleResult, error) {
	f, err := src.Lookup(cfg.VehicleType, cfg.VehicleSize)
	if err != nil {
		return model.LifecycleResult{}, err
	}
	totalKm := cfg.TotalKm()

	// Manufacturing: size-scaled body and powertrain, plus battery
	// production as a separate capacity-proportional layer.
	manufacturing := f.ManufacturingBaseKg + f.BatteryCapacityKWh*factors.BatteryManufacturingPerKWh

	use, err := usePhase(cfg, f, totalKm)
	if err != nil {
		return model.LifecycleResult{}, err
	}

	// Disposal: size-scaled end-of-life processing plus the net battery
	// recycling term. A strong recycling credit must not drive the
	// lifecycle total below zero.
	disposal := f.DisposalBaseKg + f.BatteryCapacityKWh*f.BatteryEOLPerKWh
	if floor := -(manufacturing + use); disposal < floor {
		disposal = floor
	}

	// Phases are rounded before summation so the reported total is the
	// exact sum of the reported subtotals.
	m := round1(manufacturing)
	u := round1(use)
	d := round1(disposal)
	total := m + u + d

	res := model.LifecycleResult{
		VehicleType:   cfg.VehicleType,
		Manufacturing: m,
		UsePhase:      u,
		Disposal:      d,
		Total:         total,
		TotalKm:       math.Round(totalKm),
		PerKm:         round1(total * 1000 / totalKm),
	}
	res.GreenwashingFlag, res.GreenwashingReason = Detect(res)
	return res, nil
}

func usePhase(cfg model.VehicleConfiguration, f factors.Factors, totalKm float64) (float64, error) {
	switch f.Fuel {
	case factors.FuelElectricity:
		// All energy from the grid; scales linearly with grid intensity.
		return f.ConsumptionPerKm * totalKm * cfg.GridFactor, nil
	case factors.FuelPetrol, factors.FuelDiesel:
		wtw, err := factors.WellToWheel(f.Fuel)
		if err != nil {
			return 0, err
		}
		fossil := f.ConsumptionPerKm * totalKm * wtw
		if f.ElectricConsumptionPerKm > 0 {
			// Plug-in hybrid: fixed real-world split between grid-charged
			// and fossil km.
			electric := f.ElectricConsumptionPerKm * totalKm * cfg.GridFactor
			return factors.PHEVElectricFraction*electric + (1-factors.PHEVElectricFraction)*fossil, nil
		}
		return fossil, nil
	default:
		return 0, fmt.Errorf("unknown fuel kind %q", string(f.Fuel))
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
