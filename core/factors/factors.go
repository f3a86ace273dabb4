// Package factors holds the emission-factor reference data: physical and
// economic constants per drivetrain and size class, sourced from LCA
// literature defaults (ecoinvent, GREET, JEC Well-to-Wheels). The engine
// only ever reads this data through the Source interface.
package factors

import (
	"errors"
	"fmt"

	"github.com/kilianp07/carboncompare/core/model"
)

// ErrNotFound marks an unresolved (vehicle type, size) pair. The engine
// must fail the request rather than substitute a guessed default.
var ErrNotFound = errors.New("emission factors not found")

// FuelKind selects the use-phase emission formula.
type FuelKind string

const (
	FuelElectricity FuelKind = "electricity"
	FuelPetrol      FuelKind = "petrol"
	FuelDiesel      FuelKind = "diesel"
)

const (
	// BatteryManufacturingPerKWh is the battery production intensity in
	// kg CO2-eq per kWh of pack capacity.
	BatteryManufacturingPerKWh = 150.0

	// PHEVElectricFraction is the real-world share of km a plug-in hybrid
	// drives on grid electricity (ICCT fleet studies).
	PHEVElectricFraction = 0.42

	// GreenwashingOperationalShare flags vehicles whose use-phase share of
	// the lifecycle total falls below this fraction.
	GreenwashingOperationalShare = 0.05
	// GreenwashingTotalThresholdKg is the lifecycle total above which a
	// negligible operational share becomes worth flagging.
	GreenwashingTotalThresholdKg = 15000.0
)

// Well-to-wheel fuel factors in kg CO2-eq per litre, upstream included.
var fuelWellToWheel = map[FuelKind]float64{
	FuelPetrol: 2.392,
	FuelDiesel: 2.640,
}

// WellToWheel returns the combustion emission factor for a fossil fuel.
func WellToWheel(f FuelKind) (float64, error) {
	v, ok := fuelWellToWheel[f]
	if !ok {
		return 0, fmt.Errorf("no well-to-wheel factor for fuel %q", string(f))
	}
	return v, nil
}

var sizeMultipliers = map[model.VehicleSize]float64{
	model.SizeSmall:  0.85,
	model.SizeMedium: 1.00,
	model.SizeLarge:  1.20,
}

// Factors carries the constants for one (drivetrain, size) pair. Body
// manufacturing, consumption and disposal are already size-scaled by the
// Source; battery capacity and its end-of-life term are size-independent.
type Factors struct {
	// ManufacturingBaseKg covers body and powertrain production.
	ManufacturingBaseKg float64 `yaml:"manufacturing_base_kg" json:"manufacturing_base_kg"`
	// BatteryCapacityKWh is zero for non-electrified drivetrains.
	BatteryCapacityKWh float64 `yaml:"battery_capacity_kwh" json:"battery_capacity_kwh"`
	// ConsumptionPerKm is kWh/km for electricity, L/km for fossil fuels.
	ConsumptionPerKm float64  `yaml:"consumption_per_km" json:"consumption_per_km"`
	Fuel             FuelKind `yaml:"fuel" json:"fuel"`
	// ElectricConsumptionPerKm is the grid-charged kWh/km of the electric
	// share; non-zero only for PHEV.
	ElectricConsumptionPerKm float64 `yaml:"electric_consumption_per_km" json:"electric_consumption_per_km"`
	DisposalBaseKg           float64 `yaml:"disposal_base_kg" json:"disposal_base_kg"`
	// BatteryEOLPerKWh is the net end-of-life burden per kWh after the
	// recycling credit; may be negative for strong material recovery.
	BatteryEOLPerKWh float64 `yaml:"battery_eol_per_kwh" json:"battery_eol_per_kwh"`
}

// Source resolves the factor record for a (drivetrain, size) pair.
type Source interface {
	Lookup(t model.VehicleType, s model.VehicleSize) (Factors, error)
}

// StaticSource serves factor records from an in-memory table of medium-size
// baselines, applying the size multiplier on lookup.
type StaticSource struct {
	table map[model.VehicleType]Factors
}

// NewDefaultSource returns a StaticSource with the literature defaults for
// every supported drivetrain.
func NewDefaultSource() *StaticSource {
	return &StaticSource{table: defaultTable()}
}

// NewStaticSource builds a source from an explicit medium-baseline table.
func NewStaticSource(table map[model.VehicleType]Factors) *StaticSource {
	cp := make(map[model.VehicleType]Factors, len(table))
	for k, v := range table {
		cp[k] = v
	}
	return &StaticSource{table: cp}
}

// Lookup resolves the size-scaled record. An unknown pair is an error,
// never a silent default.
func (s *StaticSource) Lookup(t model.VehicleType, size model.VehicleSize) (Factors, error) {
	f, ok := s.table[t]
	if !ok {
		return Factors{}, fmt.Errorf("vehicle type %s: %w", t, ErrNotFound)
	}
	mult, ok := sizeMultipliers[size]
	if !ok {
		return Factors{}, fmt.Errorf("vehicle size %s: %w", size, ErrNotFound)
	}
	f.ManufacturingBaseKg *= mult
	f.ConsumptionPerKm *= mult
	f.ElectricConsumptionPerKm *= mult
	f.DisposalBaseKg *= mult
	return f, nil
}

// Medium-size baselines. Small and large classes derive from these via the
// 0.85 / 1.20 multipliers.
func defaultTable() map[model.VehicleType]Factors {
	return map[model.VehicleType]Factors{
		model.VehicleBEV: {
			ManufacturingBaseKg: 8900,
			BatteryCapacityKWh:  60,
			ConsumptionPerKm:    0.18, // kWh/km
			Fuel:                FuelElectricity,
			DisposalBaseKg:      200,
			BatteryEOLPerKWh:    20,
		},
		model.VehiclePHEV: {
			ManufacturingBaseKg:      9800,
			BatteryCapacityKWh:       14,
			ConsumptionPerKm:         0.055, // L/km in charge-sustaining mode
			Fuel:                     FuelPetrol,
			ElectricConsumptionPerKm: 0.18, // kWh/km in charge-depleting mode
			DisposalBaseKg:           250,
			BatteryEOLPerKWh:         20,
		},
		model.VehicleHEV: {
			ManufacturingBaseKg: 10100,
			BatteryCapacityKWh:  1.5,
			ConsumptionPerKm:    0.050, // L/km, regeneration already baked in
			Fuel:                FuelPetrol,
			DisposalBaseKg:      280,
			BatteryEOLPerKWh:    20,
		},
		model.VehicleICEVp: {
			ManufacturingBaseKg: 10300,
			ConsumptionPerKm:    0.075, // L/km
			Fuel:                FuelPetrol,
			DisposalBaseKg:      350,
		},
		model.VehicleICEVd: {
			ManufacturingBaseKg: 10700,
			ConsumptionPerKm:    0.060, // L/km
			Fuel:                FuelDiesel,
			DisposalBaseKg:      370,
		},
	}
}
