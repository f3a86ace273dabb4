package factors

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/carboncompare/core/model"
)

// LoadOverrides reads a YAML file keyed by vehicle type and merges the
// records over the default table. Only listed drivetrains are replaced;
// each override is a complete record, partial records would silently zero
// the missing constants and corrupt the totals.
func LoadOverrides(path string) (*StaticSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read factor overrides: %w", err)
	}
	var raw map[string]Factors
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse factor overrides: %w", err)
	}
	table := defaultTable()
	for key, f := range raw {
		t, err := model.ParseVehicleType(key)
		if err != nil {
			return nil, fmt.Errorf("factor overrides: %w", err)
		}
		if err := validateRecord(t, f); err != nil {
			return nil, err
		}
		table[t] = f
	}
	return &StaticSource{table: table}, nil
}

func validateRecord(t model.VehicleType, f Factors) error {
	if f.ManufacturingBaseKg <= 0 {
		return fmt.Errorf("factor overrides: %s: manufacturing_base_kg must be positive", t)
	}
	if f.ConsumptionPerKm <= 0 {
		return fmt.Errorf("factor overrides: %s: consumption_per_km must be positive", t)
	}
	if f.Fuel == FuelElectricity {
		return nil
	}
	if _, err := WellToWheel(f.Fuel); err != nil {
		return fmt.Errorf("factor overrides: %s: %w", t, err)
	}
	return nil
}
