package model

import (
	"errors"
	"fmt"
)

// ErrInvalid marks request validation failures so transport layers can map
// them to a caller-fault status.
var ErrInvalid = errors.New("invalid configuration")

// VehicleType identifies the drivetrain of a vehicle.
type VehicleType string

const (
	VehicleBEV   VehicleType = "BEV"    // battery electric
	VehiclePHEV  VehicleType = "PHEV"   // plug-in hybrid
	VehicleHEV   VehicleType = "HEV"    // full hybrid, no grid charging
	VehicleICEVp VehicleType = "ICEV-p" // internal combustion, petrol
	VehicleICEVd VehicleType = "ICEV-d" // internal combustion, diesel
)

// VehicleTypes lists every supported drivetrain.
var VehicleTypes = []VehicleType{VehicleBEV, VehiclePHEV, VehicleHEV, VehicleICEVp, VehicleICEVd}

func (t VehicleType) String() string { return string(t) }

// Valid reports whether t is a known drivetrain.
func (t VehicleType) Valid() bool {
	switch t {
	case VehicleBEV, VehiclePHEV, VehicleHEV, VehicleICEVp, VehicleICEVd:
		return true
	}
	return false
}

// ParseVehicleType converts a wire value into a VehicleType.
func ParseVehicleType(s string) (VehicleType, error) {
	t := VehicleType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown vehicle_type %q: %w", s, ErrInvalid)
	}
	return t, nil
}

// VehicleSize identifies the size class used to scale body-related factors.
type VehicleSize string

const (
	SizeSmall  VehicleSize = "small"
	SizeMedium VehicleSize = "medium"
	SizeLarge  VehicleSize = "large"
)

// VehicleSizes lists every supported size class.
var VehicleSizes = []VehicleSize{SizeSmall, SizeMedium, SizeLarge}

func (s VehicleSize) String() string { return string(s) }

// Valid reports whether s is a known size class.
func (s VehicleSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// VehicleConfiguration is the user-supplied input for one lifecycle
// calculation. Constructed once per request and never mutated afterwards.
type VehicleConfiguration struct {
	VehicleType VehicleType `json:"vehicle_type" binding:"required"`
	// AnnualKm is the distance driven per year in km.
	AnnualKm float64 `json:"annual_km" binding:"required,gt=0,lte=100000"`
	// Years is the ownership period.
	Years int `json:"years" binding:"required,gte=1,lte=30"`
	// GridFactor is the electricity carbon intensity in kg CO2-eq/kWh.
	GridFactor float64 `json:"grid_factor" binding:"required,gt=0,lte=2"`
	VehicleSize VehicleSize `json:"vehicle_size"`
}

// Normalize applies defaults for optional fields.
func (c *VehicleConfiguration) Normalize() {
	if c.VehicleSize == "" {
		c.VehicleSize = SizeMedium
	}
}

// Validate checks that the configuration is sound. The first offending
// field is reported; nothing is partially computed on failure.
func (c VehicleConfiguration) Validate() error {
	if !c.VehicleType.Valid() {
		return fmt.Errorf("unknown vehicle_type %q: %w", string(c.VehicleType), ErrInvalid)
	}
	if c.AnnualKm <= 0 {
		return fmt.Errorf("annual_km must be positive, got %g: %w", c.AnnualKm, ErrInvalid)
	}
	if c.Years < 1 {
		return fmt.Errorf("years must be a positive integer, got %d: %w", c.Years, ErrInvalid)
	}
	if c.GridFactor <= 0 {
		return fmt.Errorf("grid_factor must be positive, got %g: %w", c.GridFactor, ErrInvalid)
	}
	if !c.VehicleSize.Valid() {
		return fmt.Errorf("unknown vehicle_size %q: %w", string(c.VehicleSize), ErrInvalid)
	}
	return nil
}

// TotalKm returns the lifetime distance. Positive whenever Validate passes,
// which guards the per-km division downstream.
func (c VehicleConfiguration) TotalKm() float64 {
	return c.AnnualKm * float64(c.Years)
}
