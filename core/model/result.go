package model

// LifecycleResult is the outcome of one lifecycle calculation. All masses
// are kg CO2-eq; Total is always the exact sum of the three phases.
type LifecycleResult struct {
	VehicleType   VehicleType `json:"vehicle_type"`
	Manufacturing float64     `json:"manufacturing"`
	UsePhase      float64     `json:"use_phase"`
	Disposal      float64     `json:"disposal"`
	Total         float64     `json:"total"`
	// TotalKm is the lifetime distance the emissions are spread over.
	TotalKm float64 `json:"total_km"`
	// PerKm is the lifetime average intensity in g CO2-eq/km.
	PerKm              float64 `json:"per_km"`
	GreenwashingFlag   bool    `json:"greenwashing_flag"`
	GreenwashingReason string  `json:"greenwashing_reason,omitempty"`
}

// BreakEvenPair relates the best vehicle to one comparison vehicle.
// Year is nil when the best vehicle never reaches parity within the
// ownership horizon.
type BreakEvenPair struct {
	Year                       *int        `json:"year"`
	BestVehicle                VehicleType `json:"best_vehicle"`
	ComparisonVehicle          VehicleType `json:"comparison_vehicle"`
	YearlyBestCumulative       []float64   `json:"yearly_best_cumulative"`
	YearlyComparisonCumulative []float64   `json:"yearly_comparison_cumulative"`
}

// BreakEvenAnalysis compares the best vehicle against every other selected
// vehicle: N-1 pairs sharing one year axis.
type BreakEvenAnalysis struct {
	BestVehicle VehicleType     `json:"best_vehicle"`
	YearsRange  []int           `json:"years_range"`
	Pairs       []BreakEvenPair `json:"pairs"`
}

// RecommendationResult names the lowest-emission vehicle of a comparison
// with a spread-based confidence score. Recomputed fresh on every request.
type RecommendationResult struct {
	RecommendedVehicle   VehicleType `json:"recommended_vehicle"`
	TotalEmissionsKg     float64     `json:"total_emissions_kg"`
	ConfidencePercentage float64     `json:"confidence_percentage"`
	SavingsVsWorstKg     float64     `json:"savings_vs_worst_kg"`
	SavingsVsWorstPct    float64     `json:"savings_vs_worst_pct"`
	Reasoning            string      `json:"reasoning"`
}

// ComparisonResult bundles everything a compare request produces.
type ComparisonResult struct {
	Results        []LifecycleResult    `json:"results"`
	BreakEven      *BreakEvenAnalysis   `json:"break_even"`
	Recommendation RecommendationResult `json:"recommendation"`
}
