package factors

// GridPresets maps region identifiers to grid carbon intensity in
// kg CO2-eq/kWh (ember / IEA yearly averages). A convenience lookup for
// the transport layer; the engine only ever sees a resolved number.
var GridPresets = map[string]float64{
	"norway":  0.017,
	"sweden":  0.041,
	"france":  0.056,
	"uk":      0.233,
	"eu":      0.255,
	"germany": 0.380,
	"usa":     0.386,
	"china":   0.582,
	"india":   0.708,
	"poland":  0.766,
}

// GridPreset resolves a region identifier to its grid factor.
func GridPreset(region string) (float64, bool) {
	v, ok := GridPresets[region]
	return v, ok
}
