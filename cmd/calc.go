package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/carboncompare/core/engine"
	"github.com/kilianp07/carboncompare/core/factors"
	"github.com/kilianp07/carboncompare/core/model"
)

var calcFlags struct {
	vehicleType string
	annualKm    float64
	years       int
	gridFactor  float64
	region      string
	size        string
	factorsFile string
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute lifecycle emissions for a single vehicle",
	RunE:  runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&calcFlags.vehicleType, "type", "t", "", "vehicle type (BEV, PHEV, HEV, ICEV-p, ICEV-d)")
	calcCmd.Flags().Float64Var(&calcFlags.annualKm, "annual-km", 15000, "distance driven per year in km")
	calcCmd.Flags().IntVar(&calcFlags.years, "years", 10, "ownership period in years")
	calcCmd.Flags().Float64Var(&calcFlags.gridFactor, "grid-factor", 0, "grid carbon intensity in kg CO2-eq/kWh")
	calcCmd.Flags().StringVar(&calcFlags.region, "region", "", "grid region preset (e.g. uk, france, usa); overrides --grid-factor")
	calcCmd.Flags().StringVar(&calcFlags.size, "size", "medium", "vehicle size (small, medium, large)")
	calcCmd.Flags().StringVar(&calcFlags.factorsFile, "factors", "", "optional emission-factor override file")
	if err := calcCmd.MarkFlagRequired("type"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(calcFlags.vehicleType, calcFlags.annualKm, calcFlags.years,
		calcFlags.gridFactor, calcFlags.region, calcFlags.size)
	if err != nil {
		return err
	}
	src, err := factorSource(calcFlags.factorsFile)
	if err != nil {
		return err
	}

	res, err := engine.New(src).Calculate(cfg)
	if err != nil {
		return err
	}
	return printJSON(cmd, res)
}

func buildConfig(vt string, annualKm float64, years int, gridFactor float64, region, size string) (model.VehicleConfiguration, error) {
	if region != "" {
		preset, ok := factors.GridPreset(region)
		if !ok {
			return model.VehicleConfiguration{}, fmt.Errorf("unknown grid region %q", region)
		}
		gridFactor = preset
	}
	if gridFactor == 0 {
		return model.VehicleConfiguration{}, fmt.Errorf("either --grid-factor or --region is required")
	}
	t, err := model.ParseVehicleType(vt)
	if err != nil {
		return model.VehicleConfiguration{}, err
	}
	cfg := model.VehicleConfiguration{
		VehicleType: t,
		AnnualKm:    annualKm,
		Years:       years,
		GridFactor:  gridFactor,
		VehicleSize: model.VehicleSize(size),
	}
	cfg.Normalize()
	return cfg, cfg.Validate()
}

func factorSource(path string) (factors.Source, error) {
	if path == "" {
		return factors.NewDefaultSource(), nil
	}
	return factors.LoadOverrides(path)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
