package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/carboncompare/core/engine"
	"github.com/kilianp07/carboncompare/core/model"
)

var compareFlags struct {
	vehicles    string
	annualKm    float64
	years       int
	gridFactor  float64
	region      string
	size        string
	factorsFile string
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare lifecycle emissions across vehicles under one usage profile",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareFlags.vehicles, "vehicles", "BEV,ICEV-p", "comma-separated vehicle types to compare (2-5)")
	compareCmd.Flags().Float64Var(&compareFlags.annualKm, "annual-km", 15000, "distance driven per year in km")
	compareCmd.Flags().IntVar(&compareFlags.years, "years", 10, "ownership period in years")
	compareCmd.Flags().Float64Var(&compareFlags.gridFactor, "grid-factor", 0, "grid carbon intensity in kg CO2-eq/kWh")
	compareCmd.Flags().StringVar(&compareFlags.region, "region", "", "grid region preset (e.g. uk, france, usa); overrides --grid-factor")
	compareCmd.Flags().StringVar(&compareFlags.size, "size", "medium", "vehicle size (small, medium, large)")
	compareCmd.Flags().StringVar(&compareFlags.factorsFile, "factors", "", "optional emission-factor override file")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	var cfgs []model.VehicleConfiguration
	for _, raw := range strings.Split(compareFlags.vehicles, ",") {
		vt := strings.TrimSpace(raw)
		if vt == "" {
			continue
		}
		cfg, err := buildConfig(vt, compareFlags.annualKm, compareFlags.years,
			compareFlags.gridFactor, compareFlags.region, compareFlags.size)
		if err != nil {
			return fmt.Errorf("vehicle %s: %w", vt, err)
		}
		cfgs = append(cfgs, cfg)
	}

	src, err := factorSource(compareFlags.factorsFile)
	if err != nil {
		return err
	}
	res, err := engine.New(src).Compare(cfgs)
	if err != nil {
		return err
	}
	return printJSON(cmd, res)
}
