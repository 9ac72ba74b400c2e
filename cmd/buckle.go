package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gospar/internal/api2u"
	"github.com/alexiusacademia/gospar/internal/buckling"
	"github.com/alexiusacademia/gospar/internal/column"
	"github.com/alexiusacademia/gospar/internal/config"
	"github.com/alexiusacademia/gospar/internal/loads"
	"github.com/alexiusacademia/gospar/internal/section"
	"github.com/spf13/cobra"
)

var (
	// Shell inputs
	buckleDiameter  float64
	buckleThickness float64
	buckleLength    float64

	// Ring stiffener inputs
	buckleSpacing         float64
	buckleWebHeight       float64
	buckleWebThickness    float64
	buckleFlangeWidth     float64
	buckleFlangeThickness float64

	// Material inputs
	buckleFy float64
	buckleE  float64
	buckleNu float64

	// Loads
	buckleDepth      float64
	buckleAxialLoad  float64
	buckleWaveHeight float64
	buckleWavePeriod float64
	buckleWaterDepth float64
	buckleCondition  string
	buckleLoading    string
)

var buckleCmd = &cobra.Command{
	Use:   "buckle",
	Short: "Check one ring-stiffened shell section per API Bulletin 2U",
	Long: `Run the API Bulletin 2U local and general buckling checks on a single
ring-stiffened cylindrical section under axial compression and external
hydrostatic pressure.

Lengths are in meters, stresses in MPa, and the axial load in kN.

Examples:
  # 10 m diameter, 40 mm shell, rings every 1.2 m, 60 m below water
  gospar buckle --diameter 10 --thickness 0.04 --spacing 1.2 \
    --web-height 0.5 --web-thickness 0.03 --flange-width 0.25 --flange-thickness 0.04 \
    --depth 60 --axial-load 20000`,
	Run: runBuckle,
}

func init() {
	rootCmd.AddCommand(buckleCmd)

	// Geometry flags
	buckleCmd.Flags().Float64VarP(&buckleDiameter, "diameter", "d", 0, "Shell outer diameter (m) [required]")
	buckleCmd.Flags().Float64VarP(&buckleThickness, "thickness", "t", 0, "Shell wall thickness (m) [required]")
	buckleCmd.Flags().Float64Var(&buckleLength, "length", 20, "Length between bulkheads or heavy rings (m)")

	buckleCmd.Flags().Float64Var(&buckleSpacing, "spacing", 0, "Ring stiffener spacing (m) [required]")
	buckleCmd.Flags().Float64Var(&buckleWebHeight, "web-height", 0, "Stiffener web height (m) [required]")
	buckleCmd.Flags().Float64Var(&buckleWebThickness, "web-thickness", 0, "Stiffener web thickness (m) [required]")
	buckleCmd.Flags().Float64Var(&buckleFlangeWidth, "flange-width", 0, "Stiffener flange width (m) [required]")
	buckleCmd.Flags().Float64Var(&buckleFlangeThickness, "flange-thickness", 0, "Stiffener flange thickness (m) [required]")

	// Material flags
	buckleCmd.Flags().Float64Var(&buckleFy, "fy", config.SteelYield/1e6, "Steel yield strength Fy (MPa)")
	buckleCmd.Flags().Float64Var(&buckleE, "e", config.SteelModulus/1e6, "Elastic modulus E (MPa)")
	buckleCmd.Flags().Float64Var(&buckleNu, "nu", config.SteelPoisson, "Poisson's ratio")

	// Load flags
	buckleCmd.Flags().Float64Var(&buckleDepth, "depth", 0, "Depth of the section midpoint below the waterline (m)")
	buckleCmd.Flags().Float64Var(&buckleAxialLoad, "axial-load", 0, "Axial compressive load (kN)")
	buckleCmd.Flags().Float64Var(&buckleWaveHeight, "wave-height", 0, "Significant wave height (m)")
	buckleCmd.Flags().Float64Var(&buckleWavePeriod, "wave-period", 0, "Significant wave period (s)")
	buckleCmd.Flags().Float64Var(&buckleWaterDepth, "water-depth", 200, "Water depth (m)")
	buckleCmd.Flags().StringVar(&buckleCondition, "condition", string(api2u.Extreme), "Load condition (normal, extreme)")
	buckleCmd.Flags().StringVar(&buckleLoading, "loading", string(api2u.Hydrostatic), "Pressure loading (hydrostatic, radial)")

	// Mark required flags
	for _, f := range []string{"diameter", "thickness", "spacing", "web-height", "web-thickness", "flange-width", "flange-thickness"} {
		buckleCmd.MarkFlagRequired(f)
	}
}

func runBuckle(cmd *cobra.Command, args []string) {
	stiffener := section.TBeam{
		WebHeight:       buckleWebHeight,
		WebThickness:    buckleWebThickness,
		FlangeWidth:     buckleFlangeWidth,
		FlangeThickness: buckleFlangeThickness,
	}

	// Validate through the same rules as a one-section column
	cfg := column.Config{
		SectionHeight: []float64{buckleLength},
		OuterDiameter: []float64{buckleDiameter, buckleDiameter},
		WallThickness: []float64{buckleThickness, buckleThickness},
		Stiffeners: column.Stiffeners{
			WebHeight:       []float64{buckleWebHeight},
			WebThickness:    []float64{buckleWebThickness},
			FlangeWidth:     []float64{buckleFlangeWidth},
			FlangeThickness: []float64{buckleFlangeThickness},
			Spacing:         []float64{buckleSpacing},
		},
		Material: column.Material{Density: config.SteelDensity, E: buckleE * 1e6, Nu: buckleNu, YieldStress: buckleFy * 1e6},
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	env := loads.Environment{
		WaterDepth:            buckleWaterDepth,
		WaterDensity:          config.WaterDensity,
		SignificantWaveHeight: buckleWaveHeight,
		SignificantWavePeriod: buckleWavePeriod,
	}
	if err := env.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	switch api2u.LoadCondition(buckleCondition) {
	case api2u.Normal, api2u.Extreme:
	default:
		fmt.Printf("Error: unknown load condition %q\n", buckleCondition)
		return
	}
	switch api2u.PressureLoading(buckleLoading) {
	case api2u.Hydrostatic, api2u.Radial:
	default:
		fmt.Printf("Error: unknown pressure loading %q\n", buckleLoading)
		return
	}

	r := buckleDiameter / 2
	z := -buckleDepth
	sec := column.Section{
		ZBot:         z - buckleLength/2,
		ZTop:         z + buckleLength/2,
		Height:       buckleLength,
		RadiusBot:    r,
		RadiusTop:    r,
		ThicknessBot: buckleThickness,
		ThicknessTop: buckleThickness,
		Stiffener:    stiffener,
		Spacing:      buckleSpacing,
		BayLength:    buckleLength,
	}
	opts := buckling.Options{
		Condition: api2u.LoadCondition(buckleCondition),
		Loading:   api2u.PressureLoading(buckleLoading),
	}
	res := buckling.CheckSection(sec, cfg.Material, buckleAxialLoad*1e3, env.Pressure(z), opts)

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     RING-STIFFENED SHELL CHECK - API BULLETIN 2U")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	heading("APPLIED LOADS:")
	w := newTable()
	fmt.Fprintf(w, "  External pressure:\t%.2f kPa\n", res.Pressure/1e3)
	fmt.Fprintf(w, "  Axial stress:\t%.2f MPa\n", res.AxialStress/1e6)
	fmt.Fprintf(w, "  Hoop stress:\t%.2f MPa\n", res.HoopStress/1e6)
	fmt.Fprintf(w, "  KθL / KθG:\t%.4f / %.4f\n", res.Hoop.Local, res.Hoop.General)
	w.Flush()
	fmt.Println()

	heading("EFFECTIVE RING:")
	w = newTable()
	fmt.Fprintf(w, "  Effective shell width:\t%.1f mm\n", res.Ring.EffectiveWidth*1e3)
	fmt.Fprintf(w, "  Area:\t%.0f mm²\n", res.Ring.Area*1e6)
	fmt.Fprintf(w, "  Inertia:\t%.4e m⁴\n", res.Ring.Inertia)
	fmt.Fprintf(w, "  Web compactness:\t%.3f\t%s\n", res.WebCompactness, passFail(res.WebCompactness <= 1))
	fmt.Fprintf(w, "  Flange compactness:\t%.3f\t%s\n", res.FlangeCompactness, passFail(res.FlangeCompactness <= 1))
	w.Flush()
	fmt.Println()

	heading("CRITICAL STRESSES (MPa):")
	w = newTable()
	fmt.Fprintf(w, "  Mode\tElastic\tInelastic\n")
	fmt.Fprintf(w, "  ────\t───────\t─────────\n")
	fmt.Fprintf(w, "  Local axial\t%.2f\t%.2f\n", res.LocalAxial.Elastic/1e6, res.LocalAxial.Inelastic/1e6)
	fmt.Fprintf(w, "  Local pressure (n=%d)\t%.2f\t%.2f\n", res.LocalWaves, res.LocalPressure.Elastic/1e6, res.LocalPressure.Inelastic/1e6)
	fmt.Fprintf(w, "  General axial\t%.2f\t%.2f\n", res.GeneralAxial.Elastic/1e6, res.GeneralAxial.Inelastic/1e6)
	fmt.Fprintf(w, "  General pressure (n=%.2f)\t%.2f\t%.2f\n", res.GeneralWaves, res.GeneralPressure.Elastic/1e6, res.GeneralPressure.Inelastic/1e6)
	w.Flush()
	fmt.Println()

	heading("UNITY CHECKS:")
	w = newTable()
	for i, u := range res.Unities() {
		fmt.Fprintf(w, "  %s:\t%s\t%s\n", buckling.UnityNames[i], formatUnity(u), passFail(u.Passes()))
	}
	w.Flush()
	fmt.Println()

	if !res.LocalConverged || !res.GeneralConverged {
		fmt.Println(warnStyle.Render("  Warning: a buckling mode search did not converge; best value shown"))
		fmt.Println()
	}
	fmt.Printf("  Status: %s\n", passFail(res.Passes()))
	fmt.Println()
}
