package cmd

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gospar/internal/config"
	"github.com/alexiusacademia/gospar/internal/diagram"
	"github.com/alexiusacademia/gospar/internal/logging"
	"github.com/alexiusacademia/gospar/internal/platform"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	evaluateFiles       []string
	evaluateShowDiagram bool
	evaluateExportFile  string
	evaluateProfileFile string
	evaluateLogLevel    string
	evaluateWorkers     int
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a floating platform design",
	Long: `Evaluate a spar or semisubmersible design defined in a YAML file.

The evaluation builds every column, balances the platform with water
ballast, checks its hydrostatic stability and heel, estimates the
rigid-body natural periods, and runs the API Bulletin 2U buckling checks
on every column section.

Values in the file may be overridden with GOSPAR_* environment
variables, e.g. GOSPAR_ENVIRONMENT_WAVE_HEIGHT=8.

Several files are evaluated concurrently and summarized in one table.

Examples:
  gospar evaluate -f design.yaml
  gospar evaluate -f design.yaml --diagram -o unity.png
  gospar evaluate -f a.yaml -f b.yaml -f c.yaml --workers 4`,
	Run: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringSliceVarP(&evaluateFiles, "file", "f", nil, "Path to design YAML file, repeatable [required]")
	evaluateCmd.MarkFlagRequired("file")

	// Diagram options
	evaluateCmd.Flags().BoolVar(&evaluateShowDiagram, "diagram", false, "Show ASCII column profile and unity graph")
	evaluateCmd.Flags().StringVarP(&evaluateExportFile, "output", "o", "", "Export unity plot to file (png, svg, pdf)")
	evaluateCmd.Flags().StringVar(&evaluateProfileFile, "profile", "", "Export column profile to file (png, svg, pdf)")

	evaluateCmd.Flags().StringVar(&evaluateLogLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	evaluateCmd.Flags().IntVar(&evaluateWorkers, "workers", 0, "Concurrent evaluations for several files (default: all CPUs)")
}

func runEvaluate(cmd *cobra.Command, args []string) {
	cfgs := make([]*config.Config, len(evaluateFiles))
	for i, f := range evaluateFiles {
		cfg, err := config.Load(f)
		if err != nil {
			fmt.Printf("Error loading design: %v\n", err)
			return
		}
		cfgs[i] = cfg
	}

	level := cfgs[0].Logging.Level
	if evaluateLogLevel != "" {
		level = evaluateLogLevel
	}
	logger, err := logging.New(level, cfgs[0].Logging.Format, cfgs[0].Logging.OutputFile)
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		return
	}
	defer logger.Sync()

	if len(cfgs) > 1 {
		runEvaluateBatch(cfgs, logger)
		return
	}

	d := cfgs[0].Design
	d.Options.Logger = logger
	r, err := platform.Evaluate(d)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	kind := "SPAR"
	if r.Auxiliary != nil {
		kind = fmt.Sprintf("SEMISUBMERSIBLE (%d OFFSET COLUMNS)", d.Auxiliary.Count)
	}
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     FLOATING PLATFORM EVALUATION - %s\n", kind)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Design: %s\n", evaluateFiles[0])
	fmt.Printf("  Condition: %s, %s pressure loading\n", d.Options.Condition, d.Options.Loading)
	if hub := d.Base.Freeboard + d.Loads.Turbine.RNACG; d.Environment.WindReferenceSpeed > 0 {
		u := d.Environment.WindSpeedAt(hub)
		fmt.Printf("  Hub wind: %.1f m/s at %.1f m (q = %.0f Pa)\n", u, hub, 0.5*d.Environment.AirDensity*u*u)
	}
	fmt.Println()

	printColumn("BASE", &r.Base)
	if r.Auxiliary != nil {
		printColumn("OFFSET", r.Auxiliary)
	}
	printSystem(r)
	printConditions(r.Conditions)

	lines := []string{
		fmt.Sprintf("Buckling:     %s", passFail(r.BucklingPasses())),
		fmt.Sprintf("Ballast:      %s", passFail(!r.Has(platform.InsufficientBallastCapacity) && !r.Has(platform.ExcessBuoyancy))),
		fmt.Sprintf("Stability:    %s", passFail(!r.Stability.Unstable)),
		fmt.Sprintf("Total cost:   $%.0f", r.TotalCost),
	}
	fmt.Print(diagram.DrawSummaryBox("SUMMARY", lines))
	fmt.Println()

	profiles := columnProfiles(r)
	if evaluateShowDiagram {
		for _, p := range profiles {
			fmt.Print(diagram.DrawColumnProfile(p))
			fmt.Println()
			fmt.Println(diagram.DrawUnityGraph(p))
			fmt.Println()
		}
	}

	if evaluateExportFile != "" {
		exportAll(profiles, evaluateExportFile, diagram.ExportUnityProfile)
	}
	if evaluateProfileFile != "" {
		exportAll(profiles, evaluateProfileFile, diagram.ExportColumnProfile)
	}
}

func runEvaluateBatch(cfgs []*config.Config, logger *zap.Logger) {
	designs := make([]platform.Design, len(cfgs))
	for i, c := range cfgs {
		designs[i] = c.Design
		designs[i].Options.Logger = logger
	}

	out := platform.EvaluateBatch(context.Background(), designs, evaluateWorkers)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FLOATING PLATFORM EVALUATION - BATCH")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := newTable()
	fmt.Fprintf(w, "  Design\tWater (t)\tGM (m)\tHeel (°)\tT heave (s)\tT pitch (s)\tCost ($)\tBuckling\n")
	fmt.Fprintf(w, "  ──────\t─────────\t──────\t────────\t───────────\t───────────\t────────\t────────\n")
	for i, o := range out {
		if o.Err != nil {
			fmt.Fprintf(w, "  %s\terror: %v\n", evaluateFiles[i], o.Err)
			continue
		}
		r := o.Results
		fmt.Fprintf(w, "  %s\t%.1f\t%.2f\t%.2f\t%s\t%s\t%.0f\t%s\n",
			evaluateFiles[i], r.Balance.Ballast.Water.Mass/1000,
			r.Stability.MetacentricHeight, r.Stability.HeelAngle,
			formatPeriod(r.Periods.Period[2]), formatPeriod(r.Periods.Period[4]),
			r.TotalCost, passFail(r.BucklingPasses()))
	}
	w.Flush()
	fmt.Println()
}

// columnProfiles builds the drawing data of every distinct column
func columnProfiles(r *platform.Results) []diagram.ProfileData {
	top := math.NaN()
	switch {
	case r.Balance.Ballast.Water.Mass > 0:
		top = r.Balance.Ballast.Water.Top()
	case r.Base.Fixed.Height+r.Base.Permanent.Height > 0:
		top = r.Base.Fixed.Top()
	}
	profiles := []diagram.ProfileData{diagram.NewProfileData("Base", &r.Base, top)}

	if a := r.Auxiliary; a != nil {
		top = math.NaN()
		if a.Fixed.Height+a.Permanent.Height > 0 {
			top = a.Fixed.Top()
		}
		profiles = append(profiles, diagram.NewProfileData("Offset", a, top))
	}
	return profiles
}

// exportAll writes one file per column. Offset columns get a suffix
// before the extension.
func exportAll(profiles []diagram.ProfileData, filename string, export func(diagram.ProfileData, string) error) {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	for i, p := range profiles {
		name := filename
		if i > 0 {
			name = fmt.Sprintf("%s-%s%s", stem, strings.ToLower(p.Title), ext)
		}
		if err := export(p, name); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			continue
		}
		fmt.Printf("  Diagram exported to: %s\n", name)
	}
}
