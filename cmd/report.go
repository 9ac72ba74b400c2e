package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gospar/internal/buckling"
	"github.com/alexiusacademia/gospar/internal/platform"
	"github.com/alexiusacademia/gospar/internal/substructure"
	"github.com/charmbracelet/lipgloss"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

const rule = "───────────────────────────────────────────────────────────────"

func passFail(ok bool) string {
	if ok {
		return passStyle.Render("PASS")
	}
	return failStyle.Render("FAIL")
}

func heading(title string) {
	fmt.Println(title)
	fmt.Println(rule)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// formatUnity prints a unity value or its undefined status
func formatUnity(u buckling.Unity) string {
	if u.Status == buckling.StatusUndefined {
		return "undef"
	}
	s := fmt.Sprintf("%.3f", u.Value)
	if u.Value > 1 {
		return failStyle.Render(s)
	}
	return s
}

func formatPeriod(t float64) string {
	if math.IsInf(t, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", t)
}

func printColumn(name string, cr *platform.ColumnResults) {
	heading(fmt.Sprintf("%s COLUMN:", name))
	w := newTable()
	c := cr.Column
	fmt.Fprintf(w, "  Sections:\t%d\n", len(c.Sections))
	fmt.Fprintf(w, "  Draft:\t%.2f m\n", cr.Layout.Draft)
	fmt.Fprintf(w, "  Freeboard:\t%.2f m\n", cr.Layout.Freeboard)
	fmt.Fprintf(w, "  Draft / water depth:\t%.3f\n", cr.Layout.DraftDepthRatio)
	fmt.Fprintf(w, "  Fairlead / draft:\t%.3f\n", cr.Layout.FairleadDraftRatio)
	fmt.Fprintf(w, "  Displaced volume:\t%.1f m³\n", cr.Hydro.DisplacedVolume)
	fmt.Fprintf(w, "  Center of buoyancy:\t%.2f m\n", cr.Hydro.CB)
	fmt.Fprintf(w, "  Structural mass:\t%.1f t\n", cr.Mass.Structural/1000)
	fmt.Fprintf(w, "  Outfitting mass:\t%.1f t\n", cr.Mass.Outfitting/1000)
	fmt.Fprintf(w, "  Structural CG:\t%.2f m\n", cr.Mass.CG)
	fmt.Fprintf(w, "  Permanent ballast:\t%.1f t (%.2f m)\n", cr.Permanent.Mass/1000, cr.Permanent.Height)
	fmt.Fprintf(w, "  Fixed ballast:\t%.1f t (%.2f m)\n", cr.Fixed.Mass/1000, cr.Fixed.Height)
	fmt.Fprintf(w, "  Max D/t:\t%.1f\n", cr.Ratios.MaxDiameterThickness)
	fmt.Fprintf(w, "  Cost:\t$%.0f\n", cr.Costs.Total())
	w.Flush()
	fmt.Println()

	fmt.Println("  Buckling (API Bulletin 2U):")
	w = newTable()
	fmt.Fprintf(w, "  #\tz (m)\tσx (MPa)\tp (kPa)\taxial-L\taxial-G\text-L\text-G\tweb\tflange\n")
	fmt.Fprintf(w, "  ─\t─────\t────────\t───────\t───────\t───────\t─────\t─────\t───\t──────\n")
	for i, s := range cr.Buckling.Sections {
		fmt.Fprintf(w, "  %d\t%.1f\t%.1f\t%.1f\t%s\t%s\t%s\t%s\t%.2f\t%.2f\n",
			i+1, s.Elevation, s.AxialStress/1e6, s.Pressure/1e3,
			formatUnity(s.AxialLocal), formatUnity(s.AxialGeneral),
			formatUnity(s.ExternalLocal), formatUnity(s.ExternalGeneral),
			s.WebCompactness, s.FlangeCompactness)
	}
	w.Flush()
	fmt.Printf("  Max unity: %.3f  Status: %s\n", cr.Buckling.MaxUnity(), passFail(cr.Buckling.Passes()))
	if idx := cr.Buckling.Undefined(); len(idx) > 0 {
		fmt.Printf("  %s undefined checks in %d section(s)\n", warnStyle.Render("!"), len(idx))
	}
	fmt.Println()
}

func printSystem(r *platform.Results) {
	b := r.Balance
	heading("BALLAST:")
	w := newTable()
	fmt.Fprintf(w, "  Required water ballast:\t%.1f t\n", b.Ballast.RequiredMass/1000)
	fmt.Fprintf(w, "  Applied water ballast:\t%.1f t\n", b.Ballast.Water.Mass/1000)
	fmt.Fprintf(w, "  Tank capacity:\t%.1f t\n", b.Ballast.Capacity/1000)
	fmt.Fprintf(w, "  Fill height:\t%.2f m (%.1f%%)\n", b.Ballast.Water.Height, 100*b.Ballast.HeightRatio)
	fmt.Fprintf(w, "  System mass:\t%.1f t\n", b.Mass/1000)
	fmt.Fprintf(w, "  System CG:\t%.2f m\n", b.CG.Z)
	fmt.Fprintf(w, "  Center of buoyancy:\t%.2f m\n", b.CB)
	w.Flush()
	fmt.Println()

	st := r.Stability
	heading("STABILITY:")
	w = newTable()
	fmt.Fprintf(w, "  Waterplane area:\t%.2f m²\n", st.WaterplaneArea)
	fmt.Fprintf(w, "  Static stability (zCB - zCG):\t%.2f m\n", st.StaticStability)
	fmt.Fprintf(w, "  Metacentric height:\t%.2f m\n", st.MetacentricHeight)
	fmt.Fprintf(w, "  Restoring moment:\t%.3e N·m/rad\n", st.RestoringMoment)
	fmt.Fprintf(w, "  Overturning moment:\t%.3e N·m\n", st.OverturningMoment)
	fmt.Fprintf(w, "  Heel angle:\t%.2f°\n", st.HeelAngle)
	if st.MaxHeelChecked {
		fmt.Fprintf(w, "  Heel margin:\t%.2f°\t%s\n", st.HeelMargin, passFail(st.HeelMargin >= 0))
	}
	fmt.Fprintf(w, "  Offset force ratio:\t%.3f\t%s\n", st.OffsetForceRatio, passFail(st.OffsetForceRatio <= 1))
	if r.BaseAuxiliarySpacing > 0 {
		fmt.Fprintf(w, "  Column spacing ratio:\t%.3f\t%s\n", r.BaseAuxiliarySpacing, passFail(r.BaseAuxiliarySpacing < 1))
	}
	w.Flush()
	fmt.Println()

	p := r.Periods
	heading("NATURAL PERIODS:")
	w = newTable()
	fmt.Fprintf(w, "  DOF\tMass\tAdded mass\tStiffness\tPeriod (s)\tMargin\n")
	fmt.Fprintf(w, "  ───\t────\t──────────\t─────────\t──────────\t──────\n")
	for i, name := range substructure.DOF {
		fmt.Fprintf(w, "  %s\t%.3e\t%.3e\t%.3e\t%s\t%.2f\n",
			name, p.Mass[i], p.AddedMass[i], p.Stiffness[i], formatPeriod(p.Period[i]), p.Margin[i])
	}
	w.Flush()
	fmt.Println()
}

func printConditions(conds []platform.Condition) {
	if len(conds) == 0 {
		return
	}
	heading("CONDITIONS:")
	for _, c := range conds {
		fmt.Printf("  %s %s\n", warnStyle.Render("!"), c.String())
	}
	fmt.Println()
}
