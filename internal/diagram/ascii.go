package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// SectionRow is one section of a column as drawn in a profile
type SectionRow struct {
	ZBot, ZTop  float64 // m
	OuterRadius float64 // m, average over the section
	MaxUnity    float64 // largest defined unity of the section
	Undefined   bool    // at least one unity check has no solution
}

// ProfileData holds everything needed to draw a column profile
type ProfileData struct {
	Title       string
	Sections    []SectionRow // bottom to top
	BallastTop  float64      // m, top of solid and water ballast
	HasBallast  bool
	MaxRadius   float64
	UnityLabels []string
	Unities     [][]float64 // one series per label, one value per section
}

// DrawColumnProfile draws the column as stacked sections from top to
// bottom with the waterline and the worst unity check of each section.
func DrawColumnProfile(data ProfileData) string {
	var sb strings.Builder

	widthChars := 24
	rmax := data.MaxRadius
	if rmax <= 0 {
		rmax = 1
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(data.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", len(data.Title))))
	sb.WriteString(fmt.Sprintf("  %8s  %-*s  %s\n", "z (m)", widthChars+2, "section", "max unity"))

	waterDrawn := false
	for i := len(data.Sections) - 1; i >= 0; i-- {
		s := data.Sections[i]

		if !waterDrawn && s.ZBot < 0 {
			sb.WriteString(fmt.Sprintf("  %8.1f  %s ◄─ WL\n", 0.0, strings.Repeat("~", widthChars+2)))
			waterDrawn = true
		}

		w := int(math.Round(s.OuterRadius / rmax * float64(widthChars)))
		if w < 2 {
			w = 2
		}
		pad := (widthChars - w) / 2
		fill := "░"
		if data.HasBallast && s.ZTop <= data.BallastTop {
			fill = "▓"
		}
		body := strings.Repeat(" ", pad) + "│" + strings.Repeat(fill, w-2) + "│" + strings.Repeat(" ", widthChars-w-pad)

		mark := "ok"
		switch {
		case s.Undefined:
			mark = "undefined"
		case s.MaxUnity > 1:
			mark = "FAIL"
		}
		sb.WriteString(fmt.Sprintf("  %8.1f   %s   %6.3f %s\n", s.ZTop, body, s.MaxUnity, mark))
	}
	if len(data.Sections) > 0 {
		sb.WriteString(fmt.Sprintf("  %8.1f\n", data.Sections[0].ZBot))
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Shell\n")
	sb.WriteString("  ▓▓▓ = Ballasted\n")
	sb.WriteString("  ~~~ = Still waterline\n")

	return sb.String()
}

// DrawUnityGraph plots the unity checks against section index, bottom
// section first. Undefined checks plot as zero.
func DrawUnityGraph(data ProfileData) string {
	var series [][]float64
	for _, u := range data.Unities {
		if len(u) == 0 {
			continue
		}
		s := make([]float64, len(u))
		for i, v := range u {
			if !math.IsNaN(v) {
				s[i] = v
			}
		}
		// asciigraph needs at least two points to draw a line
		if len(s) == 1 {
			s = append(s, s[0])
		}
		series = append(series, s)
	}
	if len(series) == 0 {
		return ""
	}

	caption := "unity by section, bottom to top"
	if len(data.UnityLabels) > 0 {
		caption += ": " + strings.Join(data.UnityLabels, ", ")
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue, asciigraph.Green, asciigraph.Yellow),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
