package buckling

import (
	"math"

	"github.com/alexiusacademia/gospar/internal/column"
	"github.com/alexiusacademia/gospar/internal/loads"
)

// Result holds the checks of all sections, bottom to top
type Result struct {
	Sections []SectionResult
}

// Check runs the section checks along a column. topMass is the mass
// carried on top of the column (tower and RNA); each section also carries
// the structure above its base.
func Check(c *column.Column, mb column.MassBreakdown, topMass float64, env loads.Environment, opts Options) Result {
	g := env.G()
	n := len(c.Sections)
	res := Result{Sections: make([]SectionResult, n)}

	stack := topMass
	for i := n - 1; i >= 0; i-- {
		stack += mb.Section[i]
		sec := c.Sections[i]
		p := env.Pressure(sec.Midpoint())
		res.Sections[i] = CheckSection(sec, c.Material, g*stack, p, opts)
	}
	return res
}

// Array extracts one unity value per section. which follows the order of
// SectionResult.Unities.
func (r Result) Array(which int) []float64 {
	out := make([]float64, len(r.Sections))
	for i, s := range r.Sections {
		out[i] = s.Unities()[which].Value
	}
	return out
}

// MaxUnity returns the largest defined unity value over all sections and
// checks
func (r Result) MaxUnity() float64 {
	m := 0.0
	for _, s := range r.Sections {
		for _, u := range s.Unities() {
			if u.Status == StatusOK {
				m = math.Max(m, u.Value)
			}
		}
	}
	return m
}

// Passes reports whether every section passes every check
func (r Result) Passes() bool {
	for _, s := range r.Sections {
		if !s.Passes() {
			return false
		}
	}
	return true
}

// Undefined lists indices of sections with at least one undefined check
func (r Result) Undefined() []int {
	var idx []int
	for i, s := range r.Sections {
		for _, u := range s.Unities() {
			if u.Status == StatusUndefined {
				idx = append(idx, i)
				break
			}
		}
	}
	return idx
}
