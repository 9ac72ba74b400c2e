package platform

import (
	"fmt"

	"github.com/alexiusacademia/gospar/internal/buckling"
	"github.com/alexiusacademia/gospar/internal/column"
	"github.com/alexiusacademia/gospar/internal/substructure"
)

// ConditionKind names a non-fatal condition found during evaluation
type ConditionKind string

const (
	InsufficientBallastCapacity ConditionKind = "InsufficientBallastCapacity"
	ExcessBuoyancy              ConditionKind = "ExcessBuoyancy"
	NoPositiveRoot              ConditionKind = "NoPositiveRoot"
	NonConvergence              ConditionKind = "NonConvergence"
	Unstable                    ConditionKind = "Unstable"
)

// Condition is one recorded condition. Section is -1 when the condition
// does not belong to a section.
type Condition struct {
	Kind    ConditionKind
	Column  string // "base", "auxiliary", or empty for the system
	Section int
	Message string
}

func (c Condition) String() string {
	if c.Section >= 0 {
		return fmt.Sprintf("%s [%s section %d]: %s", c.Kind, c.Column, c.Section, c.Message)
	}
	return fmt.Sprintf("%s: %s", c.Kind, c.Message)
}

// Costs of one column
type Costs struct {
	Structural float64 // $
	Outfitting float64 // $
	Ballast    float64 // $
}

// Total returns the column cost
func (c Costs) Total() float64 {
	return c.Structural + c.Outfitting + c.Ballast
}

// ColumnResults holds everything computed for one column
type ColumnResults struct {
	Column    *column.Column
	Layout    column.Layout
	Mass      column.MassBreakdown
	Permanent column.Slug
	Fixed     column.Slug
	Hydro     column.Hydrostatics
	Buckling  buckling.Result
	Ratios    column.Ratios
	Costs     Costs
}

// Results of one design evaluation
type Results struct {
	Base      ColumnResults
	Auxiliary *ColumnResults // nil for a spar

	BaseAuxiliarySpacing float64
	FairleadRadius       float64

	Balance   substructure.Balance
	Stability substructure.Stability
	Periods   substructure.Periods

	TotalCost  float64
	Conditions []Condition
}

// Has reports whether a condition of the given kind was recorded
func (r *Results) Has(kind ConditionKind) bool {
	for _, c := range r.Conditions {
		if c.Kind == kind {
			return true
		}
	}
	return false
}

// BucklingPasses reports whether every section of every column passes
func (r *Results) BucklingPasses() bool {
	if !r.Base.Buckling.Passes() {
		return false
	}
	return r.Auxiliary == nil || r.Auxiliary.Buckling.Passes()
}
