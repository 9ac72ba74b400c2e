package platform

import (
	"fmt"

	"github.com/alexiusacademia/gospar/internal/buckling"
	"github.com/alexiusacademia/gospar/internal/column"
	"github.com/alexiusacademia/gospar/internal/loads"
	"github.com/alexiusacademia/gospar/internal/substructure"
	"go.uber.org/zap"
)

// Evaluate runs the full analysis of a design. The only error is a
// configuration problem found before any computation; every other
// condition is recorded in Results.Conditions.
func Evaluate(d Design) (*Results, error) {
	log := d.Options.logger().With(zap.String("op", "platform.Evaluate"))

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid design: %w", err)
	}

	opts := buckling.Options{Condition: d.Options.condition(), Loading: d.Options.loading()}
	env := d.Environment
	ld := d.Loads

	base, err := evaluateColumn(d.Base, env, ld, ld.Turbine.Mass(), opts)
	if err != nil {
		return nil, fmt.Errorf("base column: %w", err)
	}
	log.Debug("base column evaluated",
		zap.Int("sections", len(base.Column.Sections)),
		zap.Float64("mass", base.Mass.Total()))

	res := &Results{Base: *base}
	sys := &substructure.System{
		Base:  substructure.NewMember(base.Column, base.Mass, env.WaterDensity),
		Env:   env,
		Loads: ld,
	}

	sys.Ballast, err = base.Column.BallastTable(env.WaterDensity)
	if err != nil {
		return nil, fmt.Errorf("ballast table: %w", err)
	}

	fairleadZ := -ld.Mooring.FairleadDepth
	sys.FairleadRadius = base.Column.OuterRadiusAt(fairleadZ) + ld.Mooring.FairleadOffset

	if d.hasAuxiliary() {
		a := d.Auxiliary
		aux, err := evaluateColumn(a.Column, env, ld, 0, opts)
		if err != nil {
			return nil, fmt.Errorf("auxiliary column: %w", err)
		}
		log.Debug("auxiliary columns evaluated", zap.Int("count", a.Count))

		res.Auxiliary = aux
		sys.Auxiliary = &substructure.Auxiliary{
			Member: substructure.NewMember(aux.Column, aux.Mass, env.WaterDensity),
			Count:  a.Count,
			Radius: a.Radius,
		}
		sys.FairleadRadius = a.Radius + aux.Column.OuterRadiusAt(fairleadZ) + ld.Mooring.FairleadOffset
		res.BaseAuxiliarySpacing = sys.BaseAuxiliarySpacing()
	}
	res.FairleadRadius = sys.FairleadRadius

	sol, err := sys.Solve()
	if err != nil {
		return nil, fmt.Errorf("system: %w", err)
	}
	res.Balance = sol.Balance
	res.Stability = sol.Stability
	res.Periods = sol.Periods
	log.Debug("system solved",
		zap.Float64("water_ballast", sol.Balance.Ballast.Water.Mass),
		zap.Float64("metacentric_height", sol.Stability.MetacentricHeight),
		zap.Float64("heel", sol.Stability.HeelAngle),
		zap.Float64("residual", sol.Balance.Residual(env.WaterDensity)))

	res.TotalCost = res.Base.Costs.Total() + ld.Mooring.Cost + ld.PontoonCost
	if res.Auxiliary != nil {
		res.TotalCost += float64(d.Auxiliary.Count) * res.Auxiliary.Costs.Total()
	}

	res.Conditions = conditions(res, env)
	for _, c := range res.Conditions {
		log.Warn("condition recorded", zap.String("kind", string(c.Kind)), zap.String("detail", c.String()))
	}
	return res, nil
}

// evaluateColumn builds one column and runs every per-column computation
func evaluateColumn(cfg column.Config, env loads.Environment, ld loads.Loads, topMass float64, opts buckling.Options) (*ColumnResults, error) {
	c, err := column.Build(cfg)
	if err != nil {
		return nil, err
	}
	mb := c.Mass()
	r := &ColumnResults{
		Column:    c,
		Layout:    c.Layout(env.WaterDepth, ld.Mooring.FairleadDepth),
		Mass:      mb,
		Permanent: c.PermanentBallast(),
		Fixed:     c.FixedBallast(),
		Hydro:     c.Hydrostatics(),
		Buckling:  buckling.Check(c, mb, topMass, env, opts),
		Ratios:    c.Ratios(),
	}
	r.Costs = Costs{
		Structural: c.Costs.Tapered * mb.Structural,
		Outfitting: c.Costs.Outfitting * mb.Outfitting,
		Ballast:    c.Costs.Ballast * (r.Permanent.Mass + r.Fixed.Mass),
	}
	return r, nil
}

// conditions collects the non-fatal conditions of an evaluation
func conditions(r *Results, env loads.Environment) []Condition {
	var out []Condition
	sys := func(kind ConditionKind, format string, args ...any) {
		out = append(out, Condition{Kind: kind, Section: -1, Message: fmt.Sprintf(format, args...)})
	}

	b := r.Balance.Ballast
	if b.InsufficientCapacity {
		sys(InsufficientBallastCapacity, "required %.0f kg of water ballast, tank holds %.0f kg", b.RequiredMass, b.Capacity)
	}
	if b.ExcessBuoyancy {
		sys(ExcessBuoyancy, "buoyancy exceeds the unballasted weight by %.0f kg", -b.RequiredMass)
	}
	if r.Stability.Unstable {
		sys(Unstable, "metacentric height %.3f m", r.Stability.MetacentricHeight)
	}
	if _, ok := env.WaveNumber(); !ok {
		sys(NonConvergence, "wave dispersion did not converge for period %.2f s", env.SignificantWavePeriod)
	}

	cols := []struct {
		name string
		res  *ColumnResults
	}{{"base", &r.Base}, {"auxiliary", r.Auxiliary}}
	for _, col := range cols {
		if col.res == nil {
			continue
		}
		for i, s := range col.res.Buckling.Sections {
			for k, u := range s.Unities() {
				if u.Status == buckling.StatusUndefined {
					out = append(out, Condition{
						Kind: NoPositiveRoot, Column: col.name, Section: i,
						Message: fmt.Sprintf("%s interaction has no positive root", buckling.UnityNames[k]),
					})
				}
			}
			if !s.LocalConverged {
				out = append(out, Condition{Kind: NonConvergence, Column: col.name, Section: i, Message: "local mode search"})
			}
			if !s.GeneralConverged {
				out = append(out, Condition{Kind: NonConvergence, Column: col.name, Section: i, Message: "general mode search"})
			}
		}
	}
	return out
}
