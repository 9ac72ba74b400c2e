package config

import (
	"github.com/alexiusacademia/gospar/internal/api2u"
	"github.com/alexiusacademia/gospar/internal/column"
	"github.com/alexiusacademia/gospar/internal/loads"
	"github.com/alexiusacademia/gospar/internal/platform"
)

// Default material and rate constants
const (
	SteelDensity     = 7850.0 // kg/m³
	SteelModulus     = 200e9  // Pa
	SteelPoisson     = 0.26   // Poisson's ratio
	SteelYield       = 345e6  // Pa
	WaterDensity     = 1025.0 // kg/m³
	AirDensity       = 1.198  // kg/m³
	BallastDensity   = 4492.0 // kg/m³, iron-ore concrete
	ColumnMassFactor = 1.05   // secondary steel and welds
	OutfittingFactor = 0.06   // fraction of structural mass
	TaperedCostRate  = 4.720  // $/kg
	OutfitCostRate   = 6.980  // $/kg
	BallastCostRate  = 0.100  // $/kg
)

// Material returns the default shell steel
func Material() column.Material {
	return column.Material{Density: SteelDensity, E: SteelModulus, Nu: SteelPoisson, YieldStress: SteelYield}
}

// Default returns a complete spar design that carries a 5 MW turbine. It
// is the base that design files are read over.
func Default() *Config {
	return &Config{
		Design: platform.Design{
			Base: column.Config{
				SectionHeight:     []float64{49, 59, 8, 14},
				OuterDiameter:     []float64{9.4, 9.4, 9.4, 6.5, 6.5},
				WallThickness:     []float64{0.05, 0.05, 0.05, 0.04, 0.04},
				BulkheadThickness: []float64{0.05, 0, 0, 0, 0.05},
				Stiffeners: column.Stiffeners{
					WebHeight:       []float64{0.5, 0.5, 0.4, 0.4},
					WebThickness:    []float64{0.05, 0.05, 0.04, 0.04},
					FlangeWidth:     []float64{0.3, 0.3, 0.25, 0.25},
					FlangeThickness: []float64{0.05, 0.05, 0.04, 0.04},
					Spacing:         []float64{1.5, 1.5, 1.5, 1.5},
				},
				Freeboard:  10,
				Refinement: 1,
				Material:   Material(),
				MassFactors: column.MassFactors{
					Shell:              1,
					Bulkhead:           1,
					Ring:               1,
					Column:             ColumnMassFactor,
					OutfittingFraction: OutfittingFactor,
				},
				Ballast: column.Ballast{
					PermanentHeight:  10,
					PermanentDensity: BallastDensity,
					FixedDensity:     BallastDensity,
				},
				Costs: column.CostRates{
					Tapered:    TaperedCostRate,
					Outfitting: OutfitCostRate,
					Ballast:    BallastCostRate,
				},
			},
			Environment: loads.Environment{
				WaterDepth:            320,
				WaterDensity:          WaterDensity,
				AirDensity:            AirDensity,
				SignificantWaveHeight: 10.8,
				SignificantWavePeriod: 13.7,
				WindReferenceSpeed:    11,
				WindReferenceHeight:   90,
				ShearExponent:         0.11,
				Gravity:               loads.StandardGravity,
			},
			Loads: loads.Loads{
				Turbine: loads.Turbine{
					TowerMass:  249718,
					TowerCG:    43.4,
					RNAMass:    350000,
					RNACG:      80,
					RNAOffset:  -1.13,
					TowerForce: 5e4,
					RNAForce:   8e5,
				},
				Mooring: loads.Mooring{
					VerticalLoad:   1.6e6,
					Mass:           1.16e6,
					Cost:           1.2e6,
					SurgeRestoring: 5e6,
					FairleadDepth:  70,
					FairleadOffset: 0.5,
				},
				MaxHeel: 6,
			},
			Options: platform.Options{
				Condition: api2u.Extreme,
				Loading:   api2u.Hydrostatic,
			},
		},
		Logging: LoggingConfig{Level: "warn", Format: "console"},
	}
}
