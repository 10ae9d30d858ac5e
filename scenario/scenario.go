package scenario

import (
	"lz/model"
	"lz/rock_type"
	"lz/wellbore"
)

// Config is a named parameter preset edited by the user.
type Config struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	WellboreDepth       float64 `json:"wellbore_depth"`
	LateralCount        int     `json:"lateral_count"`
	LateralLength       float64 `json:"lateral_length"`
	ThermalConductivity float64 `json:"thermal_conductivity"`
	HeatExtractionRate  float64 `json:"heat_extraction_rate"`
}

// 默认方案
var (
	Conservative = Config{
		ID:                  "default-1",
		Name:                "Scenario 1 - Conservative",
		WellboreDepth:       2000,
		LateralCount:        3,
		LateralLength:       500,
		ThermalConductivity: 2.5,
		HeatExtractionRate:  50000,
	}
	Aggressive = Config{
		ID:                  "default-2",
		Name:                "Scenario 2 - Aggressive",
		WellboreDepth:       3000,
		LateralCount:        5,
		LateralLength:       700,
		ThermalConductivity: 2.5,
		HeatExtractionRate:  100000,
	}
)

// Parameters builds the simulation input for this preset at the given time.
func (c Config) Parameters(time float64) model.SimulationParameters {
	rock := rock_type.Default()
	if c.ThermalConductivity != 0 {
		rock = rock_type.WithConductivity(rock, c.ThermalConductivity)
	}
	return model.SimulationParameters{
		Wellbore: wellbore.Build(wellbore.Options{
			Depth:         c.WellboreDepth,
			LateralCount:  c.LateralCount,
			LateralLength: c.LateralLength,
		}),
		Rock:               rock,
		HeatExtractionRate: c.HeatExtractionRate,
		SimulationTime:     time,
	}
}
