package calculator

import (
	"errors"
	"fmt"
	"math"

	"lz/model"
)

// ErrInvalidParameter is matched by every validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

type InvalidParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Name, e.Value, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func invalid(name string, value float64, reason string) error {
	return &InvalidParameterError{Name: name, Value: value, Reason: reason}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks the physical sanity of params. Degenerate geometry (no
// laterals, zero-length laterals) is legal and is not reported.
func Validate(params *model.SimulationParameters) error {
	rock := params.Rock
	switch {
	case !finite(rock.ThermalConductivity) || rock.ThermalConductivity <= 0:
		return invalid("thermal_conductivity", rock.ThermalConductivity, "must be positive")
	case !finite(rock.ThermalDiffusivity) || rock.ThermalDiffusivity <= 0:
		return invalid("thermal_diffusivity", rock.ThermalDiffusivity, "must be positive")
	case !finite(rock.InitialTemperature):
		return invalid("initial_temperature", rock.InitialTemperature, "must be finite")
	case !finite(params.HeatExtractionRate) || params.HeatExtractionRate < 0:
		return invalid("heat_extraction_rate", params.HeatExtractionRate, "must be non-negative")
	case !finite(params.SimulationTime) || params.SimulationTime < 0:
		return invalid("simulation_time", params.SimulationTime, "must be non-negative")
	case !finite(params.Wellbore.Depth) || params.Wellbore.Depth < 0:
		return invalid("depth", params.Wellbore.Depth, "must be non-negative")
	}

	for i, l := range params.Wellbore.Laterals {
		if !finite(l.Length) || l.Length < 0 {
			return invalid(fmt.Sprintf("laterals[%d].length", i), l.Length, "must be non-negative")
		}
		for _, v := range []float64{l.Start.X, l.Start.Y, l.Start.Z, l.End.X, l.End.Y, l.End.Z} {
			if !finite(v) {
				return invalid(fmt.Sprintf("laterals[%d]", i), v, "coordinates must be finite")
			}
		}
	}
	return nil
}

func validatePoint(p model.Point) error {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if !finite(v) {
			return invalid("point", v, "coordinates must be finite")
		}
	}
	return nil
}
