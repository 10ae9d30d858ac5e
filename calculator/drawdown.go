package calculator

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"lz/model"
)

// 每条分支上的采样点数，t = 0, 0.1, ..., 1.0
const WellboreSamples = 11

func DrawdownAt(params model.SimulationParameters, point model.Point) (float64, error) {
	return defaultSampler.DrawdownAt(params, point)
}

func AverageWellboreDrawdown(params model.SimulationParameters) (float64, error) {
	return defaultSampler.AverageWellboreDrawdown(params)
}

// DrawdownAt returns the summed temperature depression at point. Unlike
// SampleField it is not subtracted from the initial temperature.
func (s *Sampler) DrawdownAt(params model.SimulationParameters, point model.Point) (float64, error) {
	if err := Validate(&params); err != nil {
		return 0, fmt.Errorf("drawdown: %w", err)
	}
	if err := validatePoint(point); err != nil {
		return 0, fmt.Errorf("drawdown: %w", err)
	}
	return superpose(s.kernel, point, &params, params.HeatRatePerMeter()), nil
}

// AverageWellboreDrawdown averages DrawdownAt over WellboreSamples evenly
// spaced points on every lateral. A wellbore without laterals gives 0.
func (s *Sampler) AverageWellboreDrawdown(params model.SimulationParameters) (float64, error) {
	if err := Validate(&params); err != nil {
		return 0, fmt.Errorf("average wellbore drawdown: %w", err)
	}
	if len(params.Wellbore.Laterals) == 0 {
		return 0, nil
	}

	q := params.HeatRatePerMeter()
	samples := make([]float64, 0, len(params.Wellbore.Laterals)*WellboreSamples)
	for _, l := range params.Wellbore.Laterals {
		for _, p := range SamplePoints(l, WellboreSamples) {
			samples = append(samples, superpose(s.kernel, p, &params, q))
		}
	}
	return stat.Mean(samples, nil), nil
}

// SamplePoints returns n evenly spaced points from l.Start to l.End.
func SamplePoints(l model.Lateral, n int) []model.Point {
	if n < 2 {
		return []model.Point{l.Start}
	}
	points := make([]model.Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		points[i] = model.Point{
			X: l.Start.X + t*(l.End.X-l.Start.X),
			Y: l.Start.Y + t*(l.End.Y-l.Start.Y),
			Z: l.Start.Z + t*(l.End.Z-l.Start.Z),
		}
	}
	return points
}
