package calculator

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"lz/model"
)

const (
	MinRadius = 0.01 // 径向距离下限，避免井轴上的奇点, m
	MinTime   = 1.0  // 时间下限，避免 ln(0), s
)

// TemperatureChange returns the temperature drop (℃) produced at point by
// one lateral extracting heatRatePerMeter (W/m) for time seconds.
//
// The radial distance is measured to the nearest point of the finite segment,
// not of the infinite line through it. A zero-length lateral contributes 0.
func TemperatureChange(point model.Point, lateral model.Lateral, heatRatePerMeter, conductivity, diffusivity, time float64) float64 {
	return temperatureChange(WellFunction, point, lateral, heatRatePerMeter, conductivity, diffusivity, time)
}

func temperatureChange(w Kernel, point model.Point, lateral model.Lateral, heatRatePerMeter, conductivity, diffusivity, time float64) float64 {
	start := lateral.Start.Vec()
	d := r3.Sub(lateral.End.Vec(), start)
	length2 := r3.Norm2(d)
	if length2 == 0 {
		return 0
	}

	p := point.Vec()
	t := r3.Dot(r3.Sub(p, start), d) / length2
	t = math.Max(0, math.Min(1, t))
	closest := r3.Add(start, r3.Scale(t, d))

	r := math.Max(r3.Norm(r3.Sub(p, closest)), MinRadius)
	time = math.Max(time, MinTime)

	u := r * r / (4 * diffusivity * time)
	return heatRatePerMeter / (4 * math.Pi * conductivity) * w(u)
}

// superpose sums the contribution of every lateral at one point.
func superpose(w Kernel, point model.Point, params *model.SimulationParameters, heatRatePerMeter float64) float64 {
	rock := params.Rock
	total := 0.0
	for _, lateral := range params.Wellbore.Laterals {
		total += temperatureChange(w, point, lateral, heatRatePerMeter,
			rock.ThermalConductivity, rock.ThermalDiffusivity, params.SimulationTime)
	}
	return total
}
