package rock_type

import (
	"fmt"
	"sort"
	"strings"

	"lz/model"
)

// 典型沉积岩地层的默认物性参数
func Default() model.RockProperties {
	return model.RockProperties{
		ThermalConductivity: 2.5,    // W/(m·K)
		ThermalDiffusivity:  1.0e-6, // m²/s
		InitialTemperature:  80,     // ℃
		Density:             2500,   // kg/m³
		SpecificHeat:        800,    // J/(kg·K)
	}
}

// WithConductivity returns r with the thermal conductivity replaced.
// Diffusivity is left alone; callers that want k/(ρc) must set it themselves.
func WithConductivity(r model.RockProperties, k float64) model.RockProperties {
	r.ThermalConductivity = k
	return r
}

// Diffusivity returns k / (ρ·c), or 0 when density or specific heat is unset.
func Diffusivity(r model.RockProperties) float64 {
	if r.Density <= 0 || r.SpecificHeat <= 0 {
		return 0
	}
	return r.ThermalConductivity / (r.Density * r.SpecificHeat)
}

func rock(k, rho, c, t0 float64) model.RockProperties {
	r := model.RockProperties{
		ThermalConductivity: k,
		Density:             rho,
		SpecificHeat:        c,
		InitialTemperature:  t0,
	}
	r.ThermalDiffusivity = Diffusivity(r)
	return r
}

// 常见岩性
var catalog = map[string]model.RockProperties{
	"sandstone": rock(2.5, 2300, 850, 80),
	"granite":   rock(3.0, 2650, 790, 90),
	"limestone": rock(2.3, 2600, 840, 75),
	"shale":     rock(1.8, 2500, 900, 70),
}

func Lookup(name string) (model.RockProperties, error) {
	r, ok := catalog[strings.ToLower(name)]
	if !ok {
		return model.RockProperties{}, fmt.Errorf("rock type %q not found", name)
	}
	return r, nil
}

func Names() []string {
	names := make([]string, 0, len(catalog))
	for k := range catalog {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
