package model

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// 坐标约定
// x, y 为水平方向，z 为竖直方向，向下为负，单位 m

// 三维空间中的点
type Point struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	Z float64 `json:"z" msgpack:"z"`
}

func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Vec converts p to a gonum vector.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

func PointOf(v r3.Vec) Point {
	return Point{X: v.X, Y: v.Y, Z: v.Z}
}

// Lateral is one straight heat-emitting branch of the wellbore.
// Length is trusted as given when the heat rate per meter is computed.
type Lateral struct {
	Start  Point   `json:"start" msgpack:"start"`
	End    Point   `json:"end" msgpack:"end"`
	Length float64 `json:"length" msgpack:"length"`
}

// 井筒几何
type WellboreGeometry struct {
	Depth    float64   `json:"depth" msgpack:"depth"`   // 主井深度
	Radius   float64   `json:"radius" msgpack:"radius"` // 井筒半径，仅用于显示
	Laterals []Lateral `json:"laterals" msgpack:"laterals"`
}

// TotalLateralLength sums the declared lengths of all laterals.
func (w WellboreGeometry) TotalLateralLength() float64 {
	total := 0.0
	for _, l := range w.Laterals {
		total += l.Length
	}
	return total
}

// 岩石物性参数，均质各向同性
type RockProperties struct {
	ThermalConductivity float64 `json:"thermal_conductivity" msgpack:"thermal_conductivity"` // 导热系数 W/(m·K)
	ThermalDiffusivity  float64 `json:"thermal_diffusivity" msgpack:"thermal_diffusivity"`   // 热扩散率 m²/s
	InitialTemperature  float64 `json:"initial_temperature" msgpack:"initial_temperature"`   // 初始地层温度 ℃
	Density             float64 `json:"density" msgpack:"density"`                           // 密度 kg/m³
	SpecificHeat        float64 `json:"specific_heat" msgpack:"specific_heat"`               // 比热容 J/(kg·K)
}

// 每次计算的输入参数
type SimulationParameters struct {
	Wellbore           WellboreGeometry `json:"wellbore"`
	Rock               RockProperties   `json:"rock"`
	HeatExtractionRate float64          `json:"heat_extraction_rate"` // W
	SimulationTime     float64          `json:"simulation_time"`      // s
}

// HeatRatePerMeter spreads the extraction rate evenly over the laterals.
// It is 0 when the wellbore has no lateral length.
func (p SimulationParameters) HeatRatePerMeter() float64 {
	total := p.Wellbore.TotalLateralLength()
	if total <= 0 {
		return 0
	}
	return p.HeatExtractionRate / total
}

type Bounds struct {
	MinX float64 `json:"min_x" msgpack:"min_x"`
	MaxX float64 `json:"max_x" msgpack:"max_x"`
	MinY float64 `json:"min_y" msgpack:"min_y"`
	MaxY float64 `json:"max_y" msgpack:"max_y"`
	MinZ float64 `json:"min_z" msgpack:"min_z"`
	MaxZ float64 `json:"max_z" msgpack:"max_z"`
}

// TemperatureField holds GridSize³ samples, x outermost, then y, then z.
type TemperatureField struct {
	Values   []float64 `json:"values" msgpack:"values"`
	GridSize int       `json:"grid_size" msgpack:"grid_size"`
	Bounds   Bounds    `json:"bounds" msgpack:"bounds"`
}

// Index maps lattice indices to the position in Values.
func (f *TemperatureField) Index(i, j, k int) int {
	return (i*f.GridSize+j)*f.GridSize + k
}

// Coordinate returns the position of lattice node (i, j, k).
func (f *TemperatureField) Coordinate(i, j, k int) Point {
	n := float64(f.GridSize - 1)
	b := f.Bounds
	return Point{
		X: b.MinX + float64(i)/n*(b.MaxX-b.MinX),
		Y: b.MinY + float64(j)/n*(b.MaxY-b.MinY),
		Z: b.MinZ + float64(k)/n*(b.MaxZ-b.MinZ),
	}
}

// At returns the sample at lattice node (i, j, k).
func (f *TemperatureField) At(i, j, k int) float64 {
	return f.Values[f.Index(i, j, k)]
}

// Range returns the lowest and highest sample, or zeros for an empty field.
func (f *TemperatureField) Range() (lo, hi float64) {
	if len(f.Values) == 0 {
		return 0, 0
	}
	return floats.Min(f.Values), floats.Max(f.Values)
}

// 历史温降，每个模拟年一个点
type DrawdownSample struct {
	Year     int     `json:"year" msgpack:"year"`
	Drawdown float64 `json:"drawdown" msgpack:"drawdown"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
