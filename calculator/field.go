package calculator

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"lz/model"
)

const (
	// 网格点数上限，MaxGridSize³ 个 float64 约 64 MB
	MaxGridSize = 200

	horizontalBuffer = 500.0 // 水平方向在分支末端外扩的距离, m
	verticalBuffer   = 200.0 // 竖直方向在井底以下外扩的距离, m
)

// Sampler samples temperature fields and drawdown metrics. It holds no state
// between calls and may be shared by concurrent callers.
type Sampler struct {
	e      *executor
	kernel Kernel
}

// NewSampler returns a Sampler spreading grids over workers goroutines
// (runtime.NumCPU() when workers <= 0). A nil kernel selects WellFunction.
func NewSampler(workers int, kernel Kernel) *Sampler {
	if kernel == nil {
		kernel = WellFunction
	}
	return &Sampler{e: newExecutor(workers), kernel: kernel}
}

var defaultSampler = NewSampler(0, nil)

// SampleField samples params on a gridSize³ lattice with the default Sampler.
func SampleField(params model.SimulationParameters, gridSize int) (*model.TemperatureField, error) {
	return defaultSampler.SampleField(params, gridSize)
}

// DomainBounds returns the box sampled around the wellbore.
func DomainBounds(w model.WellboreGeometry) model.Bounds {
	maxExtent := 0.0
	for _, l := range w.Laterals {
		maxExtent = math.Max(maxExtent, math.Max(math.Abs(l.End.X), math.Abs(l.End.Y)))
	}
	extent := maxExtent + horizontalBuffer
	return model.Bounds{
		MinX: -extent,
		MaxX: extent,
		MinY: -extent,
		MaxY: extent,
		MinZ: -(w.Depth + verticalBuffer),
		MaxZ: 0,
	}
}

// SampleField superposes every lateral over a regular lattice spanning
// DomainBounds, endpoints included, and returns absolute temperatures.
// Values are ordered x outermost, then y, then z.
func (s *Sampler) SampleField(params model.SimulationParameters, gridSize int) (*model.TemperatureField, error) {
	if gridSize < 2 {
		return nil, invalid("grid_size", float64(gridSize), "must be at least 2")
	}
	if gridSize > MaxGridSize {
		return nil, invalid("grid_size", float64(gridSize), fmt.Sprintf("must be at most %d", MaxGridSize))
	}
	if err := Validate(&params); err != nil {
		return nil, fmt.Errorf("sample field: %w", err)
	}

	bounds := DomainBounds(params.Wellbore)
	xs := floats.Span(make([]float64, gridSize), bounds.MinX, bounds.MaxX)
	ys := floats.Span(make([]float64, gridSize), bounds.MinY, bounds.MaxY)
	zs := floats.Span(make([]float64, gridSize), bounds.MinZ, bounds.MaxZ)

	q := params.HeatRatePerMeter()
	t0 := params.Rock.InitialTemperature
	values := make([]float64, gridSize*gridSize*gridSize)

	// 每个任务负责一段 x 切片，写入 values 中互不重叠的区间
	cost := s.e.dispatchTask(gridSize, func(start, end int) {
		for i := start; i < end; i++ {
			index := i * gridSize * gridSize
			for j := 0; j < gridSize; j++ {
				for k := 0; k < gridSize; k++ {
					p := model.Point{X: xs[i], Y: ys[j], Z: zs[k]}
					values[index] = t0 - superpose(s.kernel, p, &params, q)
					index++
				}
			}
		}
	})

	log.WithFields(log.Fields{
		"gridSize": gridSize,
		"laterals": len(params.Wellbore.Laterals),
		"workers":  s.e.workers,
		"cost":     cost,
	}).Debug("sample field")

	return &model.TemperatureField{
		Values:   values,
		GridSize: gridSize,
		Bounds:   bounds,
	}, nil
}
