package wellbore

import (
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"
	"lz/model"
)

// 多分支井默认参数，单位 m
const (
	DefaultDepth          = 2000.0
	DefaultLateralCount   = 3
	DefaultLateralLength  = 500.0
	DefaultLateralSpacing = 100.0 // 相邻分支起点的深度差
	DefaultDip            = 50.0  // 分支末端相对起点的下倾
	DefaultRadius         = 0.075
	DefaultKickOff        = 0.7 // 第一条分支起点深度 = KickOff * Depth
)

// Options describes a vertical trunk with laterals radiating from it at
// staggered depths. Zero fields take the package defaults. LateralSpacing and
// Dip may legitimately be 0, so they are pointers and only nil means unset.
type Options struct {
	Depth          float64
	LateralCount   int
	LateralLength  float64
	LateralSpacing *float64
	Dip            *float64
	Radius         float64
	KickOff        float64
}

// Float returns a pointer to v, for the optional Options fields.
func Float(v float64) *float64 {
	return &v
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func (o Options) withDefaults() Options {
	if o.LateralLength == 0 {
		o.LateralLength = DefaultLateralLength
	}
	o.LateralSpacing = Float(valueOr(o.LateralSpacing, DefaultLateralSpacing))
	o.Dip = Float(valueOr(o.Dip, DefaultDip))
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.KickOff == 0 {
		o.KickOff = DefaultKickOff
	}
	return o
}

// BuildDefault generates lateralCount laterals of the default length, evenly
// spaced in azimuth. A non-positive count yields a trunk without laterals.
func BuildDefault(depth float64, lateralCount int) model.WellboreGeometry {
	return Build(Options{Depth: depth, LateralCount: lateralCount})
}

func Build(o Options) model.WellboreGeometry {
	o = o.withDefaults()
	count := o.LateralCount
	if count < 0 {
		count = 0
	}

	laterals := make([]model.Lateral, 0, count)
	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2 * math.Pi
		startZ := -(o.Depth*o.KickOff + float64(i)*(*o.LateralSpacing))
		laterals = append(laterals, model.Lateral{
			Start: model.Point{X: 0, Y: 0, Z: startZ},
			End: model.Point{
				X: math.Cos(angle) * o.LateralLength,
				Y: math.Sin(angle) * o.LateralLength,
				Z: startZ - *o.Dip,
			},
			Length: o.LateralLength,
		})
	}

	log.WithFields(log.Fields{
		"Depth":         o.Depth,
		"LateralCount":  count,
		"LateralLength": o.LateralLength,
	}).Debug("构建井筒几何")

	return model.WellboreGeometry{
		Depth:    o.Depth,
		Radius:   o.Radius,
		Laterals: laterals,
	}
}

// NewLateral builds a lateral whose Length is the distance between the
// endpoints.
func NewLateral(start, end model.Point) model.Lateral {
	return model.Lateral{
		Start:  start,
		End:    end,
		Length: r3.Norm(r3.Sub(end.Vec(), start.Vec())),
	}
}

// GeometricLength returns the endpoint distance of l, which may differ from
// the declared l.Length.
func GeometricLength(l model.Lateral) float64 {
	return r3.Norm(r3.Sub(l.End.Vec(), l.Start.Vec()))
}
