package calculator

import (
	"fmt"
	"math"
)

const (
	eulerGamma = 0.5772156649 // 欧拉常数

	// 分段边界，与已有标定结果保持一致
	smallArgLimit = 0.01
	largeArgLimit = 100.0

	// E1 连分式迭代参数
	e1MaxIter = 200
	e1Eps     = 1e-15
	e1FpMin   = 1e-300
)

// Kernel evaluates the well function W(u) for u > 0.
type Kernel func(u float64) float64

// WellFunction approximates W(u) = -Ei(-u) = E1(u) for u > 0.
//
// Below 0.01 the short-term logarithmic series is used and from 100 on the
// asymptote e^(-u)/u. In between E1 is evaluated directly: power series up
// to u = 1, continued fraction above.
func WellFunction(u float64) float64 {
	switch {
	case u < smallArgLimit:
		return shortTimeSeries(u)
	case u < largeArgLimit:
		return expIntegralE1(u)
	default:
		return math.Exp(-u) / u
	}
}

// ReferenceWellFunction keeps the original mid-range blend
// -ln(u) - γ + u·e^(-u). It turns negative once u exceeds e^-γ ≈ 0.56 and
// jumps back to the asymptote at u = 100.
func ReferenceWellFunction(u float64) float64 {
	switch {
	case u < smallArgLimit:
		return shortTimeSeries(u)
	case u < largeArgLimit:
		return -math.Log(u) - eulerGamma + u*math.Exp(-u)
	default:
		return math.Exp(-u) / u
	}
}

func shortTimeSeries(u float64) float64 {
	return -math.Log(u) - eulerGamma + u - u*u/4 + u*u*u/18
}

func expIntegralE1(u float64) float64 {
	if u <= 1 {
		// E1(u) = -γ - ln(u) - Σ (-u)^k / (k·k!)
		sum := 0.0
		term := 1.0
		for k := 1; k < e1MaxIter; k++ {
			term *= -u / float64(k)
			del := term / float64(k)
			sum += del
			if math.Abs(del) < math.Abs(sum)*e1Eps {
				break
			}
		}
		return -eulerGamma - math.Log(u) - sum
	}

	// 修正的 Lentz 算法
	b := u + 1
	c := 1 / e1FpMin
	d := 1 / b
	h := d
	for i := 1; i < e1MaxIter; i++ {
		an := -float64(i * i)
		b += 2
		d = 1 / (an*d + b)
		c = b + an/c
		del := c * d
		h *= del
		if math.Abs(del-1) < e1Eps {
			break
		}
	}
	return h * math.Exp(-u)
}

// KernelByName resolves the config names "e1" and "reference".
func KernelByName(name string) (Kernel, error) {
	switch name {
	case "", "e1":
		return WellFunction, nil
	case "reference":
		return ReferenceWellFunction, nil
	default:
		return nil, fmt.Errorf("unknown well function kernel %q", name)
	}
}
