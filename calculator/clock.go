package calculator

import "math"

// 播放时钟，每个 tick 推进 SecondsPerTick * Speed 秒
type ClockConfig struct {
	SecondsPerTick float64
	MaxYears       float64
	ResetYears     float64
}

type Clock struct {
	cfg     ClockConfig
	Time    float64 // 当前模拟时间, s
	Speed   float64
	Playing bool
}

func NewClock(cfg ClockConfig) *Clock {
	c := &Clock{cfg: cfg, Speed: 1}
	c.Reset()
	return c
}

func (c *Clock) MaxTime() float64 {
	return c.cfg.MaxYears * SecondsPerYear
}

// Advance moves the clock forward one tick, capped at MaxTime, and returns
// the new time.
func (c *Clock) Advance() float64 {
	c.Time = math.Min(c.Time+c.cfg.SecondsPerTick*c.Speed, c.MaxTime())
	return c.Time
}

// Reset rewinds to ResetYears and stops playback.
func (c *Clock) Reset() {
	c.Time = c.cfg.ResetYears * SecondsPerYear
	c.Playing = false
}

func (c *Clock) Seek(seconds float64) error {
	if !finite(seconds) {
		return invalid("time", seconds, "must be finite")
	}
	c.Time = math.Max(0, math.Min(seconds, c.MaxTime()))
	return nil
}

func (c *Clock) SetSpeed(speed float64) error {
	if !finite(speed) || speed <= 0 {
		return invalid("speed", speed, "must be positive")
	}
	c.Speed = speed
	return nil
}

// AtEnd reports whether the clock reached MaxTime.
func (c *Clock) AtEnd() bool {
	return c.Time >= c.MaxTime()
}
