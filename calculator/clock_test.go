package calculator

import (
	"errors"
	"testing"
)

func testClock() *Clock {
	return NewClock(ClockConfig{SecondsPerTick: 86400, MaxYears: 50, ResetYears: 1})
}

func TestClock_Advance(t *testing.T) {
	c := testClock()
	if c.Time != year || c.Playing {
		t.Fatalf("new clock = %+v", c)
	}
	c.Advance()
	if c.Time != year+86400 {
		t.Fatalf("time = %v", c.Time)
	}
	if err := c.SetSpeed(10); err != nil {
		t.Fatal(err)
	}
	c.Advance()
	if c.Time != year+11*86400 {
		t.Fatalf("time = %v", c.Time)
	}
}

func TestClock_CapsAtMax(t *testing.T) {
	c := testClock()
	if err := c.Seek(c.MaxTime() - 10); err != nil {
		t.Fatal(err)
	}
	c.Advance()
	if c.Time != c.MaxTime() || !c.AtEnd() {
		t.Fatalf("time = %v, max %v", c.Time, c.MaxTime())
	}
}

func TestClock_SeekAndReset(t *testing.T) {
	c := testClock()
	c.Playing = true
	c.Seek(-5)
	if c.Time != 0 {
		t.Fatalf("seek(-5) = %v", c.Time)
	}
	c.Seek(1e12)
	if c.Time != c.MaxTime() {
		t.Fatalf("seek(1e12) = %v", c.Time)
	}
	c.Reset()
	if c.Time != year || c.Playing {
		t.Fatalf("reset = %+v", c)
	}
}

func TestClock_InvalidSpeed(t *testing.T) {
	c := testClock()
	for _, s := range []float64{0, -1} {
		if err := c.SetSpeed(s); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("SetSpeed(%v) = %v", s, err)
		}
	}
	if c.Speed != 1 {
		t.Fatalf("speed changed to %v", c.Speed)
	}
}
