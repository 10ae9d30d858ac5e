package scenario

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"lz/calculator"
	"lz/model"
)

type Result struct {
	Scenario        Config                  `json:"scenario"`
	AverageDrawdown float64                 `json:"average_drawdown"`
	MinTemperature  float64                 `json:"min_temperature"`
	MaxTemperature  float64                 `json:"max_temperature"`
	Field           *model.TemperatureField `json:"field,omitempty"`
}

type Comparison struct {
	Time float64 `json:"time"`
	A    Result  `json:"a"`
	B    Result  `json:"b"`
}

// Evaluate computes the wellbore drawdown and, when gridSize > 0, the
// sampled field of one scenario.
func Evaluate(s *calculator.Sampler, c Config, time float64, gridSize int) (Result, error) {
	params := c.Parameters(time)
	res := Result{Scenario: c}

	avg, err := s.AverageWellboreDrawdown(params)
	if err != nil {
		return res, fmt.Errorf("scenario %s: %w", c.ID, err)
	}
	res.AverageDrawdown = avg

	if gridSize <= 0 {
		res.MinTemperature = params.Rock.InitialTemperature - avg
		res.MaxTemperature = params.Rock.InitialTemperature
		return res, nil
	}
	field, err := s.SampleField(params, gridSize)
	if err != nil {
		return res, fmt.Errorf("scenario %s: %w", c.ID, err)
	}
	res.Field = field
	res.MinTemperature, res.MaxTemperature = field.Range()
	return res, nil
}

// Compare evaluates a and b at the same time concurrently.
func Compare(ctx context.Context, s *calculator.Sampler, a, b Config, time float64, gridSize int) (*Comparison, error) {
	cmp := &Comparison{Time: time}
	g, ctx := errgroup.WithContext(ctx)
	for _, job := range []struct {
		c   Config
		dst *Result
	}{{a, &cmp.A}, {b, &cmp.B}} {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Evaluate(s, job.c, time, gridSize)
			if err != nil {
				return err
			}
			*job.dst = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cmp, nil
}
