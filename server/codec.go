package server

import (
	"github.com/vmihailenco/msgpack/v5"
	"lz/calculator"
	"lz/model"
	"lz/scenario"
)

// Frame is one playback step pushed to the client as a binary message.
type Frame struct {
	ScenarioID      string                  `msgpack:"scenario_id"`
	Time            float64                 `msgpack:"time"`
	Years           int                     `msgpack:"years"`
	AverageDrawdown float64                 `msgpack:"average_drawdown"`
	Field           *model.TemperatureField `msgpack:"field"`
	History         []model.DrawdownSample  `msgpack:"history"`
}

// BuildFrame evaluates c at time and records the wellbore drawdown in
// history before taking its snapshot.
func BuildFrame(s *calculator.Sampler, c scenario.Config, time float64, gridSize int, history *calculator.History) (*Frame, error) {
	res, err := scenario.Evaluate(s, c, time, gridSize)
	if err != nil {
		return nil, err
	}
	history.Record(time, res.AverageDrawdown)
	return &Frame{
		ScenarioID:      c.ID,
		Time:            time,
		Years:           calculator.YearOf(time),
		AverageDrawdown: res.AverageDrawdown,
		Field:           res.Field,
		History:         history.Samples(),
	}, nil
}

func EncodeFrame(f *Frame) ([]byte, error) {
	return msgpack.Marshal(f)
}

func DecodeFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
