package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"lz/calculator"
	"lz/model"
	"lz/rock_type"
	"lz/scenario"
)

// 计算请求，scenario_id 与 scenario 二选一
type evalRequest struct {
	ScenarioID string           `json:"scenario_id"`
	Scenario   *scenario.Config `json:"scenario"`
	Time       float64          `json:"time"`
	GridSize   int              `json:"grid_size"`
	Point      *model.Point     `json:"point"`
}

type compareRequest struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	Time     float64 `json:"time"`
	GridSize int     `json:"grid_size"`
}

type drawdownResponse struct {
	Time     float64      `json:"time"`
	Point    *model.Point `json:"point,omitempty"`
	Drawdown float64      `json:"drawdown"`
}

type rockResponse struct {
	Default model.RockProperties `json:"default"`
	Names   []string             `json:"names"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.WithError(err).WithField("status", status).Warn("request failed")
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusOf maps domain errors to http status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, scenario.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, calculator.ErrInvalidParameter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

func (s *Server) resolve(req *evalRequest) (scenario.Config, error) {
	if req.Scenario != nil {
		return *req.Scenario, nil
	}
	return s.store.Get(req.ScenarioID)
}

func (s *Server) getRock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rockResponse{Default: rock_type.Default(), Names: rock_type.Names()})
}

func (s *Server) getRockType(w http.ResponseWriter, r *http.Request) {
	rock, err := rock_type.Lookup(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, rock)
}

func (s *Server) listScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

func (s *Server) saveScenario(w http.ResponseWriter, r *http.Request) {
	var c scenario.Config
	if err := decode(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := calculator.Validate(paramsOf(c)); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.store.Save(c))
}

func paramsOf(c scenario.Config) *model.SimulationParameters {
	p := c.Parameters(0)
	return &p
}

func (s *Server) getScenario(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) deleteScenario(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) sampleField(w http.ResponseWriter, r *http.Request) {
	var req evalRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	c, err := s.resolve(&req)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	if req.GridSize == 0 {
		req.GridSize = s.cfg.Calculator.GridSize
	}
	field, err := s.sampler.SampleField(c.Parameters(req.Time), req.GridSize)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, field)
}

// drawdown answers for one point, or for the whole wellbore when the
// point is omitted.
func (s *Server) drawdown(w http.ResponseWriter, r *http.Request) {
	var req evalRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	c, err := s.resolve(&req)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	params := c.Parameters(req.Time)
	var d float64
	if req.Point != nil {
		d, err = s.sampler.DrawdownAt(params, *req.Point)
	} else {
		d, err = s.sampler.AverageWellboreDrawdown(params)
	}
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, drawdownResponse{Time: req.Time, Point: req.Point, Drawdown: d})
}

func (s *Server) compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	a, err := s.store.Get(req.A)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	b, err := s.store.Get(req.B)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	cmp, err := scenario.Compare(r.Context(), s.sampler, a, b, req.Time, req.GridSize)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}
