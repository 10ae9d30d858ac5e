package server

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"lz/calculator"
	"lz/config"
	"lz/model"
	"lz/scenario"
)

// 消息类型
const (
	// request
	MsgEnv   = "env"
	MsgStart = "start"
	MsgStop  = "stop"
	MsgSeek  = "seek"
	MsgSpeed = "speed"
	MsgReset = "reset"
	MsgFrame = "frame"

	// response
	MsgEnvSet   = "envSet"
	MsgStarted  = "started"
	MsgStopped  = "stopped"
	MsgSpeedSet = "speedSet"
	MsgError    = "error"
)

// 发送给客户端的消息，json 文本或 msgpack 二进制帧
type outgoing struct {
	msg   *model.Msg
	frame []byte
}

// Hub serves one websocket client. All simulation state is owned by the
// handleRequest goroutine; handleResponse is the only writer on conn.
type Hub struct {
	conn     *websocket.Conn
	sampler  *calculator.Sampler
	store    *scenario.Store
	gridSize int
	tick     time.Duration

	// request
	msg chan model.Msg
	// response
	reply chan outgoing

	done      chan struct{}
	closeOnce sync.Once

	clock    *calculator.Clock
	history  *calculator.History
	scenario scenario.Config
}

func NewHub(conn *websocket.Conn, sampler *calculator.Sampler, store *scenario.Store, cfg *config.Config) *Hub {
	p := cfg.Playback
	clock := calculator.NewClock(calculator.ClockConfig{
		SecondsPerTick: p.SecondsPerTick,
		MaxYears:       p.MaxYears,
		ResetYears:     p.ResetYears,
	})
	if err := clock.SetSpeed(p.Speed); err != nil {
		log.WithError(err).Warn("invalid playback speed, using 1")
	}
	tick := time.Duration(p.TickMillis) * time.Millisecond
	if tick <= 0 {
		tick = 100 * time.Millisecond
	}
	return &Hub{
		conn:     conn,
		sampler:  sampler,
		store:    store,
		gridSize: cfg.Calculator.GridSize,
		tick:     tick,
		msg:      make(chan model.Msg, 10),
		reply:    make(chan outgoing, 10),
		done:     make(chan struct{}),
		clock:    clock,
		history:  calculator.NewHistory(int(p.MaxYears) + 1),
		scenario: scenario.Conservative,
	}
}

func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

func (h *Hub) enqueue(msg model.Msg) bool {
	select {
	case h.msg <- msg:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) send(out outgoing) {
	select {
	case h.reply <- out:
	case <-h.done:
	}
}

func (h *Hub) sendMsg(typ, content string) {
	h.send(outgoing{msg: &model.Msg{Type: typ, Content: content}})
}

func (h *Hub) sendError(err error) {
	log.WithError(err).Warn("request failed")
	h.sendMsg(MsgError, err.Error())
}

func (h *Hub) handleResponse() {
	for {
		select {
		case <-h.done:
			return
		case out := <-h.reply:
			var err error
			if out.msg != nil {
				err = h.conn.WriteJSON(out.msg)
			} else {
				err = h.conn.WriteMessage(websocket.BinaryMessage, out.frame)
			}
			if err != nil {
				log.WithError(err).Warn("write message")
				h.Close()
				return
			}
		}
	}
}

func (h *Hub) handleRequest() {
	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()
	for {
		select {
		case <-h.done:
			return
		case msg := <-h.msg:
			h.dispatch(msg)
		case <-ticker.C:
			if !h.clock.Playing {
				continue
			}
			h.clock.Advance()
			h.pushFrame()
			if h.clock.AtEnd() {
				h.clock.Playing = false
				h.sendMsg(MsgStopped, "end of simulation")
			}
		}
	}
}

func (h *Hub) dispatch(msg model.Msg) {
	switch msg.Type {
	case MsgEnv:
		cfg, err := h.resolveEnv(msg.Content)
		if err != nil {
			h.sendError(err)
			return
		}
		h.scenario = cfg
		h.history.Clear()
		data, _ := json.Marshal(cfg)
		h.sendMsg(MsgEnvSet, string(data))
	case MsgStart:
		h.clock.Playing = true
		h.sendMsg(MsgStarted, "")
	case MsgStop:
		h.clock.Playing = false
		h.sendMsg(MsgStopped, "stopped")
	case MsgSeek:
		seconds, err := strconv.ParseFloat(msg.Content, 64)
		if err == nil {
			err = h.clock.Seek(seconds)
		}
		if err != nil {
			h.sendError(fmt.Errorf("seek: %w", err))
			return
		}
		h.pushFrame()
	case MsgSpeed:
		speed, err := strconv.ParseFloat(msg.Content, 64)
		if err == nil {
			err = h.clock.SetSpeed(speed)
		}
		if err != nil {
			h.sendError(fmt.Errorf("speed: %w", err))
			return
		}
		h.sendMsg(MsgSpeedSet, msg.Content)
	case MsgReset:
		h.clock.Reset()
		h.history.Clear()
		h.pushFrame()
	case MsgFrame:
		h.pushFrame()
	default:
		h.sendError(fmt.Errorf("no such type %q", msg.Type))
	}
}

// env 消息的 Content，scenario_id 与 scenario 二选一，scenario 优先
type envRequest struct {
	ScenarioID string           `json:"scenario_id"`
	Scenario   *scenario.Config `json:"scenario"`
}

// resolveEnv returns the inline scenario, or looks scenario_id up in the store.
func (h *Hub) resolveEnv(content string) (scenario.Config, error) {
	var req envRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		return scenario.Config{}, fmt.Errorf("env: %w", err)
	}
	if req.Scenario != nil {
		return *req.Scenario, nil
	}
	if req.ScenarioID == "" {
		return scenario.Config{}, fmt.Errorf("env: scenario or scenario_id required")
	}
	return h.store.Get(req.ScenarioID)
}

func (h *Hub) pushFrame() {
	start := time.Now()
	frame, err := BuildFrame(h.sampler, h.scenario, h.clock.Time, h.gridSize, h.history)
	if err != nil {
		h.sendError(err)
		return
	}
	data, err := EncodeFrame(frame)
	if err != nil {
		h.sendError(err)
		return
	}
	log.WithFields(log.Fields{
		"time": h.clock.Time,
		"cost": time.Since(start),
		"size": len(data),
	}).Debug("push frame")
	h.send(outgoing{frame: data})
}
