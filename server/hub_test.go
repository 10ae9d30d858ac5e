package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"lz/config"
	"lz/model"
	"lz/scenario"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Calculator.GridSize = 5
	cfg.Calculator.Workers = 2
	s, err := NewServer(cfg, scenario.NewStore())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	return conn
}

func readMsg(t *testing.T, conn *websocket.Conn) model.Msg {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	typ, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if typ != websocket.TextMessage {
		t.Fatalf("message type %d, want text", typ)
	}
	var msg model.Msg
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatal(err)
	}
	return msg
}

func readFrame(t *testing.T, conn *websocket.Conn) *Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	typ, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if typ != websocket.BinaryMessage {
		t.Fatalf("message type %d, want binary: %s", typ, data)
	}
	f, err := DecodeFrame(data)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestHub_EnvAndFrame(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()
	conn := dial(t, ts)
	defer conn.Close()

	if err := conn.WriteJSON(model.Msg{Type: MsgEnv, Content: `{"scenario_id":"default-2"}`}); err != nil {
		t.Fatal(err)
	}
	msg := readMsg(t, conn)
	if msg.Type != MsgEnvSet {
		t.Fatalf("got %+v, want envSet", msg)
	}
	var c scenario.Config
	if err := json.Unmarshal([]byte(msg.Content), &c); err != nil {
		t.Fatal(err)
	}
	if c.LateralCount != scenario.Aggressive.LateralCount {
		t.Errorf("env resolved to %+v", c)
	}

	if err := conn.WriteJSON(model.Msg{Type: MsgFrame}); err != nil {
		t.Fatal(err)
	}
	f := readFrame(t, conn)
	if f.ScenarioID != "default-2" {
		t.Errorf("frame scenario %q", f.ScenarioID)
	}
	if f.Years != 1 {
		t.Errorf("frame years %d, want 1 after reset", f.Years)
	}
	if f.Field == nil || len(f.Field.Values) != 125 {
		t.Fatalf("frame field %+v", f.Field)
	}
	if f.AverageDrawdown <= 0 {
		t.Errorf("average drawdown %v", f.AverageDrawdown)
	}
	if len(f.History) != 1 || f.History[0].Year != 1 {
		t.Errorf("history %+v", f.History)
	}
}

func TestHub_InlineEnv(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()
	conn := dial(t, ts)
	defer conn.Close()

	// 即使带有已存方案的 id，也以内联参数为准
	content := `{"scenario":{"id":"default-1","name":"flat","wellbore_depth":1500,"lateral_count":2,"lateral_length":300,"thermal_conductivity":3,"heat_extraction_rate":20000}}`
	if err := conn.WriteJSON(model.Msg{Type: MsgEnv, Content: content}); err != nil {
		t.Fatal(err)
	}
	msg := readMsg(t, conn)
	if msg.Type != MsgEnvSet {
		t.Fatalf("got %+v, want envSet", msg)
	}
	var c scenario.Config
	if err := json.Unmarshal([]byte(msg.Content), &c); err != nil {
		t.Fatal(err)
	}
	if c.Name != "flat" || c.LateralCount != 2 {
		t.Errorf("env resolved to %+v", c)
	}
}

func TestHub_Seek(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()
	conn := dial(t, ts)
	defer conn.Close()

	if err := conn.WriteJSON(model.Msg{Type: MsgSeek, Content: "315360000"}); err != nil {
		t.Fatal(err)
	}
	f := readFrame(t, conn)
	if f.Years != 10 {
		t.Errorf("years %d, want 10", f.Years)
	}
}

func TestHub_Errors(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()
	conn := dial(t, ts)
	defer conn.Close()

	for _, m := range []model.Msg{
		{Type: "bogus"},
		{Type: MsgEnv, Content: `{"scenario_id":"missing"}`},
		{Type: MsgEnv, Content: `{}`},
		{Type: MsgEnv, Content: `not json`},
		{Type: MsgSpeed, Content: "0"},
		{Type: MsgSeek, Content: "abc"},
	} {
		if err := conn.WriteJSON(m); err != nil {
			t.Fatal(err)
		}
		if got := readMsg(t, conn); got.Type != MsgError {
			t.Errorf("%+v: got %+v, want error", m, got)
		}
	}

	// 出错之后连接仍然可用
	if err := conn.WriteJSON(model.Msg{Type: MsgSpeed, Content: "2"}); err != nil {
		t.Fatal(err)
	}
	if got := readMsg(t, conn); got.Type != MsgSpeedSet || got.Content != "2" {
		t.Errorf("got %+v, want speedSet", got)
	}
}

func TestHub_PlayStop(t *testing.T) {
	s := newTestServer(t)
	s.cfg.Playback.TickMillis = 10
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()
	conn := dial(t, ts)
	defer conn.Close()

	if err := conn.WriteJSON(model.Msg{Type: MsgStart}); err != nil {
		t.Fatal(err)
	}
	if got := readMsg(t, conn); got.Type != MsgStarted {
		t.Fatalf("got %+v, want started", got)
	}
	first := readFrame(t, conn)
	second := readFrame(t, conn)
	if second.Time <= first.Time {
		t.Errorf("time did not advance: %v then %v", first.Time, second.Time)
	}

	if err := conn.WriteJSON(model.Msg{Type: MsgStop}); err != nil {
		t.Fatal(err)
	}
	// frames queued before stop may still arrive
	for {
		conn.SetReadDeadline(time.Now().Add(10 * time.Second))
		typ, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatal(err)
		}
		if typ == websocket.TextMessage {
			var msg model.Msg
			if err := json.Unmarshal(data, &msg); err != nil {
				t.Fatal(err)
			}
			if msg.Type != MsgStopped {
				t.Errorf("got %+v, want stopped", msg)
			}
			return
		}
	}
}
