package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"lz/calculator"
	"lz/config"
	"lz/model"
	"lz/scenario"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	cfg      *config.Config
	store    *scenario.Store
	sampler  *calculator.Sampler
	router   *mux.Router
}

func NewServer(cfg *config.Config, store *scenario.Store) (*Server, error) {
	kernel, err := calculator.KernelByName(cfg.Calculator.Kernel)
	if err != nil {
		return nil, err
	}
	s := &Server{
		addr: cfg.Server.Addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.Server.ReadBufferSize,
			WriteBufferSize: cfg.Server.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		cfg:     cfg,
		store:   store,
		sampler: calculator.NewSampler(cfg.Calculator.Workers, kernel),
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/ws", s.serveWs)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/rock", s.getRock).Methods("GET")
	api.HandleFunc("/rock/{name}", s.getRockType).Methods("GET")
	api.HandleFunc("/scenarios", s.listScenarios).Methods("GET")
	api.HandleFunc("/scenarios", s.saveScenario).Methods("POST")
	api.HandleFunc("/scenarios/{id}", s.getScenario).Methods("GET")
	api.HandleFunc("/scenarios/{id}", s.deleteScenario).Methods("DELETE")
	api.HandleFunc("/field", s.sampleField).Methods("POST")
	api.HandleFunc("/drawdown", s.drawdown).Methods("POST")
	api.HandleFunc("/compare", s.compare).Methods("POST")
	return router
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(conn, s.sampler, s.store, s.cfg)
	go hub.handleRequest()
	go hub.handleResponse()
	defer hub.Close()

	log.WithField("remote", r.RemoteAddr).Info("client connected")
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("read message")
			}
			log.WithField("remote", r.RemoteAddr).Info("client disconnected")
			return
		}
		if !hub.enqueue(msg) {
			return
		}
	}
}

func (s *Server) Serve() error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.WithFields(log.Fields{
		"addr":     s.addr,
		"gridSize": s.cfg.Calculator.GridSize,
		"kernel":   s.cfg.Calculator.Kernel,
	}).Info("server listening")
	return srv.ListenAndServe()
}
