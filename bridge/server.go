package bridge

import (
	"context"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/itchio/headway/state"
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

// OpenFunc starts an engine for one client. release, when not nil, runs
// after the engine's transport is closed.
type OpenFunc func(c context.Context) (engine tdjson.Transport, release func() error, err error)

// Server gives each websocket client an engine of its own, one JSON
// object per text frame.
type Server struct {
	Open     OpenFunc
	Consumer *state.Consumer

	// Passed to Pump for every client.
	CloseTimeout time.Duration

	// For errors of the HTTP server itself. Defaults to the log package.
	ErrorLog *log.Logger

	upgrader websocket.Upgrader
	clients  sync.WaitGroup
}

func (s *Server) consumer() *state.Consumer {
	if s.Consumer == nil {
		return &state.Consumer{}
	}
	return s.Consumer
}

// Handler serves clients on "/" and answers "/healthz".
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok\n"))
	}).Methods("GET")
	r.HandleFunc("/", s.serveClient).Methods("GET")

	var h http.Handler = r
	h = handlers.CombinedLoggingHandler(&consumerWriter{s.consumer()}, h)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	return h
}

func (s *Server) serveClient(w http.ResponseWriter, r *http.Request) {
	// counted before the upgrade, while Shutdown still sees the connection
	s.clients.Add(1)
	defer s.clients.Done()

	consumer := s.consumer()
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered with an HTTP error
		consumer.Debugf("Upgrading %s: %v", r.RemoteAddr, err)
		return
	}
	client := tdjson.NewWebsocketTransport(conn)

	engine, release, err := s.Open(r.Context())
	if err != nil {
		consumer.Warnf("Starting engine for %s: %+v", r.RemoteAddr, err)
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "could not start engine"),
			time.Now().Add(time.Second))
		client.Close()
		return
	}

	consumer.Infof("Client %s connected", r.RemoteAddr)
	err = Pump(r.Context(), client, engine, PumpOpts{
		CloseTimeout: s.CloseTimeout,
		Consumer:     consumer,
	})
	if err != nil {
		consumer.Warnf("Client %s: %v", r.RemoteAddr, err)
	}
	if release != nil {
		if err := release(); err != nil {
			consumer.Warnf("Releasing engine for %s: %v", r.RemoteAddr, err)
		}
	}
	consumer.Infof("Client %s disconnected", r.RemoteAddr)
}

// Serve accepts clients on l until c is done, then closes every engine
// before returning.
func (s *Server) Serve(c context.Context, l net.Listener) error {
	hs := &http.Server{
		Handler:     s.Handler(),
		BaseContext: func(net.Listener) context.Context { return c },
		ErrorLog:    s.ErrorLog,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- hs.Serve(l)
	}()

	select {
	case err := <-errc:
		s.clients.Wait()
		return errors.WithStack(err)
	case <-c.Done():
	}

	sc, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(sc); err != nil {
		s.consumer().Debugf("Shutting down: %v", err)
	}
	<-errc
	s.clients.Wait()
	return nil
}

type consumerWriter struct {
	consumer *state.Consumer
}

func (cw *consumerWriter) Write(p []byte) (int, error) {
	cw.consumer.Debugf("%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
