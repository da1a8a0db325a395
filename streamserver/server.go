// Package streamserver streams spherical volume ray traversals to
// websocket clients one record per frame once each traversal has been
// computed, generalizing the teacher's
// own server.go (which streams generated planet mesh frames to
// connected browsers over gorilla/websocket) from planet meshes to
// traversal records.
package streamserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"sphervoxel/config"
	"sphervoxel/geom"
	"sphervoxel/gridspec"
	"sphervoxel/trace"
)

// Frame is one streamed unit: either a traversal record, or — on the
// final message of a request — a summary with Done set.
type Frame struct {
	Index  int         `json:"index"`
	Voxel  trace.Voxel `json:"voxel"`
	TEnter float64     `json:"tEnter"`
	TExit  float64     `json:"tExit"`
	Done   bool        `json:"done"`
	Error  string      `json:"error,omitempty"`
}

// Server accepts ray-trace requests over a websocket endpoint and
// streams results back one record at a time.
type Server struct {
	grid     *gridspec.Grid
	settings config.ServerSettings
	upgrader websocket.Upgrader

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex
}

// New builds a Server that traces rays against grid.
func New(grid *gridspec.Grid, settings config.ServerSettings) *Server {
	s := &Server{
		grid:     grid,
		settings: settings,
		clients:  make(map[*websocket.Conn]*sync.Mutex),
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: s.checkOrigin,
	}
	return s
}

// checkOrigin allows connections with no Origin header (non-browser
// clients) and connections whose Origin is in the configured allow
// list. Unlike the teacher's own CheckOrigin (which unconditionally
// returns true for local development convenience), this defaults to
// deny for browser-originated requests so the server is safe to run
// past a local demo without reconfiguration.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.settings.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// Serve runs the HTTP server until ctx is canceled.
func (s *Server) Serve(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/trace", s.handleTrace)

	addr := fmt.Sprintf(":%d", s.settings.Port)
	httpServer := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("sphereserver listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// handleTrace upgrades the connection and streams the traversal for
// the ray described in the request's query parameters (ox, oy, oz,
// dx, dy, dz, tmax).
func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	mu := &sync.Mutex{}

	s.clientsMu.Lock()
	s.clients[conn] = mu
	s.clientsMu.Unlock()

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
		conn.Close()
	}()

	ray, tMax, err := rayFromQuery(r)
	if err != nil {
		s.send(conn, mu, Frame{Done: true, Error: err.Error()})
		return
	}

	seq, err := trace.Walk(ray, s.grid, tMax)
	if err != nil {
		s.send(conn, mu, Frame{Done: true, Error: err.Error()})
		return
	}

	interval := time.Duration(s.settings.UpdateIntervalMs) * time.Millisecond
	for i, rec := range seq {
		if err := s.send(conn, mu, Frame{Index: i, Voxel: rec.Voxel, TEnter: rec.TEnter, TExit: rec.TExit}); err != nil {
			return
		}
		if interval > 0 {
			time.Sleep(interval)
		}
	}
	s.send(conn, mu, Frame{Index: len(seq), Done: true})
}

func (s *Server) send(conn *websocket.Conn, mu *sync.Mutex, frame Frame) error {
	mu.Lock()
	defer mu.Unlock()
	return conn.WriteJSON(frame)
}

func rayFromQuery(r *http.Request) (geom.Ray, float64, error) {
	q := r.URL.Query()
	ox, err1 := strconv.ParseFloat(q.Get("ox"), 64)
	oy, err2 := strconv.ParseFloat(q.Get("oy"), 64)
	oz, err3 := strconv.ParseFloat(q.Get("oz"), 64)
	dx, err4 := strconv.ParseFloat(q.Get("dx"), 64)
	dy, err5 := strconv.ParseFloat(q.Get("dy"), 64)
	dz, err6 := strconv.ParseFloat(q.Get("dz"), 64)
	tMax, err7 := strconv.ParseFloat(q.Get("tmax"), 64)
	for _, e := range []error{err1, err2, err3, err4, err5, err6, err7} {
		if e != nil {
			return geom.Ray{}, 0, fmt.Errorf("streamserver: invalid query parameters: %w", e)
		}
	}

	ray, err := geom.NewRay(geom.New(ox, oy, oz), geom.New(dx, dy, dz))
	if err != nil {
		return geom.Ray{}, 0, err
	}
	return ray, tMax, nil
}
