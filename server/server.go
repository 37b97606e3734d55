package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/electr1fy0/jot/notes"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Server struct {
	hub    *Hub
	log    zerolog.Logger
	router *mux.Router
}

func New(hub *Hub, log zerolog.Logger) *Server {
	s := &Server{hub: hub, log: log, router: mux.NewRouter()}

	s.router.HandleFunc("/ws", s.handleWS).Methods("GET")
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/state", s.handleState).Methods("GET")

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on addr until ctx is done, then shuts down.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	reply, err := s.hub.Do(r.Context(), nil)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, reply.State)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	sess := &session{remote: r.RemoteAddr}
	if err := s.hub.claim(r.Context(), sess); err != nil {
		status := http.StatusServiceUnavailable
		if errors.Is(err, ErrBusy) {
			status = http.StatusConflict
		}
		respondError(w, status, err.Error())
		return
	}
	defer s.hub.release(sess)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("upgrade failed")
		return
	}
	defer conn.Close()

	ctx := r.Context()

	reply, err := s.hub.Do(ctx, nil)
	if err != nil {
		return
	}
	if err := conn.WriteJSON(reply); err != nil {
		s.log.Warn().Err(err).Msg("write failed")
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn().Err(err).Msg("read failed")
			}
			return
		}

		var in notes.Intent
		target := &in
		decodeErr := json.Unmarshal(data, &in)
		if decodeErr != nil {
			target = nil
		}
		reply, err := s.hub.Do(ctx, target)
		if err != nil {
			_ = conn.WriteJSON(Reply{Error: err.Error()})
			return
		}
		if decodeErr != nil {
			reply.Error = "invalid message"
		}
		if err := conn.WriteJSON(reply); err != nil {
			s.log.Warn().Err(err).Msg("write failed")
			return
		}
	}
}
