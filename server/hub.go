package server

import (
	"context"
	"errors"

	"github.com/electr1fy0/jot/notes"
	"github.com/rs/zerolog"
)

var (
	ErrHubStopped = errors.New("hub stopped")
	ErrBusy       = errors.New("session already in use")
)

// Hub owns one editing session. Only the Run goroutine touches the store,
// so every intent is applied whole before the next is read.
type Hub struct {
	store *notes.Store
	log   zerolog.Logger

	owner *session

	requests chan request
	claims   chan claim
	releases chan *session
	done     chan struct{}
}

func NewHub(store *notes.Store, log zerolog.Logger) *Hub {
	return &Hub{
		store:    store,
		log:      log,
		requests: make(chan request),
		claims:   make(chan claim),
		releases: make(chan *session),
		done:     make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.log.Debug().Msg("hub stopped")
			return
		case c := <-h.claims:
			if h.owner != nil {
				c.ok <- false
				continue
			}
			h.owner = c.owner
			c.ok <- true
			h.log.Info().Str("remote", c.owner.remote).Msg("session claimed")
		case s := <-h.releases:
			if h.owner == s {
				h.owner = nil
				h.log.Info().Str("remote", s.remote).Msg("session released")
			}
		case req := <-h.requests:
			req.reply <- h.handle(req)
		}
	}
}

func (h *Hub) handle(req request) Reply {
	if req.intent == nil {
		return Reply{State: h.store.Snapshot()}
	}
	in := *req.intent
	if err := h.store.Apply(in); err != nil {
		h.log.Debug().Err(err).Str("intent", string(in.Kind)).Msg("intent rejected")
		return Reply{Error: err.Error(), State: h.store.Snapshot()}
	}
	h.log.Debug().Str("intent", string(in.Kind)).Stringer("selection", h.store.Selection()).Msg("intent applied")
	return Reply{State: h.store.Snapshot()}
}

// Do applies in, or only reads the state when in is nil.
func (h *Hub) Do(ctx context.Context, in *notes.Intent) (Reply, error) {
	req := request{intent: in, reply: make(chan Reply, 1)}
	select {
	case h.requests <- req:
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	case <-h.done:
		return Reply{}, ErrHubStopped
	}
	return <-req.reply, nil
}

func (h *Hub) claim(ctx context.Context, s *session) error {
	c := claim{owner: s, ok: make(chan bool, 1)}
	select {
	case h.claims <- c:
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return ErrHubStopped
	}
	if !<-c.ok {
		return ErrBusy
	}
	return nil
}

func (h *Hub) release(s *session) {
	select {
	case h.releases <- s:
	case <-h.done:
	}
}
