package server

import (
	"encoding/json"
	"net/http"

	"github.com/electr1fy0/jot/notes"
)

// Reply is sent for every client frame, and once on connect.
type Reply struct {
	Error string         `json:"error,omitempty"`
	State notes.Snapshot `json:"state"`
}

type request struct {
	intent *notes.Intent // nil reads the state only
	reply  chan Reply
}

type claim struct {
	owner *session
	ok    chan bool
}

// session marks whoever holds the editing slot.
type session struct {
	remote string
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
