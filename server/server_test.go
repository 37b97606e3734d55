package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/electr1fy0/jot/notes"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := notes.NewStore(notes.WithSeed("Example Note", "Welcome"))
	hub := NewHub(store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	ts := httptest.NewServer(New(hub, zerolog.Nop()).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func wsURL(ts *httptest.Server) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}

func dial(t *testing.T, ts *httptest.Server) (*websocket.Conn, Reply) {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var hello Reply
	require.NoError(t, conn.ReadJSON(&hello))
	return conn, hello
}

func send(t *testing.T, conn *websocket.Conn, in any) Reply {
	t.Helper()
	require.NoError(t, conn.WriteJSON(in))
	var r Reply
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&r))
	return r
}

func TestWS_InitialState(t *testing.T) {
	ts := startServer(t)

	_, hello := dial(t, ts)

	assert.Empty(t, hello.Error)
	require.Len(t, hello.State.Notes, 1)
	assert.Equal(t, "Example Note", hello.State.Notes[0].Title)
	assert.Equal(t, notes.SelectionView{Mode: "editing", ID: 1}, hello.State.Selection)
	assert.Equal(t, "Save Changes", hello.State.SubmitLabel)
}

func TestWS_CreateNote(t *testing.T) {
	ts := startServer(t)
	conn, _ := dial(t, ts)

	r := send(t, conn, notes.Intent{Kind: notes.IntentNew})
	assert.Equal(t, "creating", r.State.Selection.Mode)
	assert.Equal(t, "Create Note", r.State.SubmitLabel)

	send(t, conn, notes.Intent{Kind: notes.IntentEdit, Field: notes.FieldTitle, Text: "Groceries"})
	send(t, conn, notes.Intent{Kind: notes.IntentEdit, Field: notes.FieldBody, Text: " Milk "})
	r = send(t, conn, notes.Intent{Kind: notes.IntentCommit})

	require.Empty(t, r.Error)
	require.Len(t, r.State.Notes, 2)
	assert.Equal(t, notes.Note{ID: 2, Title: "Groceries", Body: "Milk"}, r.State.Notes[0])
	assert.Equal(t, notes.SelectionView{Mode: "editing", ID: 2}, r.State.Selection)
}

func TestWS_ValidationError(t *testing.T) {
	ts := startServer(t)
	conn, _ := dial(t, ts)

	send(t, conn, notes.Intent{Kind: notes.IntentNew})
	r := send(t, conn, notes.Intent{Kind: notes.IntentCommit})

	assert.Equal(t, "title required", r.Error)
	assert.Len(t, r.State.Notes, 1)
	assert.Equal(t, "creating", r.State.Selection.Mode)
}

func TestWS_BadFrames(t *testing.T) {
	ts := startServer(t)
	conn, _ := dial(t, ts)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{nope")))
	var r Reply
	require.NoError(t, conn.ReadJSON(&r))
	assert.Equal(t, "invalid message", r.Error)
	assert.Len(t, r.State.Notes, 1)

	r = send(t, conn, map[string]string{"intent": "rename"})
	assert.Contains(t, r.Error, "unknown intent")

	r = send(t, conn, notes.Intent{Kind: notes.IntentEdit, Field: "color"})
	assert.Contains(t, r.Error, "unknown form field")

	// still usable
	r = send(t, conn, notes.Intent{Kind: notes.IntentPick, NoteID: 1})
	assert.Empty(t, r.Error)
}

func TestWS_RemoveNeedsConfirmation(t *testing.T) {
	ts := startServer(t)
	conn, _ := dial(t, ts)

	r := send(t, conn, notes.Intent{Kind: notes.IntentRemove, NoteID: 1})
	assert.Len(t, r.State.Notes, 1)

	r = send(t, conn, notes.Intent{Kind: notes.IntentRemove, NoteID: 1, Confirmed: true})
	assert.Empty(t, r.State.Notes)
	assert.Equal(t, "creating", r.State.Selection.Mode)
	assert.Equal(t, notes.Form{}, r.State.Form)
}

func TestWS_SingleOwner(t *testing.T) {
	ts := startServer(t)
	first, _ := dial(t, ts)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(ts), nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	require.NoError(t, first.Close())

	assert.Eventually(t, func() bool {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts), nil)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond)
}

func TestAPI_State(t *testing.T) {
	ts := startServer(t)
	conn, _ := dial(t, ts)
	send(t, conn, notes.Intent{Kind: notes.IntentEdit, Field: notes.FieldBody, Text: "draft"})

	resp, err := http.Get(ts.URL + "/api/state")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap notes.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, "draft", snap.Form.Body)
	assert.Equal(t, "Welcome", snap.Notes[0].Body)
}

func TestAPI_Health(t *testing.T) {
	ts := startServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestHub_Stopped(t *testing.T) {
	hub := NewHub(notes.NewStore(), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	_, err := hub.Do(context.Background(), nil)
	assert.ErrorIs(t, err, ErrHubStopped)
}

func TestServe_Shutdown(t *testing.T) {
	hub := NewHub(notes.NewStore(), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	errCh := make(chan error, 1)
	go func() { errCh <- New(hub, zerolog.Nop()).Serve(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
