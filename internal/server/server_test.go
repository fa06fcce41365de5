package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Charles-Go/croki/internal/config"
	"github.com/Charles-Go/croki/internal/game"
)

func newTestServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	lobby := game.NewLobby(game.NewScheduler(), time.Minute, zerolog.Nop())
	srv := httptest.NewServer(New(cfg, lobby, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t, config.Default())

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_ForbiddenOrigin(t *testing.T) {
	cfg := config.Default()
	cfg.AllowedOrigins = []string{"http://game.example"}
	srv := newTestServer(t, cfg)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/ws/ABCD", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://evil.example")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

type syncStateFrame struct {
	Type    string          `json:"type"`
	Payload *game.GameState `json:"payload"`
}

func readSyncState(t *testing.T, conn *websocket.Conn) *game.GameState {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame syncStateFrame
	require.NoError(t, json.Unmarshal(data, &frame))
	require.Equal(t, game.MSG_SYNC_STATE, frame.Type)
	return frame.Payload
}

func TestServer_WebsocketJoinFlow(t *testing.T) {
	srv := newTestServer(t, config.Default())
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/ROOM1"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The coordinator greets every connection with the current snapshot.
	state := readSyncState(t, conn)
	assert.Equal(t, game.PHASE_WAITING, state.Phase)
	assert.Empty(t, state.Players)

	err = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"join","payload":{"playerName":"Léa"}}`))
	require.NoError(t, err)

	state = readSyncState(t, conn)
	require.Len(t, state.Players, 1)
	assert.Equal(t, "Léa", state.Players[0].Name)
	assert.True(t, state.Players[0].IsHost)
}

func TestServer_MalformedFrameKeepsConnection(t *testing.T) {
	srv := newTestServer(t, config.Default())
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/ROOM2"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	readSyncState(t, conn)

	// Garbage is logged and dropped; the connection must survive.
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json at all")))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"join","payload":{"playerName":"Bob"}}`)))
	state := readSyncState(t, conn)
	require.Len(t, state.Players, 1)
	assert.Equal(t, "Bob", state.Players[0].Name)
}
