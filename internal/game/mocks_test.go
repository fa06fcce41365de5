package game

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- NetworkSession ---

type MockNetworkSession struct {
	mock.Mock
}

func (m *MockNetworkSession) Close(errCode string) {
	m.Called(errCode)
}

func (m *MockNetworkSession) Write(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockNetworkSession) Read() ([]byte, error) {
	args := m.Called()
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockNetworkSession) Ping() error {
	args := m.Called()
	return args.Error(0)
}

// --- Player ---

// recordingPlayer captures every frame the room sends so tests can decode
// the snapshots a client would have rendered.
type recordingPlayer struct {
	id string

	mu       sync.Mutex
	frames   [][]byte
	pings    int
	released bool
}

func newRecordingPlayer(id string) *recordingPlayer {
	return &recordingPlayer{id: id}
}

func (p *recordingPlayer) Id() string { return p.id }

func (p *recordingPlayer) Send(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	p.frames = append(p.frames, buf)
}

func (p *recordingPlayer) Ping() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pings++
}

func (p *recordingPlayer) CancelAndRelease() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.released = true
}

func (p *recordingPlayer) frameCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frames)
}

// lastState decodes the most recent sync_state the player received.
func (p *recordingPlayer) lastState(t *testing.T) *GameState {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.frames, "player %s received no frames", p.id)

	var envelope struct {
		Type    string     `json:"type"`
		Payload *GameState `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(p.frames[len(p.frames)-1], &envelope))
	require.Equal(t, MSG_SYNC_STATE, envelope.Type)
	return envelope.Payload
}

// --- Scheduler ---

type scheduledTask struct {
	d  time.Duration
	fn func()
}

// mockScheduler collects armed timers; tests fire them by hand and advance
// the clock explicitly.
type mockScheduler struct {
	now   time.Time
	tasks []scheduledTask
}

func newMockScheduler() *mockScheduler {
	return &mockScheduler{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (s *mockScheduler) Now() time.Time { return s.now }

func (s *mockScheduler) Schedule(d time.Duration, fn func()) {
	s.tasks = append(s.tasks, scheduledTask{d: d, fn: fn})
}

func (s *mockScheduler) advance(d time.Duration) {
	s.now = s.now.Add(d)
}

// firePending runs every armed timer callback and clears the list.
func (s *mockScheduler) firePending() {
	tasks := s.tasks
	s.tasks = nil
	for _, task := range tasks {
		task.fn()
	}
}

// --- Helpers ---

// drainTimerEvents applies queued timer events to the room the way the
// GameLoop would, without running the loop.
func drainTimerEvents(r *Room) {
	for {
		select {
		case ev := <-r.timerEvents:
			r.handleTimerEvent(ev)
		default:
			return
		}
	}
}

func frame(t *testing.T, msgType string, payload any) []byte {
	t.Helper()
	envelope := map[string]any{"type": msgType}
	if payload != nil {
		envelope["payload"] = payload
	}
	raw, err := json.Marshal(envelope)
	require.NoError(t, err)
	return raw
}

// newTestRoom wires a room with a manual scheduler and no lobby, for tests
// that drive the handle* methods directly.
func newTestRoom() (*Room, *mockScheduler) {
	sched := newMockScheduler()
	r := NewRoom("room-test", nil, sched, time.Minute, zerolog.Nop())
	return r, sched
}

// joinPlayers attaches and joins n players named p0..p(n-1); p0 is host.
func joinPlayers(t *testing.T, r *Room, n int) []*recordingPlayer {
	t.Helper()
	players := make([]*recordingPlayer, 0, n)
	for i := 0; i < n; i++ {
		p := newRecordingPlayer(fmt.Sprintf("p%d", i))
		r.handleAttach(p)
		r.handleEnvelope(commandEnvelope{from: p.id, raw: frame(t, MSG_JOIN, map[string]any{"playerName": fmt.Sprintf("player-%d", i)})})
		players = append(players, p)
	}
	return players
}
