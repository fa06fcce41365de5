package game

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Player is the room-side view of one connected client. Send and Ping are
// fire-and-forget; the transport drops frames it cannot enqueue.
type Player interface {
	Id() string
	Send(data []byte)
	Ping()
	CancelAndRelease()
}

type commandEnvelope struct {
	from string
	raw  []byte
}

// --- Timer events ---
// Timers never mutate state themselves. They post an event carrying the
// sequence number they were armed with; the room loop re-validates phase and
// sequence before acting, so a stale timer is a no-op. The last armed timer
// for a given phase always wins.
type timerKind int

const (
	TIMER_DRAWING timerKind = iota // drawing phase duration elapsed
	TIMER_GUESS                    // 30s guess window elapsed
	TIMER_EVICT                    // room empty past the grace period
)

type timerEvent struct {
	kind timerKind
	seq  uint64
}

// Room owns one GameState. Every mutation — command, connect, disconnect,
// timer — is funneled through the GameLoop goroutine, so handlers never
// need locks.
type Room struct {
	id        string
	state     *GameState
	usedWords map[string]struct{}
	conns     map[string]Player

	drawingTimerSeq uint64
	guessTimerSeq   uint64
	evictSeq        uint64

	attachReqs  chan Player
	detachReqs  chan Player
	inbox       chan commandEnvelope
	timerEvents chan timerEvent
	pingReqs    chan struct{}
	quit        chan struct{}
	stopOnce    sync.Once

	lobby      *Lobby
	sched      Scheduler
	evictGrace time.Duration
	log        zerolog.Logger
}

func NewRoom(id string, lobby *Lobby, sched Scheduler, evictGrace time.Duration, logger zerolog.Logger) *Room {
	return &Room{
		id:          id,
		state:       NewGameState(),
		usedWords:   make(map[string]struct{}),
		conns:       make(map[string]Player),
		attachReqs:  make(chan Player),
		detachReqs:  make(chan Player),
		inbox:       make(chan commandEnvelope, 1024),
		timerEvents: make(chan timerEvent, 32),
		pingReqs:    make(chan struct{}, 1),
		quit:        make(chan struct{}),
		lobby:       lobby,
		sched:       sched,
		evictGrace:  evictGrace,
		log:         logger.With().Str("room", id).Logger(),
	}
}

func (r *Room) Id() string { return r.id }

// Attach hands a connection to the room. Returns false when the room has
// already shut down; the caller should resolve a fresh room and retry.
func (r *Room) Attach(p Player) bool {
	select {
	case r.attachReqs <- p:
		return true
	case <-r.quit:
		return false
	}
}

// Detach is called by the read pump when the connection drops.
func (r *Room) Detach(p Player) {
	select {
	case r.detachReqs <- p:
	case <-r.quit:
	}
}

// Deliver forwards one raw inbound frame to the room mailbox. Frames are
// dropped when the mailbox is full; a client flooding the room loses its own
// messages, not the room.
func (r *Room) Deliver(from string, raw []byte) {
	select {
	case r.inbox <- commandEnvelope{from: from, raw: raw}:
	case <-r.quit:
	default:
		r.log.Warn().Str("player", from).Msg("room mailbox full, dropping frame")
	}
}

// PingPlayers asks the room to ping every connection. Non-blocking;
// coalesces with a pending request.
func (r *Room) PingPlayers() {
	select {
	case r.pingReqs <- struct{}{}:
	default:
	}
}

func (r *Room) stop() {
	r.stopOnce.Do(func() { close(r.quit) })
}

// GameLoop is the room actor. Runs until the room is evicted.
func (r *Room) GameLoop() {
	// A room that never sees a connection must not leak.
	r.armEvictTimer()

	for {
		select {
		case p := <-r.attachReqs:
			r.handleAttach(p)
		case p := <-r.detachReqs:
			r.handleDetach(p)
		case env := <-r.inbox:
			r.handleEnvelope(env)
		case ev := <-r.timerEvents:
			r.handleTimerEvent(ev)
		case <-r.pingReqs:
			for _, p := range r.conns {
				p.Ping()
			}
		case <-r.quit:
			return
		}
	}
}

func (r *Room) handleAttach(p Player) {
	r.conns[p.Id()] = p
	r.evictSeq++ // invalidate any pending eviction
	r.log.Debug().Str("player", p.Id()).Int("connections", len(r.conns)).Msg("connection attached")
	r.sendSnapshotTo(p)
}

func (r *Room) handleDetach(p Player) {
	if _, ok := r.conns[p.Id()]; !ok {
		return
	}
	delete(r.conns, p.Id())
	p.CancelAndRelease()
	r.log.Debug().Str("player", p.Id()).Int("connections", len(r.conns)).Msg("connection detached")

	r.removePlayer(p.Id())

	if len(r.conns) == 0 {
		r.armEvictTimer()
	}
}

// removePlayer applies the disconnect side effects: drop the player, promote
// a new host, force the round forward when the guesser left mid-game.
func (r *Room) removePlayer(id string) {
	gs := r.state
	index := gs.playerIndex(id)
	if index == -1 {
		return
	}

	wasHost := gs.Players[index].IsHost
	gs.Players = append(gs.Players[:index], gs.Players[index+1:]...)

	// First remaining player in join order inherits the host role.
	if wasHost && len(gs.Players) > 0 {
		gs.Players[0].IsHost = true
	}

	if gs.Phase != PHASE_WAITING {
		if gs.isGuesser(id) && len(gs.Players) > 0 {
			r.startNextRound()
		}
		// The filter keeps sorted order; the cursor must follow when an
		// already-revealed submission is dropped, so submissions[revealIndex-1]
		// stays the most recently revealed one.
		kept := gs.Submissions[:0]
		for i, s := range gs.Submissions {
			if s.PlayerId == id {
				if i < gs.RevealIndex {
					gs.RevealIndex--
				}
				continue
			}
			kept = append(kept, s)
		}
		gs.Submissions = kept
	}

	r.broadcast()
}

func (r *Room) handleEnvelope(env commandEnvelope) {
	cmd, err := DecodeCommand(env.raw)
	if err != nil {
		r.log.Debug().Err(err).Str("player", env.from).Msg("dropping inbound frame")
		return
	}

	switch c := cmd.(type) {
	case JoinCommand:
		r.handleJoin(env.from, c)
	case ChangeNameCommand:
		r.handleChangeName(env.from, c)
	case ReadyCommand:
		r.handleReady(env.from)
	case StartGameCommand:
		r.handleStartGame(env.from)
	case SetTimerCommand:
		r.handleSetTimer(env.from, c)
	case SetTotalRoundsCommand:
		r.handleSetTotalRounds(env.from, c)
	case SetDifficultyCommand:
		r.handleSetDifficulty(env.from, c)
	case ToggleHintCommand:
		r.handleToggleHint(env.from)
	case SubmitDrawingCommand:
		r.handleSubmitDrawing(env.from, c)
	case RevealNextCommand:
		r.handleRevealNext(env.from)
	case GuessCommand:
		r.handleGuess(env.from, c)
	case NextRoundCommand:
		r.handleNextRound(env.from)
	}
}

func (r *Room) handleTimerEvent(ev timerEvent) {
	switch ev.kind {
	case TIMER_DRAWING:
		if ev.seq != r.drawingTimerSeq || r.state.Phase != PHASE_DRAWING {
			return
		}
		r.log.Info().Int("round", r.state.RoundNumber).Msg("drawing timer elapsed")
		r.startRevealPhase()

	case TIMER_GUESS:
		if ev.seq != r.guessTimerSeq || r.state.Phase != PHASE_REVEALING {
			return
		}
		if r.state.GuessTimerEndTime == nil || r.sched.Now().UnixMilli() < *r.state.GuessTimerEndTime {
			return
		}
		r.log.Info().Int("round", r.state.RoundNumber).Msg("guess timer elapsed, round lost")
		r.state.Phase = PHASE_ROUND_END
		r.state.GuessTimerEndTime = nil
		r.broadcast()

	case TIMER_EVICT:
		if ev.seq != r.evictSeq || len(r.conns) > 0 {
			return
		}
		r.log.Info().Msg("room empty past grace period, shutting down")
		if r.lobby != nil {
			r.lobby.release(r.id, r)
		}
		r.stop()
	}
}

// --- Timer arming ---

func (r *Room) postTimerEvent(ev timerEvent) {
	select {
	case r.timerEvents <- ev:
	case <-r.quit:
	default:
	}
}

func (r *Room) armDrawingTimer(d time.Duration) {
	r.drawingTimerSeq++
	seq := r.drawingTimerSeq
	r.sched.Schedule(d, func() {
		r.postTimerEvent(timerEvent{kind: TIMER_DRAWING, seq: seq})
	})
}

func (r *Room) armGuessTimer() {
	r.guessTimerSeq++
	seq := r.guessTimerSeq
	r.sched.Schedule(GUESS_DURATION, func() {
		r.postTimerEvent(timerEvent{kind: TIMER_GUESS, seq: seq})
	})
}

func (r *Room) armEvictTimer() {
	r.evictSeq++
	seq := r.evictSeq
	r.sched.Schedule(r.evictGrace, func() {
		r.postTimerEvent(timerEvent{kind: TIMER_EVICT, seq: seq})
	})
}

// --- Broadcasting ---

// broadcast sends the applied snapshot to every connection. The guesser's
// own connection gets a copy with the word blanked while a round is active.
func (r *Room) broadcast() {
	plain, err := EncodeSyncState(r.state)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to encode snapshot")
		return
	}

	var redacted []byte
	if r.state.shouldHideWord() && r.state.CurrentGuesserId != nil {
		redacted, err = EncodeSyncState(r.state.redactedForGuesser())
		if err != nil {
			r.log.Error().Err(err).Msg("failed to encode redacted snapshot")
			return
		}
	}

	for id, p := range r.conns {
		if redacted != nil && r.state.isGuesser(id) {
			p.Send(redacted)
			continue
		}
		p.Send(plain)
	}
}

func (r *Room) sendSnapshotTo(p Player) {
	state := r.state
	if state.shouldHideWord() && state.isGuesser(p.Id()) {
		state = state.redactedForGuesser()
	}
	data, err := EncodeSyncState(state)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to encode snapshot")
		return
	}
	p.Send(data)
}
