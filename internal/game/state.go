package game

import (
	"math/rand"
	"sort"
	"time"

	"github.com/Charles-Go/croki/internal/words"
)

// --- Game Phases ---
// One room moves through these in order; round_end loops back to drawing
// until the configured number of rounds is played.
type Phase string

const (
	PHASE_WAITING   Phase = "waiting"   // Lobby, host configures, players ready up.
	PHASE_DRAWING   Phase = "drawing"   // Every non-guesser draws the word.
	PHASE_REVEALING Phase = "revealing" // Guesser reviews drawings one by one.
	PHASE_ROUND_END Phase = "round_end" // Scores shown, host advances.
	PHASE_GAME_OVER Phase = "game_over" // Terminal, final standings.
)

type Difficulty string

const (
	DIFFICULTY_FACILE    Difficulty = "facile"
	DIFFICULTY_MOYEN     Difficulty = "moyen"
	DIFFICULTY_DIFFICILE Difficulty = "difficile"
	DIFFICULTY_MIXTE     Difficulty = "mixte"
)

// --- Game Constants ---
const MAX_NAME_LENGTH = 20                     // Display names are truncated to this.
const MIN_PLAYERS_TO_START = 3                 // A game needs a guesser and two drawers.
const MAX_TOTAL_ROUNDS = 30                    // Upper bound accepted from set_total_rounds.
const DEFAULT_TIMER_DURATION = 90              // Drawing timer default, seconds.
const GUESS_DURATION = time.Second * 30        // Guesser gets this per revealed drawing.

// PlayerState is the serializable view of one player inside the snapshot.
// Field names are part of the wire contract with the web client.
type PlayerState struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Score        int    `json:"score"`
	IsHost       bool   `json:"isHost"`
	IsReady      bool   `json:"isReady"`
	ObjectCount  *int   `json:"objectCount,omitempty"`
	HasSubmitted bool   `json:"hasSubmitted"`
}

// DrawingSubmission lives for one round only. The image payload is opaque
// to the server and relayed as-is.
type DrawingSubmission struct {
	PlayerId    string `json:"playerId"`
	PlayerName  string `json:"playerName"`
	ObjectCount int    `json:"objectCount"`
	Revealed    bool   `json:"revealed"`
	ImageData   string `json:"imageData,omitempty"`
}

// GameState is the single source of truth for a room, broadcast in full
// after every applied mutation.
type GameState struct {
	Phase               Phase                `json:"phase"`
	Players             []*PlayerState       `json:"players"`
	CurrentGuesserId    *string              `json:"currentGuesserId"`
	CurrentWord         *string              `json:"currentWord"`
	CurrentWordCategory *string              `json:"currentWordCategory"`
	TimerDuration       int                  `json:"timerDuration"`
	TimerEndTime        *int64               `json:"timerEndTime"`
	GuessTimerEndTime   *int64               `json:"guessTimerEndTime"`
	ShowHint            bool                 `json:"showHint"`
	Difficulty          Difficulty           `json:"difficulty"`
	Submissions         []*DrawingSubmission `json:"submissions"`
	RevealIndex         int                  `json:"revealIndex"`
	RoundNumber         int                  `json:"roundNumber"`
	TotalRounds         int                  `json:"totalRounds"`
	CorrectGuess        bool                 `json:"correctGuess"`
	GuessHistory        []string             `json:"guessHistory"`
}

func NewGameState() *GameState {
	return &GameState{
		Phase:         PHASE_WAITING,
		Players:       []*PlayerState{},
		TimerDuration: DEFAULT_TIMER_DURATION,
		ShowHint:      true,
		Difficulty:    DIFFICULTY_MIXTE,
		Submissions:   []*DrawingSubmission{},
		GuessHistory:  []string{},
	}
}

func (gs *GameState) findPlayer(id string) *PlayerState {
	for _, p := range gs.Players {
		if p.Id == id {
			return p
		}
	}
	return nil
}

func (gs *GameState) playerIndex(id string) int {
	for i, p := range gs.Players {
		if p.Id == id {
			return i
		}
	}
	return -1
}

func (gs *GameState) isGuesser(id string) bool {
	return gs.CurrentGuesserId != nil && *gs.CurrentGuesserId == id
}

// drawers are all players except the current guesser.
func (gs *GameState) drawers() []*PlayerState {
	out := make([]*PlayerState, 0, len(gs.Players))
	for _, p := range gs.Players {
		if !gs.isGuesser(p.Id) {
			out = append(out, p)
		}
	}
	return out
}

func (gs *GameState) allDrawersSubmitted() bool {
	for _, p := range gs.drawers() {
		if !p.HasSubmitted {
			return false
		}
	}
	return true
}

// sortSubmissions orders by declared object count, ascending. Stable so that
// ties keep submission arrival order.
func (gs *GameState) sortSubmissions() {
	sort.SliceStable(gs.Submissions, func(i, j int) bool {
		return gs.Submissions[i].ObjectCount < gs.Submissions[j].ObjectCount
	})
}

// pickRandomGuesser selects the first guesser of a game.
func (gs *GameState) pickRandomGuesser() {
	if len(gs.Players) == 0 {
		return
	}
	id := gs.Players[rand.Intn(len(gs.Players))].Id
	gs.CurrentGuesserId = &id
}

// nextGuesser rotates the guesser role: the player right after the current
// guesser in join order, wrapping. If the current guesser is gone the role
// falls to the first player.
func (gs *GameState) nextGuesser() {
	if len(gs.Players) == 0 {
		gs.CurrentGuesserId = nil
		return
	}
	index := -1
	if gs.CurrentGuesserId != nil {
		index = gs.playerIndex(*gs.CurrentGuesserId)
	}
	id := gs.Players[(index+1)%len(gs.Players)].Id
	gs.CurrentGuesserId = &id
}

// wordFilter maps the configured difficulty to a word bank filter;
// "mixte" draws from the whole bank.
func (gs *GameState) wordFilter() words.Difficulty {
	if gs.Difficulty == DIFFICULTY_MIXTE {
		return ""
	}
	return words.Difficulty(gs.Difficulty)
}

// redactedForGuesser returns a shallow copy of the snapshot with the word
// hidden. Only used while the guesser must not see it; the nested slices are
// shared and treated as read-only by the encoder.
func (gs *GameState) redactedForGuesser() *GameState {
	clone := *gs
	clone.CurrentWord = nil
	return &clone
}

// shouldHideWord reports whether the snapshot sent to the guesser's own
// connection must have the word blanked out.
func (gs *GameState) shouldHideWord() bool {
	return gs.Phase == PHASE_DRAWING || gs.Phase == PHASE_REVEALING
}
