package game

import (
	"encoding/json"
	"errors"
	"strings"
)

// Wire envelope, both directions. Text frames carrying JSON.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

const (
	MSG_JOIN             = "join"
	MSG_CHANGE_NAME      = "change_name"
	MSG_READY            = "ready"
	MSG_START_GAME       = "start_game"
	MSG_SET_TIMER        = "set_timer"
	MSG_SET_TOTAL_ROUNDS = "set_total_rounds"
	MSG_SET_DIFFICULTY   = "set_difficulty"
	MSG_TOGGLE_HINT      = "toggle_hint"
	MSG_SUBMIT_DRAWING   = "submit_drawing"
	MSG_REVEAL_NEXT      = "reveal_next"
	MSG_GUESS            = "guess"
	MSG_NEXT_ROUND       = "next_round"
	MSG_SYNC_STATE       = "sync_state"
)

var (
	ErrUnknownCommand = errors.New("unknown command type")
	ErrBadPayload     = errors.New("malformed command payload")
)

// Command is the tagged union of everything a client may send. Payload shape
// and value ranges are checked here, at the boundary, so the room handlers
// only ever see well-formed commands.
type Command interface {
	commandType() string
}

type JoinCommand struct{ PlayerName string }
type ChangeNameCommand struct{ NewName string }
type ReadyCommand struct{}
type StartGameCommand struct{}
type SetTimerCommand struct{ Duration int }
type SetTotalRoundsCommand struct{ TotalRounds int }
type SetDifficultyCommand struct{ Difficulty Difficulty }
type ToggleHintCommand struct{}
type SubmitDrawingCommand struct {
	ObjectCount int
	ImageData   string
}
type RevealNextCommand struct{}
type GuessCommand struct{ Guess string }
type NextRoundCommand struct{}

func (JoinCommand) commandType() string           { return MSG_JOIN }
func (ChangeNameCommand) commandType() string     { return MSG_CHANGE_NAME }
func (ReadyCommand) commandType() string          { return MSG_READY }
func (StartGameCommand) commandType() string      { return MSG_START_GAME }
func (SetTimerCommand) commandType() string       { return MSG_SET_TIMER }
func (SetTotalRoundsCommand) commandType() string { return MSG_SET_TOTAL_ROUNDS }
func (SetDifficultyCommand) commandType() string  { return MSG_SET_DIFFICULTY }
func (ToggleHintCommand) commandType() string     { return MSG_TOGGLE_HINT }
func (SubmitDrawingCommand) commandType() string  { return MSG_SUBMIT_DRAWING }
func (RevealNextCommand) commandType() string     { return MSG_REVEAL_NEXT }
func (GuessCommand) commandType() string          { return MSG_GUESS }
func (NextRoundCommand) commandType() string      { return MSG_NEXT_ROUND }

// DecodeCommand parses one raw text frame into a validated command.
// Anything that fails here is dropped by the caller, never answered.
func DecodeCommand(raw []byte) (Command, error) {
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, ErrBadPayload
	}

	switch envelope.Type {
	case MSG_JOIN:
		var p struct {
			PlayerName *string `json:"playerName"`
		}
		if err := json.Unmarshal(envelope.Payload, &p); err != nil || p.PlayerName == nil {
			return nil, ErrBadPayload
		}
		name := strings.TrimSpace(*p.PlayerName)
		if name == "" {
			return nil, ErrBadPayload
		}
		return JoinCommand{PlayerName: truncateName(name)}, nil

	case MSG_CHANGE_NAME:
		var p struct {
			NewName *string `json:"newName"`
		}
		if err := json.Unmarshal(envelope.Payload, &p); err != nil || p.NewName == nil {
			return nil, ErrBadPayload
		}
		name := strings.TrimSpace(*p.NewName)
		if name == "" {
			return nil, ErrBadPayload
		}
		return ChangeNameCommand{NewName: truncateName(name)}, nil

	case MSG_READY:
		return ReadyCommand{}, nil

	case MSG_START_GAME:
		return StartGameCommand{}, nil

	case MSG_SET_TIMER:
		var p struct {
			Duration *int `json:"duration"`
		}
		if err := json.Unmarshal(envelope.Payload, &p); err != nil || p.Duration == nil {
			return nil, ErrBadPayload
		}
		switch *p.Duration {
		case 60, 90, 120:
			return SetTimerCommand{Duration: *p.Duration}, nil
		}
		return nil, ErrBadPayload

	case MSG_SET_TOTAL_ROUNDS:
		var p struct {
			TotalRounds *int `json:"totalRounds"`
		}
		if err := json.Unmarshal(envelope.Payload, &p); err != nil || p.TotalRounds == nil {
			return nil, ErrBadPayload
		}
		if *p.TotalRounds <= 0 || *p.TotalRounds > MAX_TOTAL_ROUNDS {
			return nil, ErrBadPayload
		}
		return SetTotalRoundsCommand{TotalRounds: *p.TotalRounds}, nil

	case MSG_SET_DIFFICULTY:
		var p struct {
			Difficulty *Difficulty `json:"difficulty"`
		}
		if err := json.Unmarshal(envelope.Payload, &p); err != nil || p.Difficulty == nil {
			return nil, ErrBadPayload
		}
		switch *p.Difficulty {
		case DIFFICULTY_FACILE, DIFFICULTY_MOYEN, DIFFICULTY_DIFFICILE, DIFFICULTY_MIXTE:
			return SetDifficultyCommand{Difficulty: *p.Difficulty}, nil
		}
		return nil, ErrBadPayload

	case MSG_TOGGLE_HINT:
		return ToggleHintCommand{}, nil

	case MSG_SUBMIT_DRAWING:
		var p struct {
			ObjectCount *int   `json:"objectCount"`
			ImageData   string `json:"imageData"`
		}
		if err := json.Unmarshal(envelope.Payload, &p); err != nil || p.ObjectCount == nil {
			return nil, ErrBadPayload
		}
		if *p.ObjectCount < 1 {
			return nil, ErrBadPayload
		}
		return SubmitDrawingCommand{ObjectCount: *p.ObjectCount, ImageData: p.ImageData}, nil

	case MSG_REVEAL_NEXT:
		return RevealNextCommand{}, nil

	case MSG_GUESS:
		var p struct {
			Guess *string `json:"guess"`
		}
		if err := json.Unmarshal(envelope.Payload, &p); err != nil || p.Guess == nil {
			return nil, ErrBadPayload
		}
		return GuessCommand{Guess: *p.Guess}, nil

	case MSG_NEXT_ROUND:
		return NextRoundCommand{}, nil
	}

	return nil, ErrUnknownCommand
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > MAX_NAME_LENGTH {
		return string(runes[:MAX_NAME_LENGTH])
	}
	return name
}

// EncodeSyncState wraps a snapshot in the outbound envelope. sync_state is
// the only message the server ever sends.
func EncodeSyncState(state *GameState) ([]byte, error) {
	return json.Marshal(struct {
		Type    string     `json:"type"`
		Payload *GameState `json:"payload"`
	}{Type: MSG_SYNC_STATE, Payload: state})
}
