package game

import (
	"time"

	"github.com/Charles-Go/croki/internal/match"
	"github.com/Charles-Go/croki/internal/words"
)

// Command handlers. Every guard failure is a silent no-op: the client gets
// no error reply, just no broadcast. That contract is shared with the web
// client, do not add error responses here.

func (r *Room) handleJoin(from string, cmd JoinCommand) {
	gs := r.state
	if gs.findPlayer(from) != nil {
		return // duplicate join for the same connection
	}

	player := &PlayerState{
		Id:     from,
		Name:   cmd.PlayerName,
		IsHost: len(gs.Players) == 0, // first joiner hosts
	}
	gs.Players = append(gs.Players, player)
	r.log.Info().Str("player", from).Str("name", player.Name).Bool("host", player.IsHost).Msg("player joined")
	r.broadcast()
}

func (r *Room) handleChangeName(from string, cmd ChangeNameCommand) {
	gs := r.state
	if gs.Phase != PHASE_WAITING {
		return
	}
	player := gs.findPlayer(from)
	if player == nil {
		return
	}
	player.Name = cmd.NewName
	r.broadcast()
}

func (r *Room) handleReady(from string) {
	player := r.state.findPlayer(from)
	if player == nil {
		return
	}
	player.IsReady = !player.IsReady
	r.broadcast()
}

func (r *Room) handleStartGame(from string) {
	gs := r.state
	player := gs.findPlayer(from)
	if player == nil || !player.IsHost {
		return
	}
	if gs.Phase != PHASE_WAITING {
		return
	}
	if len(gs.Players) < MIN_PLAYERS_TO_START {
		return
	}
	for _, p := range gs.Players {
		if !p.IsReady && !p.IsHost {
			return
		}
	}

	// Host never picked a round count: one round per player.
	if gs.TotalRounds == 0 {
		gs.TotalRounds = len(gs.Players)
	}
	gs.RoundNumber = 1
	r.usedWords = make(map[string]struct{})
	gs.pickRandomGuesser()

	r.log.Info().Int("players", len(gs.Players)).Int("totalRounds", gs.TotalRounds).Msg("game started")
	r.startDrawingPhase()
}

func (r *Room) handleSetTimer(from string, cmd SetTimerCommand) {
	gs := r.state
	player := gs.findPlayer(from)
	if player == nil || !player.IsHost || gs.Phase != PHASE_WAITING {
		return
	}
	gs.TimerDuration = cmd.Duration
	r.broadcast()
}

func (r *Room) handleSetTotalRounds(from string, cmd SetTotalRoundsCommand) {
	gs := r.state
	player := gs.findPlayer(from)
	if player == nil || !player.IsHost || gs.Phase != PHASE_WAITING {
		return
	}
	gs.TotalRounds = cmd.TotalRounds
	r.broadcast()
}

func (r *Room) handleSetDifficulty(from string, cmd SetDifficultyCommand) {
	gs := r.state
	player := gs.findPlayer(from)
	if player == nil || !player.IsHost || gs.Phase != PHASE_WAITING {
		return
	}
	gs.Difficulty = cmd.Difficulty
	r.broadcast()
}

func (r *Room) handleToggleHint(from string) {
	gs := r.state
	player := gs.findPlayer(from)
	if player == nil || !player.IsHost || gs.Phase != PHASE_WAITING {
		return
	}
	gs.ShowHint = !gs.ShowHint
	r.broadcast()
}

func (r *Room) handleSubmitDrawing(from string, cmd SubmitDrawingCommand) {
	gs := r.state
	if gs.Phase != PHASE_DRAWING {
		return
	}
	if gs.isGuesser(from) {
		return
	}
	player := gs.findPlayer(from)
	if player == nil || player.HasSubmitted {
		return
	}

	player.HasSubmitted = true
	objectCount := cmd.ObjectCount
	player.ObjectCount = &objectCount

	gs.Submissions = append(gs.Submissions, &DrawingSubmission{
		PlayerId:    from,
		PlayerName:  player.Name,
		ObjectCount: cmd.ObjectCount,
		ImageData:   cmd.ImageData,
	})
	r.log.Info().Str("player", from).Int("objectCount", cmd.ObjectCount).Msg("drawing submitted")

	if gs.allDrawersSubmitted() {
		r.startRevealPhase()
	}
	r.broadcast()
}

func (r *Room) handleRevealNext(from string) {
	gs := r.state
	if gs.Phase != PHASE_REVEALING {
		return
	}
	if !gs.isGuesser(from) {
		return
	}
	if gs.RevealIndex >= len(gs.Submissions) {
		return
	}
	r.revealNext()
	r.broadcast()
}

func (r *Room) handleGuess(from string, cmd GuessCommand) {
	gs := r.state
	if gs.Phase != PHASE_REVEALING {
		return
	}
	if !gs.isGuesser(from) {
		return
	}
	if gs.CurrentWord == nil {
		return
	}

	gs.GuessHistory = append(gs.GuessHistory, cmd.Guess)

	if match.IsMatch(cmd.Guess, *gs.CurrentWord) {
		gs.CorrectGuess = true

		// 1 point to the guesser, 2 to whoever drew the revealed drawing.
		if guesser := gs.findPlayer(from); guesser != nil {
			guesser.Score++
		}
		lastRevealed := gs.RevealIndex - 1
		if lastRevealed >= 0 && lastRevealed < len(gs.Submissions) {
			if drawer := gs.findPlayer(gs.Submissions[lastRevealed].PlayerId); drawer != nil {
				drawer.Score += 2
			}
		}

		r.log.Info().Str("player", from).Str("guess", cmd.Guess).Msg("correct guess, round won")
		gs.Phase = PHASE_ROUND_END
	} else if gs.RevealIndex < len(gs.Submissions) {
		// Wrong guess burns the current drawing, show the next one.
		r.revealNext()
	} else {
		r.log.Info().Int("round", gs.RoundNumber).Msg("all drawings revealed without a correct guess")
		gs.Phase = PHASE_ROUND_END
	}

	r.broadcast()
}

func (r *Room) handleNextRound(from string) {
	gs := r.state
	player := gs.findPlayer(from)
	if player == nil || !player.IsHost {
		return
	}
	if gs.Phase != PHASE_ROUND_END {
		return
	}
	r.startNextRound()
}

// --- Phase transitions ---

// startDrawingPhase resets all per-round state, draws a fresh word and arms
// the drawing timer.
func (r *Room) startDrawingPhase() {
	gs := r.state
	gs.Phase = PHASE_DRAWING
	gs.Submissions = []*DrawingSubmission{}
	gs.RevealIndex = 0
	gs.CorrectGuess = false
	gs.GuessHistory = []string{}

	for _, p := range gs.Players {
		p.HasSubmitted = false
		p.ObjectCount = nil
	}

	if entry, ok := words.Draw(r.usedWords, gs.wordFilter()); ok {
		word := entry.Word
		category := entry.Category
		gs.CurrentWord = &word
		gs.CurrentWordCategory = &category
		r.usedWords[entry.Word] = struct{}{}
	} else {
		// Bank exhausted for this difficulty. The round plays without a
		// visible word rather than failing.
		gs.CurrentWord = nil
		gs.CurrentWordCategory = nil
		r.log.Warn().Str("difficulty", string(gs.Difficulty)).Msg("word bank exhausted")
	}

	duration := time.Duration(gs.TimerDuration) * time.Second
	endTime := r.sched.Now().Add(duration).UnixMilli()
	gs.TimerEndTime = &endTime
	r.armDrawingTimer(duration)

	r.broadcast()
}

// startRevealPhase sorts the submissions, auto-reveals the first one and
// opens the first guess window.
func (r *Room) startRevealPhase() {
	gs := r.state
	gs.Phase = PHASE_REVEALING
	gs.TimerEndTime = nil

	gs.sortSubmissions()
	if len(gs.Submissions) > 0 {
		gs.Submissions[0].Revealed = true
		gs.RevealIndex = 1
	}

	r.startGuessWindow()
	r.broadcast()
}

// revealNext flips the next submission and restarts the guess window.
// Callers must have checked RevealIndex < len(Submissions).
func (r *Room) revealNext() {
	gs := r.state
	gs.Submissions[gs.RevealIndex].Revealed = true
	gs.RevealIndex++
	r.startGuessWindow()
}

func (r *Room) startGuessWindow() {
	endTime := r.sched.Now().Add(GUESS_DURATION).UnixMilli()
	r.state.GuessTimerEndTime = &endTime
	r.armGuessTimer()
}

// startNextRound advances the round counter, ends the game past the last
// round, otherwise rotates the guesser and re-enters drawing.
func (r *Room) startNextRound() {
	gs := r.state
	gs.RoundNumber++

	if gs.RoundNumber > gs.TotalRounds {
		gs.Phase = PHASE_GAME_OVER
		r.log.Info().Msg("game over")
		r.broadcast()
		return
	}

	gs.nextGuesser()
	r.startDrawingPhase()
}
