package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Plays one full round the way three browsers would: lobby, ready-up,
// start, submissions with different object counts, auto-reveal of the
// smallest, a correct guess, scoring, next round. Each step asserts on the
// snapshots the clients actually received.
func TestRoom_FullRoundScenario(t *testing.T) {
	r, _ := newTestRoom()

	alice := newRecordingPlayer("alice")
	bruno := newRecordingPlayer("bruno")
	chloe := newRecordingPlayer("chloe")
	conns := map[string]*recordingPlayer{"alice": alice, "bruno": bruno, "chloe": chloe}

	send := func(from string, msgType string, payload any) {
		r.handleEnvelope(commandEnvelope{from: from, raw: frame(t, msgType, payload)})
	}

	// Filled in once the guesser is known after the start step.
	var guesser, firstDrawer, secondDrawer string

	steps := []struct {
		desc   string
		action func()
		verify func(t *testing.T)
	}{
		{
			desc: "three players join, alice hosts",
			action: func() {
				for _, p := range []*recordingPlayer{alice, bruno, chloe} {
					r.handleAttach(p)
					send(p.id, MSG_JOIN, map[string]any{"playerName": p.id})
				}
			},
			verify: func(t *testing.T) {
				state := chloe.lastState(t)
				require.Len(t, state.Players, 3)
				assert.True(t, state.Players[0].IsHost)
				assert.Equal(t, "alice", state.Players[0].Id)
			},
		},
		{
			desc: "start refused while bruno and chloe are not ready",
			action: func() {
				send("alice", MSG_START_GAME, nil)
			},
			verify: func(t *testing.T) {
				assert.Equal(t, PHASE_WAITING, alice.lastState(t).Phase)
			},
		},
		{
			desc: "everyone readies up and the host starts",
			action: func() {
				send("bruno", MSG_READY, nil)
				send("chloe", MSG_READY, nil)
				send("alice", MSG_START_GAME, nil)
			},
			verify: func(t *testing.T) {
				require.Equal(t, PHASE_DRAWING, r.state.Phase)
				require.NotNil(t, r.state.CurrentGuesserId)
				guesser = *r.state.CurrentGuesserId

				drawers := r.state.drawers()
				require.Len(t, drawers, 2)
				firstDrawer = drawers[0].Id
				secondDrawer = drawers[1].Id

				// The guesser's snapshot has the word blanked, the
				// drawers see it.
				assert.Nil(t, conns[guesser].lastState(t).CurrentWord)
				require.NotNil(t, conns[firstDrawer].lastState(t).CurrentWord)
				assert.Equal(t, *r.state.CurrentWord, *conns[firstDrawer].lastState(t).CurrentWord)
			},
		},
		{
			desc: "both drawers submit, five objects then two",
			action: func() {
				send(firstDrawer, MSG_SUBMIT_DRAWING, map[string]any{"objectCount": 5, "imageData": "img-five"})
				send(secondDrawer, MSG_SUBMIT_DRAWING, map[string]any{"objectCount": 2, "imageData": "img-two"})
			},
			verify: func(t *testing.T) {
				state := conns[guesser].lastState(t)
				require.Equal(t, PHASE_REVEALING, state.Phase)
				require.Len(t, state.Submissions, 2)

				// Sorted ascending by object count, lowest auto-revealed.
				assert.Equal(t, secondDrawer, state.Submissions[0].PlayerId)
				assert.Equal(t, 2, state.Submissions[0].ObjectCount)
				assert.True(t, state.Submissions[0].Revealed)
				assert.False(t, state.Submissions[1].Revealed)
				assert.Equal(t, 1, state.RevealIndex)
				assert.NotNil(t, state.GuessTimerEndTime)
				assert.Nil(t, state.CurrentWord, "word still hidden from the guesser")
			},
		},
		{
			desc: "guesser names the word",
			action: func() {
				send(guesser, MSG_GUESS, map[string]any{"guess": *r.state.CurrentWord})
			},
			verify: func(t *testing.T) {
				state := alice.lastState(t)
				require.Equal(t, PHASE_ROUND_END, state.Phase)
				assert.True(t, state.CorrectGuess)
				require.Len(t, state.GuessHistory, 1)

				// +1 for the guesser, +2 for whoever drew the revealed
				// drawing (the two-object one).
				scores := map[string]int{}
				for _, p := range state.Players {
					scores[p.Id] = p.Score
				}
				assert.Equal(t, 1, scores[guesser])
				assert.Equal(t, 2, scores[secondDrawer])
				assert.Zero(t, scores[firstDrawer])

				// Round over: the word is visible to everyone again.
				require.NotNil(t, conns[guesser].lastState(t).CurrentWord)
			},
		},
		{
			desc: "host advances to round two",
			action: func() {
				send("alice", MSG_NEXT_ROUND, nil)
			},
			verify: func(t *testing.T) {
				state := bruno.lastState(t)
				require.Equal(t, PHASE_DRAWING, state.Phase)
				assert.Equal(t, 2, state.RoundNumber)

				// Round-robin: the player right after the previous guesser
				// in join order.
				next := r.state.Players[(r.state.playerIndex(guesser)+1)%3].Id
				assert.Equal(t, next, *state.CurrentGuesserId)

				// Per-round state wiped.
				assert.Empty(t, state.Submissions)
				assert.Empty(t, state.GuessHistory)
				assert.False(t, state.CorrectGuess)
				for _, p := range state.Players {
					assert.False(t, p.HasSubmitted)
					assert.Nil(t, p.ObjectCount)
				}
			},
		},
	}

	for _, step := range steps {
		t.Run(step.desc, func(t *testing.T) {
			step.action()
			step.verify(t)
		})
	}
}
