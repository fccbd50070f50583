package game

import (
	"time"

	"github.com/rs/zerolog"
)

// Controller owns the whole game: player slots, the current round, the
// input edge detectors and the state machine. It is driven by calling Tick
// once per polling iteration from a single goroutine.
type Controller struct {
	display Display
	buzzer  Buzzer
	timer   *RoundTimer
	log     zerolog.Logger

	state   State
	slots   [Players]PlayerSlot
	round   RoundContext
	control Edge
	players [Players]Edge

	hold     hold
	queue    []State
	entering bool
}

// New creates a controller and enters the start state, drawing the idle
// prompt on the display.
func New(display Display, buzzer Buzzer, timer *RoundTimer) *Controller {
	c := &Controller{
		display: display,
		buzzer:  buzzer,
		timer:   timer,
		log:     zerolog.Nop(),
	}
	c.transition(StateStart)
	return c
}

// SetLogger replaces the controller's logger.
func (c *Controller) SetLogger(l zerolog.Logger) {
	c.log = l
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Snapshot returns a copy of the game data for display and inspection.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		State:    c.state,
		Round:    c.round.Number,
		CueFired: c.round.CueFired,
		Outcome:  c.round.Outcome,
		Holding:  c.hold.active(),
	}
	for i, slot := range c.slots {
		s.Scores[i] = slot.Score
		s.Joined[i] = slot.Joined
	}
	return s
}

// Tick runs one polling iteration with the given input sample.
//
// Order within a tick is fixed: pending presentation steps, control edge,
// player edges, then the cue and the round outcome. Both player edges are
// captured before the outcome is evaluated, which is what makes a
// same-tick press a tie.
func (c *Controller) Tick(in Levels) {
	if c.hold.drain(c.timer.Now()) {
		return
	}

	if c.control.Update(in.Control) {
		c.onControl()
		if c.hold.active() {
			return
		}
	}

	for i := range c.slots {
		c.slots[i].Pressed = c.players[i].Update(in.Players[i])
	}

	switch c.state {
	case StatePlayerSelection:
		c.updateSelection()
	case StateRoundActive:
		c.updateCue()
		c.updatePlay()
	}
}

func (c *Controller) onControl() {
	if c.state == StateStart {
		c.transition(StatePlayerSelection)
		return
	}
	c.transition(StateGameOver)
}

func (c *Controller) updateSelection() {
	joined := false
	for i := range c.slots {
		slot := &c.slots[i]
		if !slot.Pressed || slot.Joined {
			continue
		}
		slot.Joined = true
		joined = true
		c.buzzer.Tone(ToneFrequency, JoinToneTime)
		c.log.Debug().Int("player", i+1).Msg("player joined")
	}
	if !joined {
		return
	}

	c.presentSelection()
	if c.slots[0].Joined && c.slots[1].Joined {
		c.playJoinAnimation()
	}
}

// playJoinAnimation blinks the selection screen and then starts the first
// round.
func (c *Controller) playJoinAnimation() {
	c.display.Clear()
	for i := 0; i < BlinkCycles; i++ {
		if i > 0 {
			c.after(BlinkInterval, c.display.Clear)
		}
		c.after(BlinkInterval, c.presentSelection)
	}
	c.after(BlinkInterval+JoinPause, func() {
		c.transition(StateRoundSetup)
	})
}

func (c *Controller) updateCue() {
	if c.round.CueFired {
		return
	}
	if c.timer.Since(c.round.StartedAt) < c.round.CueDelay {
		return
	}
	c.round.CueFired = true
	c.buzzer.Tone(ToneFrequency, CueToneTime)
	c.log.Debug().Uint32("round", c.round.Number).Dur("delay", c.round.CueDelay).Msg("cue fired")
}

func (c *Controller) updatePlay() {
	first, second := c.slots[0].Pressed, c.slots[1].Pressed
	if !first && !second {
		return
	}

	switch {
	case first && second:
		c.round.Outcome = OutcomeTie
	default:
		presser := 0
		if second {
			presser = 1
		}
		if c.round.CueFired {
			c.round.Outcome = outcomeFor(presser)
		} else {
			// Jumped the cue: the round goes to the opponent.
			c.round.Outcome = outcomeFor(1 - presser)
		}
	}
	c.transition(StateRoundResult)
}

// transition queues a state change and, unless already inside one, applies
// queued entries until the queue is empty. Entry actions that chain into
// another state queue it instead of recursing.
func (c *Controller) transition(to State) {
	c.queue = append(c.queue, to)
	if c.entering {
		return
	}

	c.entering = true
	for len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		c.log.Debug().Stringer("from", c.state).Stringer("to", next).Msg("state transition")
		c.state = next
		c.enter(next)
	}
	c.entering = false
}

func (c *Controller) enter(s State) {
	switch s {
	case StateStart:
		c.reset()
		PresentStart(c.display)

	case StatePlayerSelection:
		c.presentSelection()

	case StateRoundSetup:
		for i := range c.players {
			c.players[i].Clear()
			c.slots[i].Pressed = false
		}
		c.round.Number++
		c.round.Outcome = OutcomeNone
		c.round.CueFired = false
		PresentRound(c.display, c.round.Number)
		c.after(RoundBannerHold, func() {
			c.round.CueDelay = c.timer.DrawDelay()
			c.round.StartedAt = c.timer.Now()
			c.round.CueFired = false
			c.transition(StateRoundActive)
		})

	case StateRoundActive:
		c.round.StartedAt = c.timer.Now()
		PresentScoreboard(c.display, c.scores())

	case StateRoundResult:
		if w := c.round.Outcome.Winner(); w >= 0 {
			c.slots[w].Score++
		}
		c.log.Info().
			Uint32("round", c.round.Number).
			Stringer("outcome", c.round.Outcome).
			Uint32("score_1", c.slots[0].Score).
			Uint32("score_2", c.slots[1].Score).
			Msg("round finished")
		PresentOutcome(c.display, c.round.Outcome)
		c.after(ResultHold, func() {
			c.round.Outcome = OutcomeNone
			c.transition(StateRoundSetup)
		})

	case StateGameOver:
		c.hold.reset()
		final := c.finalOutcome()
		if final == OutcomeNone {
			c.transition(StateStart)
			return
		}
		c.log.Info().Stringer("winner", final).Msg("game over")
		PresentOutcome(c.display, final)
		c.after(ResultHold, func() {
			c.transition(StateStart)
		})
	}
}

// finalOutcome ranks the session. OutcomeNone means nobody scored.
func (c *Controller) finalOutcome() Outcome {
	a, b := c.slots[0].Score, c.slots[1].Score
	switch {
	case a == 0 && b == 0:
		return OutcomeNone
	case a == b:
		return OutcomeTie
	case a > b:
		return OutcomePlayer1
	}
	return OutcomePlayer2
}

func (c *Controller) reset() {
	c.slots = [Players]PlayerSlot{}
	c.round = RoundContext{}
	for i := range c.players {
		c.players[i].Clear()
	}
	c.hold.reset()
}

func (c *Controller) presentSelection() {
	var joined [Players]bool
	for i, slot := range c.slots {
		joined[i] = slot.Joined
	}
	PresentSelection(c.display, joined)
}

func (c *Controller) scores() [Players]uint32 {
	return [Players]uint32{c.slots[0].Score, c.slots[1].Score}
}

func (c *Controller) after(wait time.Duration, run func()) {
	c.hold.after(c.timer.Now(), wait, run)
}
