package game

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
)

type tone struct {
	freq int
	d    time.Duration
}

type buzzer struct {
	tones []tone
}

func (b *buzzer) Tone(freq int, d time.Duration) {
	b.tones = append(b.tones, tone{freq, d})
}

func (b *buzzer) count(d time.Duration) int {
	n := 0
	for _, t := range b.tones {
		if t.d == d {
			n++
		}
	}
	return n
}

// screen records every text written on top of keeping the frame.
type screen struct {
	Frame
	texts []string
}

func (s *screen) WriteAt(col, row int, text string) {
	s.texts = append(s.texts, text)
	s.Frame.WriteAt(col, row, text)
}

type rig struct {
	t      *testing.T
	clock  *clockwork.FakeClock
	screen *screen
	buzzer *buzzer
	c      *Controller
}

// newRig builds a controller whose cue delay is always 1000ms+offset.
func newRig(t *testing.T, offset int) *rig {
	t.Helper()
	r := &rig{
		t:      t,
		clock:  clockwork.NewFakeClock(),
		screen: &screen{},
		buzzer: &buzzer{},
	}
	r.c = New(r.screen, r.buzzer, NewRoundTimer(r.clock, fixedSource(offset)))
	return r
}

func (r *rig) tick(in Levels) {
	r.c.Tick(in)
}

func (r *rig) idle(d time.Duration) {
	r.clock.Advance(d)
	r.c.Tick(Levels{})
}

func (r *rig) control() {
	r.tick(Levels{Control: true})
	r.tick(Levels{})
}

func (r *rig) player(slot int) {
	var in Levels
	in.Players[slot] = true
	r.tick(in)
	r.tick(Levels{})
}

func (r *rig) both() {
	r.tick(Levels{Players: [Players]bool{true, true}})
	r.tick(Levels{})
}

func (r *rig) wantState(want State) {
	r.t.Helper()
	if got := r.c.State(); got != want {
		r.t.Fatalf("State() = %v, want %v", got, want)
	}
}

func (r *rig) wantFrame(want ...string) {
	r.t.Helper()
	if diff := cmp.Diff(want, lines(&r.screen.Frame)); diff != "" {
		r.t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
}

// join runs player selection through the join animation and the first
// round banner, leaving the controller in an active round.
func (r *rig) join() {
	r.t.Helper()
	r.control()
	r.wantState(StatePlayerSelection)
	r.player(0)
	r.player(1)
	r.idle(4500 * time.Millisecond)
	r.wantState(StateRoundSetup)
	r.idle(RoundBannerHold)
	r.wantState(StateRoundActive)
}

// win plays one round in the active state that the given slot wins after
// the cue, and waits until the next round is active.
func (r *rig) win(slot int, cue time.Duration) {
	r.t.Helper()
	r.idle(cue)
	r.player(slot)
	r.wantState(StateRoundResult)
	r.idle(ResultHold)
	r.idle(RoundBannerHold)
	r.wantState(StateRoundActive)
}

func TestNewDrawsStartPrompt(t *testing.T) {
	r := newRig(t, 500)

	r.wantState(StateStart)
	r.wantFrame(
		"  BOTAO CENTRAL ",
		"  PARA COMECAR  ",
	)
	if got := r.c.Snapshot(); got != (Snapshot{State: StateStart}) {
		t.Errorf("Snapshot() = %+v, want zero values in start state", got)
	}
}

func TestStartNeedsControlEdge(t *testing.T) {
	r := newRig(t, 500)

	r.player(0)
	r.player(1)
	r.idle(10 * time.Second)
	r.wantState(StateStart)
	if len(r.buzzer.tones) != 0 {
		t.Errorf("tones = %v, want none before the game starts", r.buzzer.tones)
	}

	r.tick(Levels{Control: true})
	r.wantState(StatePlayerSelection)
	// A held control button must not fall through to game over.
	r.tick(Levels{Control: true})
	r.tick(Levels{Control: true})
	r.wantState(StatePlayerSelection)
}

func TestPlayerSelection(t *testing.T) {
	r := newRig(t, 500)
	r.control()
	r.wantFrame(
		"J1 ESPERANDO... ",
		"J2 ESPERANDO... ",
	)

	r.player(1)
	r.wantFrame(
		"J1 ESPERANDO... ",
		"J2 ENTROU       ",
	)
	r.player(1)
	r.player(1)
	if got := r.buzzer.count(JoinToneTime); got != 1 {
		t.Errorf("join tones = %d, want 1 for repeated presses of one player", got)
	}
	if got := r.c.Snapshot().Joined; got != [Players]bool{false, true} {
		t.Errorf("Joined = %v, want [false true]", got)
	}

	r.player(0)
	if got := r.buzzer.count(JoinToneTime); got != 2 {
		t.Errorf("join tones = %d, want 2", got)
	}
	want := tone{ToneFrequency, JoinToneTime}
	if got := r.buzzer.tones[0]; got != want {
		t.Errorf("join tone = %+v, want %+v", got, want)
	}
	r.wantState(StatePlayerSelection)
	if !r.c.Snapshot().Holding {
		t.Error("Holding = false, want the join animation to be playing")
	}
}

func TestJoinAnimation(t *testing.T) {
	r := newRig(t, 500)
	r.control()
	r.player(0)
	r.player(1)

	blank := []string{"                ", "                "}
	joined := []string{"J1 ENTROU       ", "J2 ENTROU       "}

	r.wantFrame(blank...)
	for i := 0; i < BlinkCycles; i++ {
		r.idle(BlinkInterval)
		r.wantFrame(joined...)
		r.idle(BlinkInterval)
		if i < BlinkCycles-1 {
			r.wantFrame(blank...)
		}
	}

	// Inputs are ignored while the animation plays.
	r.tick(Levels{Control: true, Players: [Players]bool{true, true}})
	r.wantState(StatePlayerSelection)

	r.idle(JoinPause - time.Millisecond)
	r.wantState(StatePlayerSelection)
	r.idle(time.Millisecond)
	r.wantState(StateRoundSetup)
	r.wantFrame(
		"    RODADA 1    ",
		"                ",
	)
}

func TestRoundSetupHoldsBanner(t *testing.T) {
	r := newRig(t, 500)
	r.control()
	r.player(0)
	r.player(1)
	r.idle(4500 * time.Millisecond)
	r.wantState(StateRoundSetup)

	r.idle(RoundBannerHold - time.Millisecond)
	r.wantState(StateRoundSetup)
	r.idle(time.Millisecond)
	r.wantState(StateRoundActive)
	r.wantFrame(
		"J1 - 0          ",
		"          0 - J2",
	)
	if got := r.c.Snapshot().Round; got != 1 {
		t.Errorf("Round = %d, want 1", got)
	}
}

func TestCueFiresOnce(t *testing.T) {
	r := newRig(t, 500)
	r.join()

	r.idle(1499 * time.Millisecond)
	if r.c.Snapshot().CueFired {
		t.Fatal("cue fired before its delay")
	}
	if got := r.buzzer.count(CueToneTime); got != 0 {
		t.Fatalf("cue tones = %d, want 0", got)
	}

	r.idle(time.Millisecond)
	if !r.c.Snapshot().CueFired {
		t.Fatal("cue did not fire at its delay")
	}
	for i := 0; i < 10; i++ {
		r.idle(100 * time.Millisecond)
	}
	if got := r.buzzer.count(CueToneTime); got != 1 {
		t.Errorf("cue tones = %d, want 1", got)
	}
	want := tone{ToneFrequency, CueToneTime}
	if got := r.buzzer.tones[len(r.buzzer.tones)-1]; got != want {
		t.Errorf("cue tone = %+v, want %+v", got, want)
	}
}

func TestRoundOutcome(t *testing.T) {
	tests := []struct {
		name   string
		wait   time.Duration
		press  [Players]bool
		want   Outcome
		scores [Players]uint32
		frame  []string
	}{
		{
			name:   "player one after cue",
			wait:   1600 * time.Millisecond,
			press:  [Players]bool{true, false},
			want:   OutcomePlayer1,
			scores: [Players]uint32{1, 0},
			frame:  []string{"   JOGADOR 1    ", "     VENCEU     "},
		},
		{
			name:   "player two after cue",
			wait:   1500 * time.Millisecond,
			press:  [Players]bool{false, true},
			want:   OutcomePlayer2,
			scores: [Players]uint32{0, 1},
			frame:  []string{"   JOGADOR 2    ", "     VENCEU     "},
		},
		{
			name:   "player two jumps the cue",
			wait:   500 * time.Millisecond,
			press:  [Players]bool{false, true},
			want:   OutcomePlayer1,
			scores: [Players]uint32{1, 0},
			frame:  []string{"   JOGADOR 1    ", "     VENCEU     "},
		},
		{
			name:   "player one jumps the cue",
			wait:   0,
			press:  [Players]bool{true, false},
			want:   OutcomePlayer2,
			scores: [Players]uint32{0, 1},
			frame:  []string{"   JOGADOR 2    ", "     VENCEU     "},
		},
		{
			name:   "same tick after cue",
			wait:   1700 * time.Millisecond,
			press:  [Players]bool{true, true},
			want:   OutcomeTie,
			scores: [Players]uint32{0, 0},
			frame:  []string{"     EMPATE     ", "                "},
		},
		{
			name:   "same tick before cue",
			wait:   200 * time.Millisecond,
			press:  [Players]bool{true, true},
			want:   OutcomeTie,
			scores: [Players]uint32{0, 0},
			frame:  []string{"     EMPATE     ", "                "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, 500)
			r.join()

			r.clock.Advance(tt.wait)
			r.tick(Levels{Players: tt.press})

			r.wantState(StateRoundResult)
			snap := r.c.Snapshot()
			if snap.Outcome != tt.want {
				t.Errorf("Outcome = %v, want %v", snap.Outcome, tt.want)
			}
			if snap.Scores != tt.scores {
				t.Errorf("Scores = %v, want %v", snap.Scores, tt.scores)
			}
			r.wantFrame(tt.frame...)
		})
	}
}

func TestPressesInDifferentTicksAreOrdered(t *testing.T) {
	r := newRig(t, 500)
	r.join()
	r.clock.Advance(1600 * time.Millisecond)

	r.tick(Levels{Players: [Players]bool{false, true}})
	r.tick(Levels{Players: [Players]bool{true, true}})

	if got := r.c.Snapshot().Outcome; got != OutcomePlayer2 {
		t.Errorf("Outcome = %v, want %v", got, OutcomePlayer2)
	}
}

func TestWinThenNextRound(t *testing.T) {
	r := newRig(t, 500)
	r.join()

	r.clock.Advance(1500 * time.Millisecond)
	r.tick(Levels{})
	r.clock.Advance(100 * time.Millisecond)
	r.tick(Levels{Players: [Players]bool{true, false}})

	if got := r.c.Snapshot().Scores; got != [Players]uint32{1, 0} {
		t.Fatalf("Scores = %v, want [1 0]", got)
	}

	r.idle(ResultHold - time.Millisecond)
	r.wantState(StateRoundResult)
	r.idle(time.Millisecond)
	r.wantState(StateRoundSetup)
	r.wantFrame(
		"    RODADA 2    ",
		"                ",
	)

	r.idle(RoundBannerHold)
	r.wantState(StateRoundActive)
	snap := r.c.Snapshot()
	if snap.Round != 2 || snap.CueFired || snap.Outcome != OutcomeNone {
		t.Errorf("Snapshot() = %+v, want a fresh round 2", snap)
	}
	r.wantFrame(
		"J1 - 1          ",
		"          0 - J2",
	)
}

func TestHeldButtonRefiresAfterRoundSetup(t *testing.T) {
	r := newRig(t, 500)
	r.join()
	held := Levels{Players: [Players]bool{true, false}}

	r.clock.Advance(1600 * time.Millisecond)
	r.tick(held)
	r.clock.Advance(ResultHold)
	r.tick(held)
	r.clock.Advance(RoundBannerHold)
	r.tick(held)

	// The latch is cleared on round setup, so a button held through it
	// presses again before the cue.
	r.wantState(StateRoundResult)
	if got := r.c.Snapshot().Scores; got != [Players]uint32{1, 1} {
		t.Errorf("Scores = %v, want [1 1]", got)
	}
}

func TestGameOverTie(t *testing.T) {
	r := newRig(t, 500)
	r.join()
	r.win(0, 1500*time.Millisecond)
	r.win(1, 1500*time.Millisecond)
	r.win(1, 1500*time.Millisecond)
	r.win(0, 1500*time.Millisecond)

	if got := r.c.Snapshot().Scores; got != [Players]uint32{2, 2} {
		t.Fatalf("Scores = %v, want [2 2]", got)
	}

	r.tick(Levels{Control: true})
	r.wantState(StateGameOver)
	r.wantFrame(
		"     EMPATE     ",
		"                ",
	)

	r.idle(ResultHold - time.Millisecond)
	r.wantState(StateGameOver)
	r.idle(time.Millisecond)
	r.wantState(StateStart)
	r.wantFrame(
		"  BOTAO CENTRAL ",
		"  PARA COMECAR  ",
	)
	if got := r.c.Snapshot(); got != (Snapshot{State: StateStart}) {
		t.Errorf("Snapshot() = %+v, want a reset session", got)
	}
}

func TestGameOverWinner(t *testing.T) {
	r := newRig(t, 0)
	r.join()
	r.win(1, time.Second)
	r.win(0, time.Second)
	r.win(1, time.Second)

	r.tick(Levels{Control: true})
	r.wantState(StateGameOver)
	r.wantFrame(
		"   JOGADOR 2    ",
		"     VENCEU     ",
	)
	r.idle(ResultHold)
	r.wantState(StateStart)
}

func TestGameOverWithoutScoreIsSilent(t *testing.T) {
	r := newRig(t, 500)
	r.join()
	r.screen.texts = nil

	r.tick(Levels{Control: true})

	r.wantState(StateStart)
	if r.c.Snapshot().Holding {
		t.Error("Holding = true, want a direct reset")
	}
	want := []string{"BOTAO CENTRAL", "PARA COMECAR"}
	if diff := cmp.Diff(want, r.screen.texts); diff != "" {
		t.Errorf("written texts mismatch (-want +got):\n%s", diff)
	}
}

func TestControlDuringSelectionEndsGame(t *testing.T) {
	r := newRig(t, 500)
	r.control()
	r.player(0)

	r.control()
	r.wantState(StateStart)
	if got := r.c.Snapshot().Joined; got != [Players]bool{} {
		t.Errorf("Joined = %v, want reset slots", got)
	}

	r.control()
	r.wantState(StatePlayerSelection)
	r.wantFrame(
		"J1 ESPERANDO... ",
		"J2 ESPERANDO... ",
	)
}

func TestControlIgnoredWhileHolding(t *testing.T) {
	r := newRig(t, 500)
	r.join()
	r.win(0, 1500*time.Millisecond)

	r.idle(1500 * time.Millisecond)
	r.player(1)
	r.wantState(StateRoundResult)

	r.tick(Levels{Control: true})
	r.wantState(StateRoundResult)
	r.clock.Advance(ResultHold)
	r.tick(Levels{Control: true})
	r.wantState(StateRoundSetup)
}

// TestRandomPlay drives the controller with random inputs and checks the
// session invariants after every tick.
func TestRandomPlay(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	clock := clockwork.NewFakeClock()
	c := New(&Frame{}, &buzzer{}, NewRoundTimer(clock, rng))

	var prev Snapshot
	starts := 0
	for i := 0; i < 20000; i++ {
		clock.Advance(time.Duration(rng.IntN(120)) * time.Millisecond)
		c.Tick(Levels{
			Control: rng.IntN(200) == 0,
			Players: [Players]bool{rng.IntN(4) == 0, rng.IntN(4) == 0},
		})
		snap := c.Snapshot()

		if snap.State == StateStart && prev.State != StateStart {
			starts++
			if snap.Scores != [Players]uint32{} || snap.Round != 0 {
				t.Fatalf("tick %d: start entered with %+v, want reset data", i, snap)
			}
			prev = snap
			continue
		}
		for p := range snap.Scores {
			if snap.Scores[p] < prev.Scores[p] {
				t.Fatalf("tick %d: score %d went from %d to %d", i, p, prev.Scores[p], snap.Scores[p])
			}
			if snap.Scores[p] > prev.Scores[p]+1 {
				t.Fatalf("tick %d: score %d jumped from %d to %d", i, p, prev.Scores[p], snap.Scores[p])
			}
		}
		if snap.Scores != prev.Scores && snap.State != StateRoundResult {
			t.Fatalf("tick %d: score changed in state %v", i, snap.State)
		}
		if snap.Round < prev.Round {
			t.Fatalf("tick %d: round went from %d to %d", i, prev.Round, snap.Round)
		}
		prev = snap
	}

	if starts == 0 {
		t.Error("no game ended during random play")
	}
}
