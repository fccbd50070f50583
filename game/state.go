package game

import "time"

// State is the current phase of the game lifecycle.
type State int

const (
	StateStart State = iota
	StatePlayerSelection
	StateRoundSetup
	StateRoundActive
	StateRoundResult
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlayerSelection:
		return "player-selection"
	case StateRoundSetup:
		return "round-setup"
	case StateRoundActive:
		return "round-active"
	case StateRoundResult:
		return "round-result"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// Players is the number of player slots on the console.
const Players = 2

// Outcome is the result of a round or of a whole game.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayer1
	OutcomePlayer2
	OutcomeTie
)

// Winner returns the winning slot index, or -1 for a tie or no result.
func (o Outcome) Winner() int {
	switch o {
	case OutcomePlayer1:
		return 0
	case OutcomePlayer2:
		return 1
	}
	return -1
}

func (o Outcome) String() string {
	switch o {
	case OutcomePlayer1:
		return "player-1"
	case OutcomePlayer2:
		return "player-2"
	case OutcomeTie:
		return "tie"
	}
	return "none"
}

// outcomeFor maps a slot index to the outcome where that slot wins.
func outcomeFor(slot int) Outcome {
	if slot == 0 {
		return OutcomePlayer1
	}
	return OutcomePlayer2
}

// PlayerSlot holds one player's session data.
type PlayerSlot struct {
	Joined  bool   // Set during player selection, cleared at start
	Pressed bool   // Press edge seen this tick
	Score   uint32 // Rounds won this session
}

// RoundContext holds the data of the round being played.
type RoundContext struct {
	Number    uint32
	CueDelay  time.Duration
	StartedAt Millis
	CueFired  bool
	Outcome   Outcome
}

// Levels is one raw sample of the console inputs. true means held down.
type Levels struct {
	Control bool
	Players [Players]bool
}

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	State    State
	Round    uint32
	Scores   [Players]uint32
	Joined   [Players]bool
	CueFired bool
	Outcome  Outcome
	Holding  bool
}
