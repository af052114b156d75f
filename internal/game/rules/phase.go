package rules

import "fmt"

// Phase represents the phases of the match state machine.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseMulligan
	PhaseStartTurn
	PhaseMain
	PhaseEndTurn
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseInit:      "INIT",
	PhaseMulligan:  "MULLIGAN",
	PhaseStartTurn: "START_TURN",
	PhaseMain:      "MAIN",
	PhaseEndTurn:   "END_TURN",
	PhaseGameOver:  "GAME_OVER",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// legalTransitions is the fixed phase cycle. GameOver is reachable from any
// phase via EndGame, which bypasses this table.
var legalTransitions = map[Phase][]Phase{
	PhaseInit:      {PhaseMulligan},
	PhaseMulligan:  {PhaseStartTurn},
	PhaseStartTurn: {PhaseMain},
	PhaseMain:      {PhaseEndTurn},
	PhaseEndTurn:   {PhaseStartTurn},
	PhaseGameOver:  {},
}

// PhaseManager tracks the current phase, the turn counter, and which of the
// two players is active. One full StartTurn->Main->EndTurn cycle is a single
// player-turn; the turn counter advances on each StartTurn entry.
type PhaseManager struct {
	phase       Phase
	turnNumber  int
	activeIndex int
}

// NewPhaseManager creates a manager in the Init phase with the given starting
// player (0 or 1).
func NewPhaseManager(startingIndex int) *PhaseManager {
	if startingIndex != 0 && startingIndex != 1 {
		startingIndex = 0
	}
	return &PhaseManager{
		phase:       PhaseInit,
		turnNumber:  0,
		activeIndex: startingIndex,
	}
}

// Phase returns the phase currently in progress.
func (pm *PhaseManager) Phase() Phase {
	return pm.phase
}

// TurnNumber returns the number of player-turns started so far.
func (pm *PhaseManager) TurnNumber() int {
	return pm.turnNumber
}

// ActiveIndex returns the index (0 or 1) of the player whose turn it is.
func (pm *PhaseManager) ActiveIndex() int {
	return pm.activeIndex
}

// Advance moves to the next phase in the cycle. Entering StartTurn increments
// the turn counter. Returns an error for transitions outside the cycle,
// including any attempt to leave GameOver.
func (pm *PhaseManager) Advance(next Phase) error {
	for _, legal := range legalTransitions[pm.phase] {
		if legal == next {
			pm.phase = next
			if next == PhaseStartTurn {
				pm.turnNumber++
			}
			return nil
		}
	}
	return fmt.Errorf("illegal phase transition %s -> %s", pm.phase, next)
}

// SwapActive toggles the active player between the two valid indexes.
// Called by the match between EndTurn cleanup and StartTurn setup.
func (pm *PhaseManager) SwapActive() int {
	pm.activeIndex = 1 - pm.activeIndex
	return pm.activeIndex
}

// EndGame forces the terminal phase. Legal from any phase; once entered the
// manager rejects all further transitions.
func (pm *PhaseManager) EndGame() {
	pm.phase = PhaseGameOver
}

// Terminal reports whether the match has ended.
func (pm *PhaseManager) Terminal() bool {
	return pm.phase == PhaseGameOver
}
