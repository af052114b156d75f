package rules

import (
	"testing"
)

func TestPhaseManager_Cycle(t *testing.T) {
	pm := NewPhaseManager(0)
	if pm.Phase() != PhaseInit {
		t.Fatalf("Expected INIT, got %s", pm.Phase())
	}

	steps := []Phase{PhaseMulligan, PhaseStartTurn, PhaseMain, PhaseEndTurn, PhaseStartTurn, PhaseMain}
	for _, next := range steps {
		if err := pm.Advance(next); err != nil {
			t.Fatalf("failed to advance to %s: %v", next, err)
		}
	}
	if pm.TurnNumber() != 2 {
		t.Errorf("Expected turn 2 after two StartTurn entries, got %d", pm.TurnNumber())
	}
}

func TestPhaseManager_IllegalTransition(t *testing.T) {
	pm := NewPhaseManager(0)
	if err := pm.Advance(PhaseMain); err == nil {
		t.Error("Expected error for INIT -> MAIN")
	}
	if pm.Phase() != PhaseInit {
		t.Errorf("Expected phase unchanged after rejected transition, got %s", pm.Phase())
	}
}

func TestPhaseManager_SwapActive(t *testing.T) {
	pm := NewPhaseManager(1)
	if pm.ActiveIndex() != 1 {
		t.Fatalf("Expected starting index 1, got %d", pm.ActiveIndex())
	}
	if got := pm.SwapActive(); got != 0 {
		t.Errorf("Expected swap to 0, got %d", got)
	}
	if got := pm.SwapActive(); got != 1 {
		t.Errorf("Expected swap back to 1, got %d", got)
	}
}

func TestPhaseManager_InvalidStartingIndex(t *testing.T) {
	pm := NewPhaseManager(7)
	if pm.ActiveIndex() != 0 {
		t.Errorf("Expected invalid starting index to fall back to 0, got %d", pm.ActiveIndex())
	}
}

func TestPhaseManager_EndGame(t *testing.T) {
	pm := NewPhaseManager(0)
	if err := pm.Advance(PhaseMulligan); err != nil {
		t.Fatalf("failed to advance: %v", err)
	}

	pm.EndGame()
	if !pm.Terminal() {
		t.Fatal("Expected terminal after EndGame")
	}
	if err := pm.Advance(PhaseStartTurn); err == nil {
		t.Error("Expected error advancing out of GAME_OVER")
	}
}
