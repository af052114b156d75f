package repository

import (
	"context"
	"testing"
	"time"

	"github.com/duelforge/duel-server-go/internal/game/rules"
)

// A nil archive is the "no database configured" mode and must accept every
// call without touching a pool.
func TestMatchArchive_NilSafe(t *testing.T) {
	var archive *MatchArchive

	summary := MatchSummary{
		MatchID:    "m1",
		Player1ID:  "p1",
		Player2ID:  "p2",
		WinnerID:   "p1",
		WinReason:  "opponent defeated",
		Turns:      12,
		FinishedAt: time.Now(),
	}
	if err := archive.SaveMatch(context.Background(), summary); err != nil {
		t.Errorf("Expected nil archive to accept SaveMatch, got %v", err)
	}

	events := []rules.Event{rules.NewEvent(rules.EventGameEnded, "p1", nil)}
	if err := archive.SaveEvents(context.Background(), "m1", events); err != nil {
		t.Errorf("Expected nil archive to accept SaveEvents, got %v", err)
	}
}
