package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/duelforge/duel-server-go/internal/game/rules"
)

// MatchSummary is the archived record of a finished match.
type MatchSummary struct {
	MatchID    string
	Player1ID  string
	Player2ID  string
	WinnerID   string
	WinReason  string
	Turns      int
	FinishedAt time.Time
}

// MatchArchive stores finished matches and their event logs. All methods are
// nil-safe: a nil archive (no database configured) silently does nothing, so
// callers never branch on whether archiving is enabled.
type MatchArchive struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewMatchArchive creates an archive backed by the given pool.
func NewMatchArchive(pool *pgxpool.Pool, logger *zap.Logger) *MatchArchive {
	return &MatchArchive{pool: pool, logger: logger}
}

// SaveMatch records a finished match summary.
func (a *MatchArchive) SaveMatch(ctx context.Context, summary MatchSummary) error {
	if a == nil || a.pool == nil {
		return nil
	}
	_, err := a.pool.Exec(ctx, `
		INSERT INTO match_archive (match_id, player1_id, player2_id, winner_id, win_reason, turns, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (match_id) DO NOTHING`,
		summary.MatchID,
		summary.Player1ID,
		summary.Player2ID,
		summary.WinnerID,
		summary.WinReason,
		summary.Turns,
		summary.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("archive match %s: %w", summary.MatchID, err)
	}

	a.logger.Info("match archived",
		zap.String("match_id", summary.MatchID),
		zap.String("winner_id", summary.WinnerID),
		zap.Int("turns", summary.Turns),
	)
	return nil
}

// SaveEvents batch-inserts the match's event history in order.
func (a *MatchArchive) SaveEvents(ctx context.Context, matchID string, events []rules.Event) error {
	if a == nil || a.pool == nil || len(events) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for seq, event := range events {
		payload, err := json.Marshal(event.Payload)
		if err != nil {
			return fmt.Errorf("marshal event payload: %w", err)
		}
		batch.Queue(`
			INSERT INTO match_events (match_id, seq, event_type, player_id, payload, occurred_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			matchID, seq, string(event.Type), event.PlayerID, payload, event.Timestamp,
		)
	}

	results := a.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range events {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("archive events for match %s: %w", matchID, err)
		}
	}
	return nil
}
