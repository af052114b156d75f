// Package ai implements the computer opponent: it enumerates legal intents
// for a match snapshot, scores them, biases the pick by difficulty strategy,
// and injects difficulty-scaled mistakes. The engine never mutates a match;
// the caller submits the chosen intent through the same path a human move
// takes, where it is re-validated against the live state.
package ai

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/duelforge/duel-server-go/internal/game"
)

// Decision is the engine's answer for one invocation: exactly one legal
// intent plus a human-readable justification.
type Decision struct {
	Intent    game.Intent
	Rationale string
	Score     float64
}

// Engine scores candidate moves for one AI-controlled player. Scoring is
// deterministic given the snapshot; only mistake injection draws from the
// random source, so a seeded source makes runs reproducible.
type Engine struct {
	logger  *zap.Logger
	profile DifficultyProfile
	rng     *rand.Rand
}

// NewEngine creates a decision engine for the given difficulty profile.
func NewEngine(profile DifficultyProfile, rng *rand.Rand, logger *zap.Logger) *Engine {
	return &Engine{
		logger:  logger,
		profile: profile,
		rng:     rng,
	}
}

// Profile returns the engine's difficulty profile.
func (e *Engine) Profile() DifficultyProfile {
	return e.profile
}

// Decide returns one legal intent for the active player of the snapshot.
// There is always at least the end-turn fallback, so Decide never fails.
func (e *Engine) Decide(view game.MatchView) Decision {
	candidates := e.generate(view)

	// Stable sort keeps generation order as the tie-break, which is itself
	// deterministic given the snapshot.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	pick := applyStrategy(e.profile.Strategy, candidates)

	// Difficulty-scaled imperfection: sometimes discard the choice and take
	// one a few ranks below the top.
	if e.profile.MistakeChance > 0 && len(candidates) > 1 && e.rng.Float64() < e.profile.MistakeChance {
		pick = 1 + e.rng.Intn(3)
		if pick >= len(candidates) {
			pick = len(candidates) - 1
		}
	}

	chosen := candidates[pick]
	if e.logger != nil {
		e.logger.Debug("ai decision",
			zap.String("strategy", e.profile.Strategy.String()),
			zap.String("intent", chosen.intent.Kind.String()),
			zap.Float64("score", chosen.score),
			zap.Int("candidates", len(candidates)),
			zap.Int("rank", pick),
		)
	}
	return Decision{
		Intent:    chosen.intent,
		Rationale: chosen.rationale,
		Score:     chosen.score,
	}
}

// DecideAfterDelay computes the decision immediately and delivers it on the
// returned channel after the profile's thinking time, or as soon as the
// context is cancelled. The delay is UX pacing only; tests call Decide
// directly and never wait.
func (e *Engine) DecideAfterDelay(ctx context.Context, view game.MatchView) <-chan Decision {
	out := make(chan Decision, 1)
	decision := e.Decide(view)

	go func() {
		defer close(out)
		if e.profile.ThinkingTime > 0 {
			timer := time.NewTimer(e.profile.ThinkingTime)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
			}
		}
		out <- decision
	}()
	return out
}
