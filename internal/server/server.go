// Package server exposes the intent/event protocol to a presentation layer
// over HTTP and WebSocket. It owns match sessions, serializes intent
// application per match, and drives the AI opponent's turns.
package server

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/duelforge/duel-server-go/internal/ai"
	"github.com/duelforge/duel-server-go/internal/catalog"
	"github.com/duelforge/duel-server-go/internal/config"
	"github.com/duelforge/duel-server-go/internal/deck"
	"github.com/duelforge/duel-server-go/internal/game"
	"github.com/duelforge/duel-server-go/internal/game/rules"
	"github.com/duelforge/duel-server-go/internal/repository"
)

// aiLoopLimit bounds the number of intents one AI turn may submit, guarding
// against a decision loop that never ends its turn.
const aiLoopLimit = 100

// Server holds all running match sessions.
type Server struct {
	logger  *zap.Logger
	cfg     *config.Config
	catalog *catalog.Catalog
	archive *repository.MatchArchive
	seed    int64

	mu       sync.RWMutex
	sessions map[string]*Session
}

// Session is one running match plus its AI opponent and event fanout. The
// match itself assumes a single control thread; mu serializes every intent.
type Session struct {
	mu sync.Mutex

	match   *game.Match
	engine  *ai.Engine
	humanID string
	aiID    string

	bus *rules.EventBus
	hub *wsHub

	cancelAI context.CancelFunc
	archived bool
}

// New creates a server. The archive may be nil when no database is
// configured.
func New(cfg *config.Config, cat *catalog.Catalog, archive *repository.MatchArchive, logger *zap.Logger) *Server {
	return &Server{
		logger:   logger,
		cfg:      cfg,
		catalog:  cat,
		archive:  archive,
		seed:     cfg.AI.Seed,
		sessions: make(map[string]*Session),
	}
}

// newRNG returns a random source, seeded from config when set so whole
// matches replay deterministically.
func (s *Server) newRNG() *rand.Rand {
	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// profileFor builds the difficulty profile with any configured overrides.
func (s *Server) profileFor(level ai.Level) ai.DifficultyProfile {
	profile := ai.ProfileFor(level)
	if override, ok := s.cfg.AI.Overrides[level.String()]; ok {
		if override.ThinkingTime > 0 {
			profile.ThinkingTime = override.ThinkingTime
		}
		if override.MistakeChance > 0 {
			profile.MistakeChance = override.MistakeChance
		}
	}
	return profile
}

// CreateMatch starts a new match between a human player and an AI opponent
// at the given difficulty. Both sides play the standard deck. The AI keeps
// its opening hand immediately.
func (s *Server) CreateMatch(playerName string, level ai.Level) (*Session, error) {
	rng := s.newRNG()

	humanDeck, err := deck.Standard(s.catalog, playerName+"'s deck", "neutral")
	if err != nil {
		return nil, fmt.Errorf("build player deck: %w", err)
	}
	aiDeck, err := deck.Standard(s.catalog, "opponent deck", "neutral")
	if err != nil {
		return nil, fmt.Errorf("build opponent deck: %w", err)
	}

	bus := rules.NewEventBus()
	match, err := game.NewMatch([2]game.PlayerSetup{
		{Name: playerName, Deck: humanDeck},
		{Name: "Opponent", AI: true, Deck: aiDeck},
	}, rng, bus, s.logger)
	if err != nil {
		return nil, err
	}

	players := match.Players()
	sess := &Session{
		match:   match,
		engine:  ai.NewEngine(s.profileFor(level), rng, s.logger),
		humanID: players[0].ID,
		aiID:    players[1].ID,
		bus:     bus,
		hub:     newWSHub(s.logger),
	}
	bus.Subscribe(sess.hub.broadcast)

	if err := match.Start(); err != nil {
		return nil, err
	}
	// The AI always keeps its opening hand.
	match.Submit(game.Intent{Kind: game.IntentKeepHand, PlayerID: sess.aiID})

	s.mu.Lock()
	s.sessions[match.ID] = sess
	s.mu.Unlock()

	s.logger.Info("match created",
		zap.String("match_id", match.ID),
		zap.String("player", playerName),
		zap.String("difficulty", level.String()),
	)
	return sess, nil
}

// Session returns the session for a match id.
func (s *Server) Session(matchID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[matchID]
	return sess, ok
}

// SubmitHuman applies a human intent and, when the turn passes to the AI,
// kicks off the AI turn in the background.
func (s *Server) SubmitHuman(sess *Session, intent game.Intent) game.Result {
	sess.mu.Lock()
	result := sess.match.Submit(intent)
	aiTurn := result.OK() && s.aiShouldAct(sess)
	sess.mu.Unlock()

	if aiTurn {
		go s.runAITurn(sess)
	}
	s.maybeArchive(sess)
	return result
}

// aiShouldAct reports whether the AI holds priority. Caller holds sess.mu.
func (s *Server) aiShouldAct(sess *Session) bool {
	if sess.match.Phase() != rules.PhaseMain {
		return false
	}
	return sess.match.ActivePlayer().ID == sess.aiID
}

// runAITurn drives the AI until it ends its turn or the match ends. Each
// decision is made on a fresh snapshot and re-validated by Submit against
// the live state; a stale or rejected intent falls back to ending the turn.
func (s *Server) runAITurn(sess *Session) {
	ctx, cancel := context.WithCancel(context.Background())
	sess.mu.Lock()
	sess.cancelAI = cancel
	sess.mu.Unlock()
	defer cancel()

	for i := 0; i < aiLoopLimit; i++ {
		sess.mu.Lock()
		if !s.aiShouldAct(sess) {
			sess.mu.Unlock()
			break
		}
		view := sess.match.View()
		sess.mu.Unlock()

		decision, ok := <-sess.engine.DecideAfterDelay(ctx, view)
		if !ok {
			break
		}

		sess.mu.Lock()
		result := sess.match.Submit(decision.Intent)
		if !result.OK() {
			s.logger.Warn("ai intent rejected, ending turn",
				zap.String("match_id", sess.match.ID),
				zap.String("intent", decision.Intent.Kind.String()),
				zap.String("code", result.Code.String()),
			)
			sess.match.Submit(game.Intent{Kind: game.IntentEndTurn, PlayerID: sess.aiID})
		}
		done := decision.Intent.Kind == game.IntentEndTurn || !s.aiShouldAct(sess)
		sess.mu.Unlock()

		if done {
			break
		}
	}
	s.maybeArchive(sess)
}

// maybeArchive stores the match summary and event log once, after the match
// has ended.
func (s *Server) maybeArchive(sess *Session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.archived || sess.match.Phase() != rules.PhaseGameOver {
		return
	}
	sess.archived = true

	winnerID, reason := sess.match.Winner()
	players := sess.match.Players()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	summary := repository.MatchSummary{
		MatchID:    sess.match.ID,
		Player1ID:  players[0].ID,
		Player2ID:  players[1].ID,
		WinnerID:   winnerID,
		WinReason:  reason,
		Turns:      sess.match.Turn(),
		FinishedAt: time.Now(),
	}
	if err := s.archive.SaveMatch(ctx, summary); err != nil {
		s.logger.Error("failed to archive match", zap.Error(err))
		return
	}
	if err := s.archive.SaveEvents(ctx, sess.match.ID, sess.match.History()); err != nil {
		s.logger.Error("failed to archive match events", zap.Error(err))
	}
}

// MatchID returns the session's match id.
func (sess *Session) MatchID() string {
	return sess.match.ID
}

// HumanID returns the id of the human player in this session.
func (sess *Session) HumanID() string {
	return sess.humanID
}

// ViewFor returns a snapshot redacted for the given player.
func (sess *Session) ViewFor(playerID string) game.MatchView {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.match.ViewFor(playerID)
}

// History returns a copy of the match's event history.
func (sess *Session) History() []rules.Event {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.match.History()
}
