package ai

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/duelforge/duel-server-go/internal/game"
)

func newTestEngine(t *testing.T, profile DifficultyProfile, seed int64) *Engine {
	t.Helper()
	return NewEngine(profile, rand.New(rand.NewSource(seed)), zaptest.NewLogger(t))
}

// perfectProfile never makes mistakes and never sleeps, so tests see the raw
// scoring outcome.
func perfectProfile() DifficultyProfile {
	return DifficultyProfile{Level: LevelExpert, Strategy: StrategyControl, LookAheadDepth: 1}
}

func testView(self, enemy game.PlayerView) game.MatchView {
	self.ID = "ai"
	enemy.ID = "human"
	return game.MatchView{
		MatchID:     "m1",
		Phase:       "MAIN",
		Turn:        5,
		ActiveIndex: 0,
		Players:     [2]game.PlayerView{self, enemy},
	}
}

func TestDecide_EndTurnFallback(t *testing.T) {
	engine := newTestEngine(t, perfectProfile(), 1)
	view := testView(
		game.PlayerView{Health: 30, Mana: 5},
		game.PlayerView{Health: 30},
	)

	decision := engine.Decide(view)
	require.Equal(t, game.IntentEndTurn, decision.Intent.Kind)
	assert.Equal(t, "ai", decision.Intent.PlayerID)
}

func TestDecide_TakesLethal(t *testing.T) {
	engine := newTestEngine(t, perfectProfile(), 1)
	view := testView(
		game.PlayerView{
			Health: 30,
			Battlefield: []game.CreatureView{
				{InstanceID: "atk1", Name: "Raider", Attack: 5, Health: 1, CanAttack: true},
			},
		},
		game.PlayerView{Health: 4},
	)

	decision := engine.Decide(view)
	require.Equal(t, game.IntentAttack, decision.Intent.Kind)
	assert.Equal(t, "atk1", decision.Intent.AttackerID)
	assert.Equal(t, game.TargetFace, decision.Intent.TargetID)
	assert.Equal(t, lethalScore, decision.Score)
}

func TestDecide_RespectsTaunt(t *testing.T) {
	engine := newTestEngine(t, perfectProfile(), 1)
	view := testView(
		game.PlayerView{
			Health: 30,
			Battlefield: []game.CreatureView{
				{InstanceID: "atk1", Attack: 5, Health: 5, CanAttack: true},
			},
		},
		game.PlayerView{
			Health: 4, // would be lethal without the taunt
			Battlefield: []game.CreatureView{
				{InstanceID: "wall", Attack: 1, Health: 4, Taunt: true},
				{InstanceID: "softie", Attack: 4, Health: 1},
			},
		},
	)

	decision := engine.Decide(view)
	require.Equal(t, game.IntentAttack, decision.Intent.Kind)
	assert.Equal(t, "wall", decision.Intent.TargetID,
		"only the taunt creature is a legal target")
}

func TestDecide_SkipsUnaffordableCards(t *testing.T) {
	engine := newTestEngine(t, perfectProfile(), 1)
	view := testView(
		game.PlayerView{
			Health: 30,
			Mana:   2,
			Hand: []game.CardView{
				{ID: "cheap", Name: "Cheap", Cost: 2, Type: "CREATURE", Attack: 2, Health: 3},
				{ID: "huge", Name: "Huge", Cost: 8, Type: "CREATURE", Attack: 8, Health: 8},
			},
		},
		game.PlayerView{Health: 30},
	)

	decision := engine.Decide(view)
	require.Equal(t, game.IntentPlayCard, decision.Intent.Kind)
	assert.Equal(t, "cheap", decision.Intent.CardID)
}

func TestDecide_SkipsCreatureOnFullBoard(t *testing.T) {
	engine := newTestEngine(t, perfectProfile(), 1)
	board := make([]game.CreatureView, game.MaxBattlefield)
	for i := range board {
		board[i] = game.CreatureView{InstanceID: "own", Attack: 1, Health: 1}
	}
	view := testView(
		game.PlayerView{
			Health:      30,
			Mana:        10,
			Battlefield: board,
			Hand: []game.CardView{
				{ID: "grunt", Name: "Grunt", Cost: 2, Type: "CREATURE", Attack: 5, Health: 5},
			},
		},
		game.PlayerView{Health: 30},
	)

	decision := engine.Decide(view)
	assert.Equal(t, game.IntentEndTurn, decision.Intent.Kind,
		"no room to play the creature, nothing else to do")
}

func TestDecide_UsesWeapon(t *testing.T) {
	engine := newTestEngine(t, perfectProfile(), 1)
	view := testView(
		game.PlayerView{
			Health: 30,
			Weapon: &game.WeaponView{CardID: "axe", Attack: 3, Durability: 2},
		},
		game.PlayerView{Health: 2},
	)

	decision := engine.Decide(view)
	require.Equal(t, game.IntentAttack, decision.Intent.Kind)
	assert.Equal(t, game.TargetFace, decision.Intent.AttackerID)
	assert.Equal(t, game.TargetFace, decision.Intent.TargetID)
	assert.Equal(t, lethalScore, decision.Score)
}

func TestDecide_NoWeaponSwingAfterHeroAttack(t *testing.T) {
	engine := newTestEngine(t, perfectProfile(), 1)
	view := testView(
		game.PlayerView{
			Health:       30,
			Weapon:       &game.WeaponView{CardID: "axe", Attack: 3, Durability: 2},
			HeroAttacked: true,
		},
		game.PlayerView{Health: 2},
	)

	decision := engine.Decide(view)
	assert.Equal(t, game.IntentEndTurn, decision.Intent.Kind)
}

func TestDecide_Reproducible(t *testing.T) {
	view := testView(
		game.PlayerView{
			Health: 30,
			Mana:   4,
			Hand: []game.CardView{
				{ID: "a", Name: "A", Cost: 2, Type: "CREATURE", Attack: 2, Health: 2},
				{ID: "b", Name: "B", Cost: 3, Type: "CREATURE", Attack: 3, Health: 2},
				{ID: "c", Name: "C", Cost: 1, Type: "SPELL"},
			},
			Battlefield: []game.CreatureView{
				{InstanceID: "atk1", Attack: 2, Health: 2, CanAttack: true},
			},
		},
		game.PlayerView{
			Health: 20,
			Battlefield: []game.CreatureView{
				{InstanceID: "def1", Attack: 1, Health: 3},
			},
		},
	)

	profile := ProfileFor(LevelEasy)
	profile.ThinkingTime = 0

	for run := 0; run < 3; run++ {
		first := newTestEngine(t, profile, 99).Decide(view)
		second := newTestEngine(t, profile, 99).Decide(view)
		require.Equal(t, first.Intent, second.Intent,
			"same seed and snapshot must produce the same decision")
	}
}

func TestDecide_MistakeSkipsTopChoice(t *testing.T) {
	profile := DifficultyProfile{Level: LevelEasy, Strategy: StrategyControl, MistakeChance: 1.0, LookAheadDepth: 1}
	engine := newTestEngine(t, profile, 5)
	view := testView(
		game.PlayerView{
			Health: 30,
			Battlefield: []game.CreatureView{
				{InstanceID: "atk1", Attack: 9, Health: 9, CanAttack: true},
			},
		},
		game.PlayerView{
			Health: 5,
			Battlefield: []game.CreatureView{
				{InstanceID: "def1", Attack: 1, Health: 1},
				{InstanceID: "def2", Attack: 1, Health: 1},
			},
		},
	)

	// Lethal face attack is the clear top candidate; a guaranteed mistake
	// must pick something below it.
	decision := engine.Decide(view)
	assert.NotEqual(t, game.TargetFace, decision.Intent.TargetID)
}

func TestDecideAfterDelay_Delivers(t *testing.T) {
	profile := perfectProfile()
	profile.ThinkingTime = 5 * time.Millisecond
	engine := newTestEngine(t, profile, 1)
	view := testView(game.PlayerView{Health: 30}, game.PlayerView{Health: 30})

	select {
	case decision := <-engine.DecideAfterDelay(context.Background(), view):
		assert.Equal(t, game.IntentEndTurn, decision.Intent.Kind)
	case <-time.After(time.Second):
		t.Fatal("decision never delivered")
	}
}

func TestDecideAfterDelay_CancelSkipsWait(t *testing.T) {
	profile := perfectProfile()
	profile.ThinkingTime = time.Minute
	engine := newTestEngine(t, profile, 1)
	view := testView(game.PlayerView{Health: 30}, game.PlayerView{Health: 30})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	select {
	case decision := <-engine.DecideAfterDelay(ctx, view):
		assert.Equal(t, game.IntentEndTurn, decision.Intent.Kind)
	case <-time.After(time.Second):
		t.Fatal("cancelled context should deliver the decision immediately")
	}
}
