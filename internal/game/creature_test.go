package game

import (
	"testing"

	"github.com/duelforge/duel-server-go/internal/catalog"
)

func creatureCard(id string, attack, health int, keywords ...catalog.Keyword) *catalog.Card {
	return &catalog.Card{
		ID:       id,
		Name:     id,
		Cost:     attack,
		Type:     catalog.TypeCreature,
		Attack:   attack,
		Health:   health,
		Keywords: keywords,
	}
}

func mustCreature(t *testing.T, card *catalog.Card) *Creature {
	t.Helper()
	c, err := NewCreature(card)
	if err != nil {
		t.Fatalf("failed to create creature: %v", err)
	}
	return c
}

func TestNewCreature_RejectsNonCreature(t *testing.T) {
	spell := &catalog.Card{ID: "s", Name: "s", Type: catalog.TypeSpell}
	if _, err := NewCreature(spell); err == nil {
		t.Error("Expected error creating creature from a spell")
	}
}

func TestCreature_SummoningSickness(t *testing.T) {
	c := mustCreature(t, creatureCard("grunt", 2, 2))
	if c.CanAttack() {
		t.Error("Expected freshly summoned creature unable to attack")
	}

	c.StartOfTurn()
	if !c.CanAttack() {
		t.Error("Expected creature ready after its owner's next turn start")
	}
}

func TestCreature_ChargeAttacksImmediately(t *testing.T) {
	c := mustCreature(t, creatureCard("raider", 3, 1, catalog.KeywordCharge))
	if !c.CanAttack() {
		t.Error("Expected Charge creature to attack the turn it is played")
	}
}

func TestCreature_OneAttackPerTurn(t *testing.T) {
	c := mustCreature(t, creatureCard("grunt", 2, 2))
	c.StartOfTurn()

	if err := c.MarkAttacked(); err != nil {
		t.Fatalf("first attack failed: %v", err)
	}
	if c.CanAttack() {
		t.Error("Expected no second attack without Windfury")
	}
	if err := c.MarkAttacked(); err == nil {
		t.Error("Expected error on second attack")
	}
}

func TestCreature_WindfuryAttacksTwice(t *testing.T) {
	c := mustCreature(t, creatureCard("harpy", 3, 2, catalog.KeywordWindfury))
	c.StartOfTurn()

	if err := c.MarkAttacked(); err != nil {
		t.Fatalf("first attack failed: %v", err)
	}
	if !c.CanAttack() {
		t.Error("Expected Windfury creature to have a second attack")
	}
	if err := c.MarkAttacked(); err != nil {
		t.Fatalf("second attack failed: %v", err)
	}
	if c.CanAttack() {
		t.Error("Expected no third attack")
	}
}

func TestCreature_StealthBreaksOnAttack(t *testing.T) {
	c := mustCreature(t, creatureCard("rogue", 4, 2, catalog.KeywordStealth))
	c.StartOfTurn()

	if !c.HasKeyword(catalog.KeywordStealth) {
		t.Fatal("Expected Stealth before attacking")
	}
	if err := c.MarkAttacked(); err != nil {
		t.Fatalf("attack failed: %v", err)
	}
	if c.HasKeyword(catalog.KeywordStealth) {
		t.Error("Expected Stealth to break after attacking")
	}
}

// TestCreature_DivineShield verifies the shield absorbs one full hit of any
// size and only the next hit lands.
func TestCreature_DivineShield(t *testing.T) {
	c := mustCreature(t, creatureCard("protector", 3, 3, catalog.KeywordDivineShield))

	if dealt := c.TakeDamage(5); dealt != 0 {
		t.Errorf("Expected shield to absorb the hit, dealt %d", dealt)
	}
	if c.Health != 3 {
		t.Errorf("Expected full health after shielded hit, got %d", c.Health)
	}
	if c.HasKeyword(catalog.KeywordDivineShield) {
		t.Error("Expected shield removed after the first hit")
	}

	if dealt := c.TakeDamage(2); dealt != 2 {
		t.Errorf("Expected second hit to land for 2, dealt %d", dealt)
	}
	if c.Health != 1 {
		t.Errorf("Expected health 1, got %d", c.Health)
	}
}

func TestCreature_DamageClampsAtZero(t *testing.T) {
	c := mustCreature(t, creatureCard("grunt", 2, 2))
	if dealt := c.TakeDamage(10); dealt != 2 {
		t.Errorf("Expected overkill to report 2 dealt, got %d", dealt)
	}
	if c.Health != 0 || c.Alive() {
		t.Errorf("Expected dead creature at 0 health, got %d", c.Health)
	}
}

func TestCreature_HealClampsAtMax(t *testing.T) {
	c := mustCreature(t, creatureCard("grunt", 2, 5))
	c.TakeDamage(3)

	if healed := c.Heal(10); healed != 3 {
		t.Errorf("Expected 3 healed, got %d", healed)
	}
	if c.Health != 5 {
		t.Errorf("Expected full health, got %d", c.Health)
	}
}

func TestCreature_SilenceResetsToBase(t *testing.T) {
	c := mustCreature(t, creatureCard("grunt", 2, 2, catalog.KeywordTaunt))
	c.AddModifier(Modifier{Attack: 3, Health: 3, TurnsLeft: -1})

	if c.Attack != 5 || c.MaxHealth != 5 {
		t.Fatalf("Expected buffed 5/5, got %d/%d", c.Attack, c.MaxHealth)
	}

	c.Silence()
	if c.Attack != 2 || c.MaxHealth != 2 {
		t.Errorf("Expected base 2/2 after silence, got %d/%d", c.Attack, c.MaxHealth)
	}
	if c.HasKeyword(catalog.KeywordTaunt) {
		t.Error("Expected Taunt removed by silence")
	}
	if !c.Silenced {
		t.Error("Expected silenced flag set")
	}
}

func TestCreature_SilenceKeepsDamage(t *testing.T) {
	c := mustCreature(t, creatureCard("grunt", 2, 4))
	c.AddModifier(Modifier{Health: 2, TurnsLeft: -1})
	c.TakeDamage(5) // 6 max, 1 left

	c.Silence()
	if c.Health != 1 {
		t.Errorf("Expected damage to persist through silence, got health %d", c.Health)
	}
}

func TestCreature_FreezeSkipsOneTurn(t *testing.T) {
	c := mustCreature(t, creatureCard("grunt", 2, 2))
	c.StartOfTurn()
	c.Frozen = true

	if c.CanAttack() {
		t.Error("Expected frozen creature unable to attack")
	}

	c.StartOfTurn()
	if c.Frozen {
		t.Error("Expected freeze cleared at the owner's turn start")
	}
	if c.CanAttack() {
		t.Error("Expected creature to sit out the turn it thaws")
	}

	c.StartOfTurn()
	if !c.CanAttack() {
		t.Error("Expected creature ready the turn after thawing")
	}
}

func TestCreature_TimedModifierExpires(t *testing.T) {
	c := mustCreature(t, creatureCard("grunt", 2, 2))
	c.AddModifier(Modifier{Attack: 2, TurnsLeft: 1})

	if c.Attack != 4 {
		t.Fatalf("Expected attack 4 with modifier, got %d", c.Attack)
	}

	c.StartOfTurn()
	if c.Attack != 2 {
		t.Errorf("Expected modifier expired, attack %d", c.Attack)
	}
	if len(c.Modifiers) != 0 {
		t.Errorf("Expected no modifiers left, got %d", len(c.Modifiers))
	}
}

func TestCreature_PermanentModifierSurvivesTurns(t *testing.T) {
	c := mustCreature(t, creatureCard("grunt", 2, 2))
	c.AddModifier(Modifier{Attack: 1, Health: 1, TurnsLeft: -1})

	c.StartOfTurn()
	c.StartOfTurn()
	if c.Attack != 3 || c.MaxHealth != 3 {
		t.Errorf("Expected permanent buff to persist, got %d/%d", c.Attack, c.MaxHealth)
	}
}
