package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/duelforge/duel-server-go/internal/catalog"
)

// CreatureState is the discrete attack-eligibility state of a battlefield
// creature. Frozen and Silenced are orthogonal overlays, not states.
type CreatureState int

const (
	// StateSummoned is the entry state for a creature placed this turn.
	// It blocks attacking (summoning sickness) unless the card has Charge.
	StateSummoned CreatureState = iota
	StateReady
	StateAttacked
	StateExhausted
)

var creatureStateNames = map[CreatureState]string{
	StateSummoned:  "SUMMONED",
	StateReady:     "READY",
	StateAttacked:  "ATTACKED",
	StateExhausted: "EXHAUSTED",
}

func (s CreatureState) String() string {
	if name, ok := creatureStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("CREATURE_STATE_%d", int(s))
}

// Modifier is a temporary stat change applied to a creature. TurnsLeft < 0
// means the modifier is permanent until silenced.
type Modifier struct {
	Attack    int
	Health    int
	TurnsLeft int
}

// Creature is a mutable battlefield unit derived from a creature card.
// Multiple instances of the same card coexist; each gets its own instance id.
// A creature is owned exclusively by the player whose battlefield holds it.
type Creature struct {
	InstanceID string
	Card       *catalog.Card

	BaseAttack int
	BaseHealth int

	Attack    int
	Health    int
	MaxHealth int

	State    CreatureState
	Frozen   bool
	Silenced bool

	keywords map[catalog.Keyword]bool

	TimesAttackedThisTurn int
	DamageTakenThisTurn   int
	DamageDealtThisTurn   int

	Modifiers []Modifier
}

// NewCreature creates a battlefield instance from a creature card. The
// keyword set starts as a copy of the card's keywords; Charge enters play
// ready instead of summoning-sick.
func NewCreature(card *catalog.Card) (*Creature, error) {
	if card.Type != catalog.TypeCreature {
		return nil, fmt.Errorf("card %s is a %s, not a creature", card.ID, card.Type)
	}

	c := &Creature{
		InstanceID: uuid.NewString(),
		Card:       card,
		BaseAttack: card.Attack,
		BaseHealth: card.Health,
		Attack:     card.Attack,
		Health:     card.Health,
		MaxHealth:  card.Health,
		State:      StateSummoned,
		keywords:   make(map[catalog.Keyword]bool, len(card.Keywords)),
	}
	for _, k := range card.Keywords {
		c.keywords[k] = true
	}
	if c.HasKeyword(catalog.KeywordCharge) {
		c.State = StateReady
	}
	return c, nil
}

// HasKeyword reports whether the instance currently carries the keyword.
// Effects can grant or remove keywords independently of the card definition.
func (c *Creature) HasKeyword(k catalog.Keyword) bool {
	return c.keywords[k]
}

// GrantKeyword adds a keyword to the instance.
func (c *Creature) GrantKeyword(k catalog.Keyword) {
	c.keywords[k] = true
}

// RemoveKeyword removes a keyword from the instance.
func (c *Creature) RemoveKeyword(k catalog.Keyword) {
	delete(c.keywords, k)
}

// Keywords returns the instance's current keyword set.
func (c *Creature) Keywords() []catalog.Keyword {
	out := make([]catalog.Keyword, 0, len(c.keywords))
	for k := range c.keywords {
		out = append(out, k)
	}
	return out
}

// Alive reports whether the creature has health remaining. Removal of dead
// creatures is the match's job, detected after any damage-dealing action.
func (c *Creature) Alive() bool {
	return c.Health > 0
}

// attacksPerTurn returns how many attacks the creature may make this turn.
func (c *Creature) attacksPerTurn() int {
	if c.HasKeyword(catalog.KeywordWindfury) {
		return 2
	}
	return 1
}

// CanAttack reports whether the creature may attack right now. Windfury gates
// eligibility on the attack count rather than the single Attacked mark.
func (c *Creature) CanAttack() bool {
	if !c.Alive() || c.Frozen {
		return false
	}
	if c.State == StateAttacked || c.State == StateExhausted || c.State == StateSummoned {
		return false
	}
	return c.TimesAttackedThisTurn < c.attacksPerTurn()
}

// MarkAttacked records one attack. The creature stays Ready while Windfury
// has a charge remaining; Stealth breaks on the first attack.
func (c *Creature) MarkAttacked() error {
	if !c.CanAttack() {
		return fmt.Errorf("creature %s cannot attack", c.InstanceID)
	}
	c.TimesAttackedThisTurn++
	if c.TimesAttackedThisTurn >= c.attacksPerTurn() {
		c.State = StateAttacked
	}
	c.RemoveKeyword(catalog.KeywordStealth)
	return nil
}

// TakeDamage applies damage to the creature and returns the amount actually
// dealt. Divine Shield absorbs the entire hit once, independent of amount,
// and is then removed.
func (c *Creature) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if c.HasKeyword(catalog.KeywordDivineShield) {
		c.RemoveKeyword(catalog.KeywordDivineShield)
		return 0
	}
	if amount > c.Health {
		amount = c.Health
	}
	c.Health -= amount
	c.DamageTakenThisTurn += amount
	return amount
}

// Heal restores health up to the current maximum and returns the amount
// actually restored.
func (c *Creature) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	if c.Health+amount > c.MaxHealth {
		amount = c.MaxHealth - c.Health
	}
	c.Health += amount
	return amount
}

// AddModifier applies a temporary stat change.
func (c *Creature) AddModifier(m Modifier) {
	c.Attack += m.Attack
	if c.Attack < 0 {
		c.Attack = 0
	}
	c.MaxHealth += m.Health
	c.Health += m.Health
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
	c.Modifiers = append(c.Modifiers, m)
}

// Silence strips all keywords, abilities, and temporary modifiers and resets
// attack and health to the card's base values. Current health is clamped to
// the new maximum; damage already taken is not healed back.
func (c *Creature) Silence() {
	c.Silenced = true
	c.keywords = make(map[catalog.Keyword]bool)
	c.Modifiers = nil
	c.Attack = c.BaseAttack
	c.MaxHealth = c.BaseHealth
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
}

// StartOfTurn resets per-turn counters and clears summoning sickness for the
// owner's new turn. A Frozen creature stays non-attacking for the turn and
// the Frozen marker itself clears (one-turn freeze).
func (c *Creature) StartOfTurn() {
	c.TimesAttackedThisTurn = 0
	c.DamageTakenThisTurn = 0
	c.DamageDealtThisTurn = 0

	if c.Frozen {
		c.Frozen = false
		c.State = StateExhausted
	} else {
		c.State = StateReady
	}

	// Expire timed modifiers.
	kept := c.Modifiers[:0]
	for _, m := range c.Modifiers {
		if m.TurnsLeft < 0 {
			kept = append(kept, m)
			continue
		}
		m.TurnsLeft--
		if m.TurnsLeft > 0 {
			kept = append(kept, m)
			continue
		}
		c.Attack -= m.Attack
		if c.Attack < 0 {
			c.Attack = 0
		}
		c.MaxHealth -= m.Health
		if c.Health > c.MaxHealth {
			c.Health = c.MaxHealth
		}
	}
	c.Modifiers = kept
}
