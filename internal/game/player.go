package game

import (
	"fmt"

	"github.com/duelforge/duel-server-go/internal/catalog"
)

// Gameplay limits.
const (
	StartingHealth = 30
	MaxMana        = 10
	MaxHandSize    = 10
	MaxBattlefield = 7
)

// DrawOutcome describes what happened on a draw attempt.
type DrawOutcome int

const (
	// DrawDrawn means the card was added to the hand.
	DrawDrawn DrawOutcome = iota
	// DrawBurned means the hand was full and the card was discarded.
	DrawBurned
	// DrawFatigue means the draw pile was empty; escalating self-damage
	// was applied and no card was produced.
	DrawFatigue
)

var drawOutcomeNames = map[DrawOutcome]string{
	DrawDrawn:   "DRAWN",
	DrawBurned:  "BURNED",
	DrawFatigue: "FATIGUE",
}

func (o DrawOutcome) String() string {
	if name, ok := drawOutcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("DRAW_OUTCOME_%d", int(o))
}

// DrawResult reports the outcome of a single DrawCard call.
type DrawResult struct {
	Outcome DrawOutcome
	Card    *catalog.Card // nil on fatigue
	Fatigue int           // damage taken, fatigue outcome only
}

// Weapon is the hero's equipped weapon. Durability decrements per swing;
// the match removes the weapon when it reaches zero.
type Weapon struct {
	Card       *catalog.Card
	Attack     int
	Durability int
}

// Player holds one contestant's mutable resources. It is owned by the Match;
// its collections are only ever mutated through its own methods, invoked by
// the match or by effect resolution (single-writer invariant).
type Player struct {
	ID   string
	Name string
	AI   bool

	Health    int
	MaxHealth int

	Mana    int
	ManaMax int

	Hand        []*catalog.Card
	DrawPile    []*catalog.Card
	Battlefield []*Creature
	Weapon      *Weapon

	Fatigue      int
	KeptHand     bool
	Mulligans    int
	HeroAttacked bool
}

// NewPlayer creates a player with starting health and an empty board. The
// draw pile is the already-shuffled expansion of the player's deck.
func NewPlayer(id, name string, ai bool, pile []*catalog.Card) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		AI:        ai,
		Health:    StartingHealth,
		MaxHealth: StartingHealth,
		DrawPile:  pile,
	}
}

// DrawCard pops the top card of the draw pile. On an empty pile the fatigue
// counter increments and that many points of self-damage are applied. On a
// full hand the card is burned. All three outcomes are reported, never errors.
func (p *Player) DrawCard() DrawResult {
	if len(p.DrawPile) == 0 {
		p.Fatigue++
		p.TakeDamage(p.Fatigue)
		return DrawResult{Outcome: DrawFatigue, Fatigue: p.Fatigue}
	}

	card := p.DrawPile[0]
	p.DrawPile = p.DrawPile[1:]

	if len(p.Hand) >= MaxHandSize {
		return DrawResult{Outcome: DrawBurned, Card: card}
	}

	p.Hand = append(p.Hand, card)
	return DrawResult{Outcome: DrawDrawn, Card: card}
}

// SpendMana deducts n mana. Returns false with no mutation if the player
// cannot afford it.
func (p *Player) SpendMana(n int) bool {
	if n < 0 || p.Mana < n {
		return false
	}
	p.Mana -= n
	return true
}

// GainMana adds to current mana, clamped to the current maximum.
func (p *Player) GainMana(n int) {
	p.Mana += n
	if p.Mana > p.ManaMax {
		p.Mana = p.ManaMax
	}
}

// IncreaseMaxMana raises the mana ceiling, clamped to MaxMana. Called once
// per turn by the match.
func (p *Player) IncreaseMaxMana(n int) {
	p.ManaMax += n
	if p.ManaMax > MaxMana {
		p.ManaMax = MaxMana
	}
}

// RefreshMana sets current mana to the maximum. Called once per turn by the
// match.
func (p *Player) RefreshMana() {
	p.Mana = p.ManaMax
}

// AddToBattlefield inserts a creature at the requested position, clamped to
// the valid range; a negative position appends. Returns false without
// mutation if the battlefield is full.
func (p *Player) AddToBattlefield(c *Creature, position int) bool {
	if len(p.Battlefield) >= MaxBattlefield {
		return false
	}
	if position < 0 || position > len(p.Battlefield) {
		position = len(p.Battlefield)
	}
	p.Battlefield = append(p.Battlefield, nil)
	copy(p.Battlefield[position+1:], p.Battlefield[position:])
	p.Battlefield[position] = c
	return true
}

// RemoveCreature removes the creature with the given instance id from the
// battlefield, preserving order. Returns the creature, or nil if not found.
func (p *Player) RemoveCreature(instanceID string) *Creature {
	for i, c := range p.Battlefield {
		if c.InstanceID == instanceID {
			p.Battlefield = append(p.Battlefield[:i], p.Battlefield[i+1:]...)
			return c
		}
	}
	return nil
}

// FindCreature returns the battlefield creature with the given instance id.
func (p *Player) FindCreature(instanceID string) *Creature {
	for _, c := range p.Battlefield {
		if c.InstanceID == instanceID {
			return c
		}
	}
	return nil
}

// RemoveFromHand removes the first hand card with the given card id and
// returns it, or nil if the card is not in hand.
func (p *Player) RemoveFromHand(cardID string) *catalog.Card {
	for i, card := range p.Hand {
		if card.ID == cardID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return card
		}
	}
	return nil
}

// CardInHand returns the first hand card with the given id, or nil.
func (p *Player) CardInHand(cardID string) *catalog.Card {
	for _, card := range p.Hand {
		if card.ID == cardID {
			return card
		}
	}
	return nil
}

// TakeDamage reduces health, clamped at zero, and returns the amount
// actually applied.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > p.Health {
		amount = p.Health
	}
	p.Health -= amount
	return amount
}

// Heal restores health up to the maximum and returns the amount actually
// restored.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	if p.Health+amount > p.MaxHealth {
		amount = p.MaxHealth - p.Health
	}
	p.Health += amount
	return amount
}

// HasTauntCreature reports whether any living Taunt creature holds the board.
func (p *Player) HasTauntCreature() bool {
	for _, c := range p.Battlefield {
		if c.Alive() && c.HasKeyword(catalog.KeywordTaunt) {
			return true
		}
	}
	return false
}

// StartTurn clears the player's per-turn flags and resets each owned
// creature's attack eligibility. Frozen and summoning-sickness overlays are
// enforced at the creature level, not bypassed here.
func (p *Player) StartTurn() {
	p.HeroAttacked = false
	for _, c := range p.Battlefield {
		c.StartOfTurn()
	}
}
